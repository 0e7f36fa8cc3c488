// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package train

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/emer/edla/edla"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// HistStats summarizes the epoch error totals of a run
type HistStats struct {
	ErrTotalMean float64 `yaml:"err_total_mean"`
	ErrTotalStd  float64 `yaml:"err_total_std"`
	ErrTotalMin  float64 `yaml:"err_total_min"`

	// epoch with the lowest error total
	BestEpoch int `yaml:"best_epoch"`

	// first epoch with no errors above threshold, 0 if none
	FirstZeroEpoch int `yaml:"first_zero_epoch"`
}

// Summarize computes HistStats over hist
func Summarize(hist []edla.EpochStats) HistStats {
	var hs HistStats
	if len(hist) == 0 {
		return hs
	}
	errs := make([]float64, len(hist))
	for i, es := range hist {
		errs[i] = float64(es.ErrTotal)
		if hs.FirstZeroEpoch == 0 && es.ErrCount == 0 {
			hs.FirstZeroEpoch = es.Epoch
		}
	}
	hs.ErrTotalMean, hs.ErrTotalStd = stat.MeanStdDev(errs, nil)
	if len(errs) == 1 {
		hs.ErrTotalStd = 0
	}
	mi := floats.MinIdx(errs)
	hs.ErrTotalMin = errs[mi]
	hs.BestEpoch = hist[mi].Epoch
	return hs
}

// Summary records the configuration and result of a training run
type Summary struct {
	RunID      string           `yaml:"run_id"`
	Name       string           `yaml:"name"`
	Topology   edla.Topology    `yaml:"topology"`
	Flags      edla.Flags       `yaml:"flags"`
	Act        edla.ActParams   `yaml:"act"`
	Learn      edla.LearnParams `yaml:"learn"`
	Seed       int64            `yaml:"seed"`
	NPats      int              `yaml:"n_pats"`
	Epochs     int              `yaml:"epochs"`
	Converged  bool             `yaml:"converged"`
	StopReason string           `yaml:"stop_reason"`
	Final      edla.EpochStats  `yaml:"final"`
	Hist       HistStats        `yaml:"hist"`
	WallSecs   float64          `yaml:"wall_secs"`
}

// Summary returns the Summary of the last run, with a new RunID
func (tr *Trainer) Summary() *Summary {
	nt := tr.Net
	sum := &Summary{
		RunID:      uuid.New().String(),
		Name:       nt.Nm,
		Topology:   nt.Topo,
		Flags:      nt.Flags,
		Act:        nt.Act,
		Learn:      nt.Learn,
		Seed:       nt.Seed,
		NPats:      tr.Pats.NPats(),
		Epochs:     len(tr.History),
		Converged:  tr.Reason.Converged(),
		StopReason: tr.Reason.String(),
		Hist:       Summarize(tr.History),
		WallSecs:   tr.Time.TotalSecs(),
	}
	if n := len(tr.History); n > 0 {
		sum.Final = tr.History[n-1]
	}
	return sum
}

func (sum *Summary) String() string {
	return fmt.Sprintf("%v: %v after %d epochs, ErrTotal: %.5f, ErrCount: %d, Accuracy: %.2f%% (%.3f secs)",
		sum.Name, sum.StopReason, sum.Epochs, sum.Final.ErrTotal, sum.Final.ErrCount, sum.Final.Accuracy, sum.WallSecs)
}

// WriteYAML writes the summary in YAML format
func (sum *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sum); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads the summary from YAML
func (sum *Summary) ReadYAML(r io.Reader) error {
	return yaml.NewDecoder(r).Decode(sum)
}

// SaveYAML saves the summary to filename
func (sum *Summary) SaveYAML(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	return sum.WriteYAML(fp)
}

// OpenYAML loads a summary from filename
func (sum *Summary) OpenYAML(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	return sum.ReadYAML(fp)
}

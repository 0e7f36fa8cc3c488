// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package train runs the epoch loop of an edla.Network over a patgen pattern
set, monitors convergence, and keeps the per-epoch history and a run Summary.
*/
package train

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chewxy/math32"
	"github.com/emer/edla/edla"
	"github.com/emer/edla/patgen"
	"github.com/emer/emergent/v2/etime"
	"github.com/emer/emergent/v2/timer"
	"github.com/emer/etable/v2/minmax"
)

// ErrNoNet is returned when the Trainer has no network or patterns
var ErrNoNet = errors.New("train: network and patterns must be set")

// Params are the stopping and presentation parameters of a run
type Params struct {
	ErrTol     float32 `def:"0.1" desc:"training stops when the epoch sum of absolute errors falls below this"`
	MaxEpochs  int     `def:"10000" min:"1" desc:"maximum number of epochs to train"`
	StopOnZero bool    `def:"true" desc:"stop when no output of any pattern is off by more than the error threshold"`
	Permute    bool    `desc:"present patterns in a new random order each epoch"`
	Seed       int64   `def:"1" desc:"random seed for pattern order"`
}

func (tp *Params) Defaults() {
	tp.ErrTol = 0.1
	tp.MaxEpochs = 10000
	tp.StopOnZero = true
	tp.Permute = false
	tp.Seed = 1
}

// Trainer trains a Network on a pattern set
type Trainer struct {
	Params

	// the network being trained
	Net *edla.Network

	// the training patterns
	Pats *patgen.Pats

	// progress output level
	Verbose Verbosity

	// progress output goes here if non-nil
	Out io.Writer

	// called at the end of every epoch, if set.  Returning false stops the run.
	OnEpoch func(es edla.EpochStats) bool

	// statistics of every epoch of the last run
	History []edla.EpochStats

	// why the last run stopped
	Reason StopReasons

	// wall clock time of the last run
	Time timer.Time

	env *patgen.Env
}

// NewTrainer returns a Trainer with default parameters
func NewTrainer(nt *edla.Network, pats *patgen.Pats) *Trainer {
	tr := &Trainer{Net: nt, Pats: pats}
	tr.Defaults()
	return tr
}

// Validate checks that the Trainer is ready to Run
func (tr *Trainer) Validate() error {
	if tr.Net == nil || tr.Pats == nil {
		return ErrNoNet
	}
	if !tr.Net.IsBuilt() {
		return edla.ErrNotBuilt
	}
	if tr.MaxEpochs < 1 {
		return fmt.Errorf("train: MaxEpochs = %d must be >= 1", tr.MaxEpochs)
	}
	if tr.Pats.NInputs() != tr.Net.Topo.NInputs || tr.Pats.NOutputs() != tr.Net.Topo.NOutputs {
		return fmt.Errorf("%w: patterns are %d -> %d, network is %d -> %d", edla.ErrPatternSize,
			tr.Pats.NInputs(), tr.Pats.NOutputs(), tr.Net.Topo.NInputs, tr.Net.Topo.NOutputs)
	}
	return nil
}

// StopCheck returns the reason to stop after the epoch with stats es,
// or NotStopped to keep going
func (tr *Trainer) StopCheck(es *edla.EpochStats) StopReasons {
	switch {
	case es.ErrTotal < tr.ErrTol:
		return ErrTolReached
	case tr.StopOnZero && es.ErrCount == 0:
		return NoErrors
	case es.Epoch >= tr.MaxEpochs:
		return MaxEpochsReached
	}
	return NotStopped
}

// Run trains from the current weights until a stop condition is met,
// returning the run Summary.  Counters and History are reset first.
// If ctx is done the run stops between patterns with reason Cancelled,
// and the context error is returned along with the summary so far.
func (tr *Trainer) Run(ctx context.Context) (*Summary, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	nt := tr.Net
	tr.env = patgen.NewEnv(nt.Nm, tr.Pats, tr.Permute, tr.Seed)
	nt.ResetCounters()
	tr.History = tr.History[:0]
	tr.Reason = NotStopped
	tr.Time.Reset()
	tr.Time.Start()
	var rerr error
	np := tr.Pats.NPats()
	for tr.Reason == NotStopped {
		nt.ResetEpoch()
		for pi := 0; pi < np; pi++ {
			if err := ctx.Err(); err != nil {
				tr.Reason = Cancelled
				rerr = err
				break
			}
			tr.env.Step()
			ps, err := nt.TrainPattern(tr.env.Input(), tr.env.Target())
			if err != nil {
				tr.Time.Stop()
				return nil, err
			}
			if tr.Verbose >= PatternVerbose {
				tr.printf("  %v: err: %v\n", tr.env.String(), fmtErrs(ps.Errs))
			}
		}
		if tr.Reason == Cancelled {
			break
		}
		es := nt.EpochStats()
		tr.History = append(tr.History, es)
		if tr.Verbose >= EpochVerbose {
			tr.printf("%v Epoch: %6d\t ErrTotal: %9.5f\t ErrCount: %4d\t Accuracy: %6.2f%%\n", es.Mode, es.Epoch, es.ErrTotal, es.ErrCount, es.Accuracy)
		}
		tr.Reason = tr.StopCheck(&es)
		if tr.Reason == NotStopped && tr.OnEpoch != nil && !tr.OnEpoch(es) {
			tr.Reason = Cancelled
		}
	}
	tr.Time.Stop()
	sum := tr.Summary()
	tr.printf("%v\n", sum.String())
	return sum, rerr
}

// Test runs every pattern through the network without learning and returns
// the resulting statistics.  Epoch is the number of trained epochs.
func (tr *Trainer) Test() (edla.EpochStats, error) {
	if err := tr.Validate(); err != nil {
		return edla.EpochStats{}, err
	}
	nt := tr.Net
	es := edla.EpochStats{Epoch: nt.Ctrs.Epoch, NPats: tr.Pats.NPats()}
	var am minmax.AvgMax32
	am.Init()
	for pi := 0; pi < tr.Pats.NPats(); pi++ {
		ps, err := nt.TestPattern(tr.Pats.Input(pi), tr.Pats.Target(pi))
		if err != nil {
			return es, err
		}
		for ni, e := range ps.Errs {
			ae := math32.Abs(e)
			es.ErrTotal += ae
			am.UpdateVal(ae, int32(pi*len(ps.Errs)+ni))
			if ae > edla.ErrThr {
				es.ErrCount++
			}
		}
	}
	es.Mode = nt.Ctrs.Mode.String()
	nt.Ctrs.Mode = etime.Train
	n := es.NPats * nt.Topo.NOutputs
	es.Accuracy = 100 * float32(n-es.ErrCount) / float32(n)
	am.CalcAvg()
	es.AvgErr = am.Avg
	es.MaxErr = am.Max
	return es, nil
}

func (tr *Trainer) printf(format string, args ...any) {
	if tr.Out == nil {
		return
	}
	fmt.Fprintf(tr.Out, format, args...)
}

func fmtErrs(errs []float32) string {
	strs := make([]string, len(errs))
	for i, e := range errs {
		strs[i] = fmt.Sprintf("%7.4f", e)
	}
	return strings.Join(strs, " ")
}

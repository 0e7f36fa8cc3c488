// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prompt

import (
	"fmt"
	"strings"

	"github.com/emer/edla/edla"
	"github.com/emer/edla/patgen"
)

// RunParams are all the parameters of a training run that can be entered interactively
type RunParams struct {
	Seed      int64
	Pats      patgen.Config
	Topo      edla.Topology
	Flags     edla.Flags
	Act       edla.ActParams
	Learn     edla.LearnParams
	Init      edla.InitParams
	MaxEpochs int
}

// Defaults sets the defaults of every parameter
func (rp *RunParams) Defaults() {
	rp.Seed = 1
	rp.Pats.Defaults()
	rp.Topo = edla.Topology{NInputs: 2, NOutputs: 1, NHidden1: 8}
	rp.Flags.Defaults()
	rp.Act.Defaults()
	rp.Learn.Defaults()
	rp.Init.Defaults()
	rp.MaxEpochs = 10000
}

// RunParams asks for each run parameter in turn, using the current values
// in rp as defaults.  Pattern and network sizes are kept consistent.
func (pr *Prompter) RunParams(rp *RunParams) error {
	seed, err := pr.Int("random seed", int(rp.Seed), 0)
	if err != nil {
		return err
	}
	rp.Seed = int64(seed)
	pc := &rp.Pats
	pc.Seed = rp.Seed
	if pc.NInputs, err = pr.Int("number of inputs", pc.NInputs, 1); err != nil {
		return err
	}
	if pc.NPats, err = pr.Int("number of patterns", 1<<pc.NInputs, 1); err != nil {
		return err
	}
	if pc.NOutputs, err = pr.Int(fmt.Sprintf("number of outputs (max %d)", edla.MaxOutputs), pc.NOutputs, 1); err != nil {
		return err
	}
	if pc.NOutputs > edla.MaxOutputs {
		pc.NOutputs = edla.MaxOutputs
	}
	if err = pr.targetTypes(pc); err != nil {
		return err
	}

	tp := &rp.Topo
	tp.NInputs = pc.NInputs
	tp.NOutputs = pc.NOutputs
	if tp.NHidden1, err = pr.Int("number of hidden neurons", tp.NHidden1, 1); err != nil {
		return err
	}
	if tp.NHidden2, err = pr.Int("number of hidden neurons in the second block", tp.NHidden2, 0); err != nil {
		return err
	}
	if rp.Act.NTimeSteps, err = pr.Int("number of time steps", rp.Act.NTimeSteps, 1); err != nil {
		return err
	}
	if rp.Init.WtRange, err = pr.Float("initial weight range", rp.Init.WtRange); err != nil {
		return err
	}
	if rp.Init.ThrRange, err = pr.Float("initial threshold range", rp.Init.ThrRange); err != nil {
		return err
	}

	fl := &rp.Flags
	if fl.SelfLoopCut, err = pr.Bool("cut self loops", fl.SelfLoopCut); err != nil {
		return err
	}
	if fl.LoopCut, err = pr.Bool("cut hidden loops", fl.LoopCut); err != nil {
		return err
	}
	if fl.MultiLayer, err = pr.Bool("multi layer (no input to output connections)", fl.MultiLayer); err != nil {
		return err
	}
	if fl.InhibInputs, err = pr.Bool("use inhibitory inputs", fl.InhibInputs); err != nil {
		return err
	}
	if fl.Bidir, err = pr.Bool("bidirectional weight change", fl.Bidir); err != nil {
		return err
	}

	if rp.Act.Steepness, err = pr.Float("sigmoid steepness", rp.Act.Steepness); err != nil {
		return err
	}
	if rp.Learn.Amp, err = pr.Float("error amplification", rp.Learn.Amp); err != nil {
		return err
	}
	if rp.Learn.Lrate, err = pr.Float("learning rate", rp.Learn.Lrate); err != nil {
		return err
	}
	if rp.Act.Bias, err = pr.Float("bias input", rp.Act.Bias); err != nil {
		return err
	}
	rp.MaxEpochs, err = pr.Int("maximum epochs", rp.MaxEpochs, 1)
	return err
}

// targetTypes asks for the target type of each output, as one list
func (pr *Prompter) targetTypes(pc *patgen.Config) error {
	names := make([]string, 0, pc.NOutputs)
	for out := 0; out < pc.NOutputs; out++ {
		tt := patgen.ParityTargets
		if out < len(pc.Targets) {
			tt = pc.Targets[out]
		} else if len(pc.Targets) > 0 {
			tt = pc.Targets[len(pc.Targets)-1]
		}
		names = append(names, strings.TrimSuffix(tt.String(), "Targets"))
	}
	q := "target type of each output (Random Parity Mirror Manual Real OneHot)"
	return pr.ask(q, strings.Join(names, " "), func(ans string) error {
		tts, err := patgen.ParseTargetTypes(ans)
		if err != nil {
			return err
		}
		if len(tts) != 1 && len(tts) != pc.NOutputs {
			return fmt.Errorf("need 1 or %d target types", pc.NOutputs)
		}
		pc.Targets = tts
		return nil
	})
}

// ManualTargets returns a TargetFunc that asks for each target value
func (pr *Prompter) ManualTargets() patgen.TargetFunc {
	return func(pat, out int, inp []float32) (float32, error) {
		strs := make([]string, len(inp))
		for i, v := range inp {
			strs[i] = fmt.Sprintf("%.4g", v)
		}
		return pr.Float(fmt.Sprintf("pattern %d [%s] target of output %d", pat, strings.Join(strs, ","), out), 0)
	}
}

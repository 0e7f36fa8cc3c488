// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package patgen generates the classic benchmark pattern sets used to train
error diffusion networks: binary or random inputs, with parity (XOR), mirror
symmetry, random, real-valued, one-hot or manually entered targets.
Each output can use a different target type.
*/
package patgen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
)

// ErrConfig is returned (wrapped) for invalid pattern configurations
var ErrConfig = errors.New("patgen: invalid configuration")

// TargetFunc returns the target for output out of pattern pat, given its inputs.
// It is used for ManualTargets.
type TargetFunc func(pat, out int, inp []float32) (float32, error)

// Config specifies a pattern set
type Config struct {
	NInputs   int           `def:"2" min:"1" desc:"number of logical inputs per pattern"`
	NOutputs  int           `def:"1" min:"1" desc:"number of target values per pattern"`
	NPats     int           `def:"4" min:"1" desc:"number of patterns"`
	InputMode InputModes    `desc:"how inputs are generated"`
	Targets   []TargetTypes `desc:"target type for each output -- a single entry applies to all outputs"`
	Seed      int64         `def:"1" desc:"random seed for random inputs and targets"`
}

// Defaults sets a 2 input XOR configuration
func (pc *Config) Defaults() {
	pc.NInputs = 2
	pc.NOutputs = 1
	pc.NPats = 4
	pc.InputMode = BinaryInputs
	pc.Targets = []TargetTypes{ParityTargets}
	pc.Seed = 1
}

// TargetType returns the target type for output out
func (pc *Config) TargetType(out int) TargetTypes {
	if len(pc.Targets) == 1 {
		return pc.Targets[0]
	}
	return pc.Targets[out]
}

// Validate checks the configuration
func (pc *Config) Validate() error {
	switch {
	case pc.NInputs < 1:
		return fmt.Errorf("%w: NInputs = %d must be >= 1", ErrConfig, pc.NInputs)
	case pc.NOutputs < 1:
		return fmt.Errorf("%w: NOutputs = %d must be >= 1", ErrConfig, pc.NOutputs)
	case pc.NPats < 1:
		return fmt.Errorf("%w: NPats = %d must be >= 1", ErrConfig, pc.NPats)
	case len(pc.Targets) != 1 && len(pc.Targets) != pc.NOutputs:
		return fmt.Errorf("%w: %d target types for %d outputs", ErrConfig, len(pc.Targets), pc.NOutputs)
	case pc.InputMode < 0 || pc.InputMode >= InputModesN:
		return fmt.Errorf("%w: InputMode = %d", ErrConfig, pc.InputMode)
	}
	n1h := 0
	for out := 0; out < pc.NOutputs; out++ {
		tt := pc.TargetType(out)
		if tt < 0 || tt >= TargetTypesN {
			return fmt.Errorf("%w: output %d has target type %d", ErrConfig, out, tt)
		}
		if tt == OneHotTargets {
			n1h++
		}
	}
	if n1h > pc.NPats {
		return fmt.Errorf("%w: %d one-hot outputs need at least as many patterns, have %d", ErrConfig, n1h, pc.NPats)
	}
	return nil
}

// Pats is a generated pattern set
type Pats struct {

	// input values, [NPats][NInputs]
	Inputs *etensor.Float32

	// target values, [NPats][NOutputs]
	Targets *etensor.Float32
}

// NPats returns the number of patterns
func (ps *Pats) NPats() int { return ps.Inputs.Dim(0) }

// NInputs returns the number of inputs per pattern
func (ps *Pats) NInputs() int { return ps.Inputs.Dim(1) }

// NOutputs returns the number of targets per pattern
func (ps *Pats) NOutputs() int { return ps.Targets.Dim(1) }

// Input returns the inputs of pattern p, as a slice of the underlying values
func (ps *Pats) Input(p int) []float32 {
	ni := ps.NInputs()
	return ps.Inputs.Values[p*ni : (p+1)*ni]
}

// Target returns the targets of pattern p, as a slice of the underlying values
func (ps *Pats) Target(p int) []float32 {
	no := ps.NOutputs()
	return ps.Targets.Values[p*no : (p+1)*no]
}

// NewPats returns an all-zero pattern set of the given size
func NewPats(npats, nin, nout int) *Pats {
	ps := &Pats{}
	ps.Inputs = etensor.NewFloat32([]int{npats, nin}, nil, []string{"Pat", "Input"})
	ps.Targets = etensor.NewFloat32([]int{npats, nout}, nil, []string{"Pat", "Output"})
	return ps
}

// Generate makes the pattern set for pc.  manual supplies the values for
// ManualTargets outputs and may be nil if there are none.
func Generate(pc *Config, manual TargetFunc) (*Pats, error) {
	if err := pc.Validate(); err != nil {
		return nil, err
	}
	rnd := erand.NewSysRand(pc.Seed)
	ps := NewPats(pc.NPats, pc.NInputs, pc.NOutputs)
	for p := 0; p < pc.NPats; p++ {
		BinaryOrRandom(pc.InputMode, p, rnd, ps.Input(p))
	}
	for out := 0; out < pc.NOutputs; out++ {
		tt := pc.TargetType(out)
		if tt == OneHotTargets {
			continue
		}
		for p := 0; p < pc.NPats; p++ {
			inp := ps.Input(p)
			var trg float32
			switch tt {
			case RandomTargets:
				if rnd.Float32(-1) > 0.5 {
					trg = 1
				}
			case ParityTargets:
				trg = Parity(inp)
			case MirrorTargets:
				trg = Mirror(inp)
			case RealTargets:
				trg = rnd.Float32(-1)
			case ManualTargets:
				if manual == nil {
					return nil, fmt.Errorf("%w: output %d uses ManualTargets without a TargetFunc", ErrConfig, out)
				}
				v, err := manual(p, out, inp)
				if err != nil {
					return nil, err
				}
				trg = v
			}
			ps.Target(p)[out] = trg
		}
	}
	oneHot(pc, rnd, ps)
	return ps, nil
}

// BinaryOrRandom fills inp for pattern p according to mode
func BinaryOrRandom(mode InputModes, p int, rnd erand.Rand, inp []float32) {
	for i := range inp {
		if mode == RandomInputs {
			inp[i] = rnd.Float32(-1)
			continue
		}
		if p&(1<<i) != 0 {
			inp[i] = 1
		} else {
			inp[i] = 0
		}
	}
}

// Parity returns 1 if an odd number of inputs are above .5, else 0
func Parity(inp []float32) float32 {
	cnt := 0
	for _, v := range inp {
		if v > 0.5 {
			cnt++
		}
	}
	return float32(cnt % 2)
}

// Mirror returns 1 if inp reads the same forwards and backwards, else 0
func Mirror(inp []float32) float32 {
	n := len(inp)
	for i := 0; i < n/2; i++ {
		if inp[i] != inp[n-1-i] {
			return 0
		}
	}
	return 1
}

// oneHot sets each OneHotTargets output to 1 on one randomly chosen pattern,
// each one distinct from those of the other one-hot outputs
func oneHot(pc *Config, rnd erand.Rand, ps *Pats) {
	used := make(map[int]bool)
	for out := 0; out < pc.NOutputs; out++ {
		if pc.TargetType(out) != OneHotTargets {
			continue
		}
		p := rnd.Intn(pc.NPats, -1)
		for used[p] {
			p = rnd.Intn(pc.NPats, -1)
		}
		used[p] = true
		ps.Target(p)[out] = 1
	}
}

// WriteSample writes the first n patterns as "Pattern p: [inputs] -> targets"
func (ps *Pats) WriteSample(w io.Writer, n int) {
	np := ps.NPats()
	if n > np || n < 0 {
		n = np
	}
	for p := 0; p < n; p++ {
		fmt.Fprintf(w, "Pattern %d: [%s] -> %s\n", p, fmtVals(ps.Input(p)), fmtVals(ps.Target(p)))
	}
}

func fmtVals(vs []float32) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = fmt.Sprintf("%.4g", v)
	}
	return strings.Join(strs, ",")
}

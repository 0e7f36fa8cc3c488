// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import "fmt"

// MaxOutputs is the maximum number of output networks supported
const MaxOutputs = 10

// ErrThr is the absolute prediction error above which a pattern output
// counts as an error for the epoch ErrCount
const ErrThr = 0.5

// Topology has the dimensions of an ED network, which are fixed for a run.
// All neuron indexes are derived from these values.
type Topology struct {
	NInputs  int `desc:"number of logical inputs -- each one is represented by an excitatory and inhibitory neuron pair"`
	NOutputs int `desc:"number of outputs -- each output has its own independent network"`
	NHidden1 int `desc:"number of neurons in the first hidden block"`
	NHidden2 int `desc:"number of neurons in the second hidden block, which does not receive directly from the inputs"`
}

// InWidth is the number of input neurons, two per logical input
func (tp *Topology) InWidth() int { return 2 * tp.NInputs }

// NTot is the total number of neurons: inputs, one for the bias pair, and hidden.
// The output neuron takes the first slot of the hidden range.
func (tp *Topology) NTot() int { return tp.InWidth() + 1 + tp.NHidden1 + tp.NHidden2 }

// NUnits is the length of all per-neuron arrays
func (tp *Topology) NUnits() int { return tp.NTot() + 2 }

// InSt is the index of the first input neuron
func (tp *Topology) InSt() int { return 2 }

// OutIdx is the index of the output neuron
func (tp *Topology) OutIdx() int { return tp.InWidth() + 2 }

// HidSt is the index of the first hidden neuron after the output
func (tp *Topology) HidSt() int { return tp.InWidth() + 3 }

// Hid2St is the index of the first neuron of the second hidden block
func (tp *Topology) Hid2St() int { return tp.NTot() + 2 - tp.NHidden2 }

// IsInput returns true if idx is an input pair neuron
func (tp *Topology) IsInput(idx int) bool { return idx >= 2 && idx < tp.OutIdx() }

// IsHid2 returns true if idx is in the second hidden block
func (tp *Topology) IsHid2(idx int) bool { return idx >= tp.Hid2St() && idx < tp.NUnits() }

// Validate checks the dimensions, returning a *ConfigError for the first problem
func (tp *Topology) Validate() error {
	switch {
	case tp.NInputs < 1:
		return configErr("NInputs", tp.NInputs, "must be >= 1")
	case tp.NOutputs < 1:
		return configErr("NOutputs", tp.NOutputs, "must be >= 1")
	case tp.NOutputs > MaxOutputs:
		return configErr("NOutputs", tp.NOutputs, fmt.Sprintf("must be <= %d", MaxOutputs))
	case tp.NHidden1 < 0:
		return configErr("NHidden1", tp.NHidden1, "must be >= 0")
	case tp.NHidden2 < 0:
		return configErr("NHidden2", tp.NHidden2, "must be >= 0")
	}
	return nil
}

// String returns a compact description of the dimensions
func (tp *Topology) String() string {
	return fmt.Sprintf("In: %d (%d units)  Out: %d  Hid1: %d  Hid2: %d  Units: %d", tp.NInputs, tp.InWidth(), tp.NOutputs, tp.NHidden1, tp.NHidden2, tp.NUnits())
}

// Flags are the structural and learning switches for a run
type Flags struct {
	SelfLoopCut bool `def:"true" desc:"disable self connections -- otherwise each hidden neuron gets a random self weight, acting as a memory term"`
	LoopCut     bool `def:"true" desc:"disable hidden-to-hidden and output-to-hidden connections, and clear hidden inputs before each pattern, keeping the network close to feedforward"`
	MultiLayer  bool `def:"true" desc:"disable direct input to output connections, forcing routing through hidden neurons"`
	Bidir       bool `def:"false" desc:"bidirectional weight change: every connection moves by the difference of excitatory and inhibitory error, instead of selecting the error part by sender type"`
	InhibInputs bool `def:"true" desc:"keep connections from the inhibitory neuron of each input pair (and the inhibitory bias)"`
}

// Defaults sets the standard flag values
func (fl *Flags) Defaults() {
	fl.SelfLoopCut = true
	fl.LoopCut = true
	fl.MultiLayer = true
	fl.Bidir = false
	fl.InhibInputs = true
}

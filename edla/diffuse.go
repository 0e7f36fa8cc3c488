// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

// ErrSig holds the diffused error of one output network, split into
// excitatory (output too low) and inhibitory (output too high) parts, per neuron.
// Both parts are always >= 0.
type ErrSig struct {
	Ex []float32
	Ih []float32
}

// Alloc sizes the buffers for nu units
func (es *ErrSig) Alloc(nu int) {
	es.Ex = make([]float32, nu)
	es.Ih = make([]float32, nu)
}

// SplitErr splits a prediction error into its excitatory and inhibitory
// parts: exactly one is non-zero (unless err == 0) and ex - ih == err.
func SplitErr(err float32) (ex, ih float32) {
	if err > 0 {
		return err, 0
	}
	return 0, -err
}

// Diffuse computes the prediction error trg - output for the network in ac,
// sets the raw split error on the output neuron, and broadcasts the split
// error times lp.Amp to every hidden neuron.  Returns the prediction error.
func Diffuse(tp *Topology, lp *LearnParams, ac *Acts, trg float32, es *ErrSig) float32 {
	outIdx := tp.OutIdx()
	perr := trg - ac.Outputs[outIdx]
	ex, ih := SplitErr(perr)
	es.Ex[outIdx] = ex
	es.Ih[outIdx] = ih
	aex := ex * lp.Amp
	aih := ih * lp.Amp
	nu := tp.NUnits()
	for i := tp.HidSt(); i < nu; i++ {
		es.Ex[i] = aex
		es.Ih[i] = aih
	}
	return perr
}

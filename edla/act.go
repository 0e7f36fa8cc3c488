// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

// Acts holds the activation state of one output network.
// Inputs is the value each neuron presents to its receivers, and Outputs is
// the result of the most recent settling step.  Each step reads only Inputs
// and writes only Outputs, and the output and hidden range of Outputs is then
// copied back to Inputs for the next step.
type Acts struct {
	Inputs  []float32
	Outputs []float32
}

// Alloc sizes the buffers for nu units
func (ac *Acts) Alloc(nu int) {
	ac.Inputs = make([]float32, nu)
	ac.Outputs = make([]float32, nu)
}

// Init zeroes all activations and sets the bias inputs
func (ac *Acts) Init(bias float32) {
	for i := range ac.Inputs {
		ac.Inputs[i] = 0
		ac.Outputs[i] = 0
	}
	ac.Inputs[0] = bias
	ac.Inputs[1] = bias
}

// Out returns the output neuron activation
func (ac *Acts) Out(tp *Topology) float32 {
	return ac.Outputs[tp.OutIdx()]
}

// ApplyInputs sends each logical input value to both neurons of its pair
func ApplyInputs(tp *Topology, inp []float32, ac *Acts) {
	for i, v := range inp {
		ac.Inputs[2+2*i] = v
		ac.Inputs[3+2*i] = v
	}
}

// Forward runs the recurrent forward pass for one pattern.
// If loopCut is set, hidden and output inputs are cleared first, otherwise
// the activations from the previous pattern carry over.
func Forward(tp *Topology, ap *ActParams, wts []float32, inp []float32, loopCut bool, ac *Acts) {
	ApplyInputs(tp, inp, ac)
	nu := tp.NUnits()
	outIdx := tp.OutIdx()
	if loopCut {
		for i := outIdx; i < nu; i++ {
			ac.Inputs[i] = 0
		}
	}
	for t := 0; t < ap.NTimeSteps; t++ {
		FwdOnce(tp, ap, wts, ac)
		copy(ac.Inputs[outIdx:nu], ac.Outputs[outIdx:nu])
	}
}

// FwdOnce computes Outputs for all output and hidden neurons from the
// current Inputs, without any feedback.
func FwdOnce(tp *Topology, ap *ActParams, wts []float32, ac *Acts) {
	nu := tp.NUnits()
	for ri := tp.OutIdx(); ri < nu; ri++ {
		rw := wts[ri*nu : (ri+1)*nu]
		net := float32(0)
		for si, wt := range rw {
			net += wt * ac.Inputs[si]
		}
		ac.Outputs[ri] = ap.Sigmoid(net)
	}
}

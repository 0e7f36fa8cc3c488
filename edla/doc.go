// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package edla implements the Error Diffusion (ED) learning algorithm: a
recurrent network of excitatory and inhibitory neurons that learns from a
single error signal broadcast uniformly to every hidden neuron, instead of
per-layer gradients computed by backpropagation.

Each logical input is represented by a pair of neurons (excitatory, inhibitory)
that both receive the raw input value.  The sign of every connection is fixed
by the types of its two ends: same-type pairs have positive weights and
cross-type pairs negative weights.  The error on the output neuron is split
into a non-negative excitatory part (output too low) and inhibitory part
(output too high), and both parts are diffused, optionally amplified, to all
hidden neurons.  Learning then strengthens or weakens each connection according
to the type of its sending neuron and the matching error part.

The neuron index layout for one network with NInputs logical inputs is fixed:

	0, 1                    bias pair (excitatory, inhibitory)
	2 .. InWidth+1          input pairs, even = excitatory, odd = inhibitory
	InWidth+2               output neuron (always excitatory)
	InWidth+3 .. NTot+1     hidden neurons, second hidden block at the tail

where InWidth = 2*NInputs and NTot = InWidth + 1 + NHidden1 + NHidden2.

Each output has its own fully independent network (weights, activations and
error signals), all sharing the same topology and neuron types.  The Network
type owns all of that state, and its TrainPattern method runs the
Forward, Diffuse and UpdtWts steps for one input / target pair.
*/
package edla

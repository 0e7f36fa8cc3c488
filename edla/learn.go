// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

// UpdtWts applies the ED learning rule to every connection in mask, for the
// output and hidden neurons of one network.  For receiver r and sender s:
//
//	delta = Lrate * Inputs[s] * Deriv(Outputs[r])
//
// In bidirectional mode:
//
//	wt += delta * typs[r] * (Ex[r] - Ih[r])
//
// otherwise the error part is selected by the sender type, Ex for
// excitatory and Ih for inhibitory senders:
//
//	wt += delta * err * typs[s] * typs[r]
//
// Connections not in mask are never changed.
func UpdtWts(tp *Topology, lp *LearnParams, typs []float32, ac *Acts, es *ErrSig, bidir bool, wts []float32, mask []bool) {
	nu := tp.NUnits()
	for ri := tp.OutIdx(); ri < nu; ri++ {
		drv := lp.Lrate * Deriv(ac.Outputs[ri])
		if drv == 0 {
			continue
		}
		rt := typs[ri]
		ex := es.Ex[ri]
		ih := es.Ih[ri]
		off := ri * nu
		rw := wts[off : off+nu]
		rm := mask[off : off+nu]
		for si := range rw {
			if !rm[si] {
				continue
			}
			delta := drv * ac.Inputs[si]
			if bidir {
				rw[si] += delta * rt * (ex - ih)
				continue
			}
			st := typs[si]
			if st > 0 {
				rw[si] += delta * ex * st * rt
			} else {
				rw[si] += delta * ih * st * rt
			}
		}
	}
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import "github.com/emer/emergent/v2/erand"

// InitWts initializes the weights and connectivity mask of one output network.
// wts and mask are NUnits x NUnits, indexed [recv*NUnits + send].  Only the
// rows of the output and hidden neurons are set; all others are zeroed.
//
// Each connection starts with a random magnitude, and is then disabled or
// re-randomized by the structural rules in order:
//   - second hidden block neurons do not receive from the input pairs
//   - LoopCut: no hidden-to-hidden connections other than self, and nothing
//     from the output neuron
//   - MultiLayer: the output neuron does not receive from the input pairs
//   - connections within the second hidden block are re-randomized
//   - self connections are off if SelfLoopCut, else re-randomized
//   - !InhibInputs: nothing from the odd (inhibitory) bias or input neurons
//
// Finally every weight is multiplied by typs[send] * typs[recv].
// mask is true exactly where the resulting weight is non-zero.
func InitWts(tp *Topology, typs []float32, fl *Flags, ip *InitParams, rnd erand.Rand, wts []float32, mask []bool) {
	nu := tp.NUnits()
	outIdx := tp.OutIdx()
	hidSt := tp.HidSt()
	hid2St := tp.Hid2St()
	for i := range wts {
		wts[i] = 0
		mask[i] = false
	}
	for ri := outIdx; ri < nu; ri++ {
		rw := wts[ri*nu : (ri+1)*nu]
		for si := 0; si < nu; si++ {
			var wt float32
			if si < 2 {
				wt = ip.ThrRange * rnd.Float32(-1)
			} else {
				wt = ip.WtRange * rnd.Float32(-1)
			}
			if ri >= hid2St && tp.IsInput(si) {
				wt = 0
			}
			if fl.LoopCut {
				if ri != si && ri > outIdx && si > outIdx-1 {
					wt = 0
				}
				if si == outIdx {
					wt = 0
				}
			}
			if fl.MultiLayer && ri == outIdx && tp.IsInput(si) {
				wt = 0
			}
			if ri >= hid2St && si >= hidSt {
				wt = ip.WtRange * rnd.Float32(-1)
			}
			if ri == si {
				if fl.SelfLoopCut {
					wt = 0
				} else {
					wt = ip.WtRange * rnd.Float32(-1)
				}
			}
			if !fl.InhibInputs && si < outIdx && si%2 == 1 {
				wt = 0
			}
			rw[si] = wt * typs[si] * typs[ri]
			mask[ri*nu+si] = rw[si] != 0
		}
	}
}

// LiveConns returns the number of connections in mask
func LiveConns(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}

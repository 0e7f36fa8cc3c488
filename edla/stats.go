// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

// EpochStats summarizes the errors of one epoch
type EpochStats struct {
	Epoch    int     `desc:"epoch number"`
	NPats    int     `desc:"number of patterns processed in the epoch"`
	ErrTotal float32 `desc:"sum of absolute prediction errors"`
	ErrCount int     `desc:"number of outputs with absolute error above ErrThr"`
	Accuracy float32 `desc:"percent of pattern outputs within ErrThr"`
	AvgErr   float32 `desc:"average absolute prediction error"`
	MaxErr   float32 `desc:"maximum absolute prediction error"`
	Mode     string  `desc:"evaluation mode the errors were computed in, Train or Test"`
}

// EpochStats returns the statistics of the current epoch so far
func (nt *Network) EpochStats() EpochStats {
	es := EpochStats{Epoch: nt.Ctrs.Epoch, NPats: nt.Ctrs.Trial, ErrTotal: nt.ErrTotal, ErrCount: nt.ErrCount, Mode: nt.Ctrs.Mode.String()}
	n := nt.Ctrs.Trial * nt.Topo.NOutputs
	if n > 0 {
		es.Accuracy = 100 * float32(n-nt.ErrCount) / float32(n)
		am := nt.ErrAbs
		am.CalcAvg()
		es.AvgErr = am.Avg
		es.MaxErr = am.Max
	}
	return es
}

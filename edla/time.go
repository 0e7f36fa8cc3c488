// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import "github.com/emer/emergent/v2/etime"

// Counters has the trial and epoch counters of a Network
type Counters struct {

	// epoch counter: number of times ResetEpoch has started a new epoch
	Epoch int

	// trial counter: number of patterns processed in the current epoch
	Trial int

	// total trial count since the last Reset
	TrialTot int

	// current evaluation mode, Train or Test
	Mode etime.Modes
}

// Reset resets the counters all back to zero
func (ct *Counters) Reset() {
	ct.Epoch = 0
	ct.Trial = 0
	ct.TrialTot = 0
	ct.Mode = etime.Train
}

// NewEpoch starts a new epoch
func (ct *Counters) NewEpoch() {
	ct.Epoch++
	ct.Trial = 0
}

// TrialInc increments at the trial (pattern) level
func (ct *Counters) TrialInc() {
	ct.Trial++
	ct.TrialTot++
}

// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patgen

import (
	"fmt"

	"github.com/emer/emergent/v2/env"
	"github.com/emer/emergent/v2/erand"
)

// Env presents the patterns of a Pats set one trial at a time, in fixed
// order or permuted anew each epoch, keeping the epoch and trial counters.
type Env struct {

	// name of this environment
	Nm string `desc:"name of this environment"`

	// the patterns
	Pats *Pats `desc:"the patterns"`

	// if true, present patterns in a new random order each epoch
	Permute bool `desc:"if true, present patterns in a new random order each epoch"`

	// order of patterns in the current epoch
	Order []int `desc:"order of patterns in the current epoch"`

	// random source for permuting Order
	Rand erand.SysRand `view:"-" desc:"random source for permuting Order"`

	// number of completed epochs
	Epoch env.Ctr `view:"inline" desc:"number of completed epochs"`

	// current trial within the epoch -- Max = number of patterns
	Trial env.Ctr `view:"inline" desc:"current trial within the epoch -- Max = number of patterns"`
}

// NewEnv returns an Env for pats, with its own random source for permutation
func NewEnv(name string, pats *Pats, permute bool, seed int64) *Env {
	ev := &Env{Nm: name, Pats: pats, Permute: permute}
	ev.Rand.NewRand(seed)
	ev.Init()
	return ev
}

func (ev *Env) Name() string { return ev.Nm }

func (ev *Env) Validate() error {
	if ev.Pats == nil || ev.Pats.NPats() == 0 {
		return fmt.Errorf("patgen.Env: %v has no patterns", ev.Nm)
	}
	return nil
}

// Init is called to restart the environment
func (ev *Env) Init() {
	ev.Epoch.Scale = env.Epoch
	ev.Trial.Scale = env.Trial
	ev.Epoch.Init()
	ev.Trial.Init()
	np := 0
	if ev.Pats != nil {
		np = ev.Pats.NPats()
	}
	ev.Order = make([]int, np)
	erand.SequentialInts(ev.Order, 0)
	ev.Trial.Max = np
	ev.newOrder()
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0
}

func (ev *Env) newOrder() {
	if !ev.Permute || ev.Rand.Rand == nil {
		return
	}
	erand.PermuteInts(ev.Order, &ev.Rand)
}

// Step advances to the next pattern.  Returns true if this wrapped around
// to start a new epoch (never on the very first Step).
func (ev *Env) Step() bool {
	ev.Epoch.Same()
	if ev.Trial.Incr() {
		ev.Epoch.Incr()
		ev.newOrder()
		return true
	}
	return false
}

// Counter returns the current, previous and changed values of the
// Epoch or Trial counter
func (ev *Env) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// PatIdx returns the index of the current pattern
func (ev *Env) PatIdx() int {
	if ev.Trial.Cur < 0 || ev.Trial.Cur >= len(ev.Order) {
		return -1
	}
	return ev.Order[ev.Trial.Cur]
}

// Input returns the inputs of the current pattern
func (ev *Env) Input() []float32 { return ev.Pats.Input(ev.PatIdx()) }

// Target returns the targets of the current pattern
func (ev *Env) Target() []float32 { return ev.Pats.Target(ev.PatIdx()) }

// String returns the current state as a string
func (ev *Env) String() string {
	return fmt.Sprintf("Epc_%d_Trl_%d_Pat_%d", ev.Epoch.Cur, ev.Trial.Cur, ev.PatIdx())
}

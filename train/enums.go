// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package train

import "github.com/goki/ki/kit"

// StopReasons are the reasons a training run ended
type StopReasons int32

//go:generate stringer -type=StopReasons

var KiT_StopReasons = kit.Enums.AddEnum(StopReasonsN, false, nil)

func (ev StopReasons) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *StopReasons) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// NotStopped means the run has not ended
	NotStopped StopReasons = iota

	// ErrTolReached means the epoch error total fell below ErrTol
	ErrTolReached

	// NoErrors means no output of any pattern was off by more than the error threshold
	NoErrors

	// MaxEpochsReached means MaxEpochs epochs were trained without converging
	MaxEpochsReached

	// Cancelled means the context was done
	Cancelled

	StopReasonsN
)

// Converged returns true for the reasons that count as learning the task
func (ev StopReasons) Converged() bool {
	return ev == ErrTolReached || ev == NoErrors
}

// Verbosity determines how much progress output the Trainer writes
type Verbosity int32

//go:generate stringer -type=Verbosity

var KiT_Verbosity = kit.Enums.AddEnum(VerbosityN, false, nil)

func (ev Verbosity) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Verbosity) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Quiet writes only the final result
	Quiet Verbosity = iota

	// EpochVerbose writes one line per epoch
	EpochVerbose

	// PatternVerbose also writes the outputs of every pattern
	PatternVerbose

	VerbosityN
)

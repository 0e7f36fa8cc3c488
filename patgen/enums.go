// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patgen

import (
	"fmt"
	"strings"

	"github.com/goki/ki/kit"
)

// InputModes are the ways input patterns are generated
type InputModes int32

//go:generate stringer -type=InputModes

var KiT_InputModes = kit.Enums.AddEnum(InputModesN, false, nil)

func (ev InputModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *InputModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// BinaryInputs sets input i of pattern p to bit i of p, so the first
	// 2^NInputs patterns enumerate every binary input combination
	BinaryInputs InputModes = iota

	// RandomInputs draws each input uniformly from [0, 1)
	RandomInputs

	InputModesN
)

// TargetTypes are the ways target values are computed for one output
type TargetTypes int32

//go:generate stringer -type=TargetTypes

var KiT_TargetTypes = kit.Enums.AddEnum(TargetTypesN, false, nil)

func (ev TargetTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *TargetTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// RandomTargets are 0 or 1 with equal probability
	RandomTargets TargetTypes = iota

	// ParityTargets are 1 if an odd number of inputs are above .5 (XOR for 2 inputs)
	ParityTargets

	// MirrorTargets are 1 if the input pattern is symmetric
	MirrorTargets

	// ManualTargets are supplied by a TargetFunc, e.g., entered by the user
	ManualTargets

	// RealTargets are drawn uniformly from [0, 1)
	RealTargets

	// OneHotTargets are 1 for exactly one randomly chosen pattern and 0 for the rest.
	// Different one-hot outputs choose different patterns.
	OneHotTargets

	TargetTypesN
)

// ParseTargetTypes parses a space or comma separated list of target type names
func ParseTargetTypes(s string) ([]TargetTypes, error) {
	flds := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	tts := make([]TargetTypes, 0, len(flds))
	for _, f := range flds {
		var tt TargetTypes
		if err := tt.FromString(f); err != nil {
			if err := tt.FromString(f + "Targets"); err != nil {
				return nil, fmt.Errorf("patgen: unknown target type %q", f)
			}
		}
		tts = append(tts, tt)
	}
	return tts, nil
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import (
	"strings"

	"github.com/goki/ki/kit"
)

// NeurTypes are the two ED neuron types, which constrain the sign of
// every connection between them.
type NeurTypes int32

//go:generate stringer -type=NeurTypes

var KiT_NeurTypes = kit.Enums.AddEnum(NeurTypesN, false, nil)

func (ev NeurTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeurTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The neuron types
const (
	// Excite is an excitatory neuron, with a type sign of +1
	Excite NeurTypes = iota

	// Inhib is an inhibitory neuron, with a type sign of -1
	Inhib

	NeurTypesN
)

// Sign returns the +1 / -1 multiplier for this type
func (ev NeurTypes) Sign() float32 {
	if ev == Inhib {
		return -1
	}
	return 1
}

// TypeOf returns the neuron type for given type sign
func TypeOf(sign float32) NeurTypes {
	if sign < 0 {
		return Inhib
	}
	return Excite
}

// UnitType returns the type of neuron i: Excite for even indexes and
// Inhib for odd ones, except outIdx which is always Excite.
func UnitType(i, outIdx int) NeurTypes {
	if i == outIdx || i%2 == 0 {
		return Excite
	}
	return Inhib
}

// AssignTypes returns the type sign vector for nUnits neurons, from UnitType
func AssignTypes(nUnits, outIdx int) []float32 {
	typs := make([]float32, nUnits)
	for i := range typs {
		typs[i] = UnitType(i, outIdx).Sign()
	}
	return typs
}

// NeurType returns the type of neuron i, shared by all output networks
func (nt *Network) NeurType(i int) NeurTypes {
	return TypeOf(nt.Types[i])
}

// TypesCode returns the neuron types in index order as one letter each,
// E for Excite and I for Inhib, as recorded in weights files
func (nt *Network) TypesCode() string {
	var sb strings.Builder
	for i := range nt.Types {
		sb.WriteByte(nt.NeurType(i).String()[0])
	}
	return sb.String()
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/emer/emergent/v2/env"
)

func TestBinaryParity(t *testing.T) {
	pc := &Config{}
	pc.Defaults()
	ps, err := Generate(pc, nil)
	if err != nil {
		t.Fatal(err)
	}
	ins := [][]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	trgs := []float32{0, 1, 1, 0}
	for p := range ins {
		for i, v := range ins[p] {
			if ps.Input(p)[i] != v {
				t.Errorf("pattern %d input %d: %v != %v", p, i, ps.Input(p)[i], v)
			}
		}
		if ps.Target(p)[0] != trgs[p] {
			t.Errorf("pattern %d target: %v != %v", p, ps.Target(p)[0], trgs[p])
		}
	}
	var b bytes.Buffer
	ps.WriteSample(&b, 2)
	if !strings.Contains(b.String(), "Pattern 1: [1,0] -> 1") {
		t.Errorf("sample: %v", b.String())
	}
}

func TestMirrorAndMixed(t *testing.T) {
	pc := &Config{NInputs: 4, NOutputs: 3, NPats: 16, InputMode: BinaryInputs,
		Targets: []TargetTypes{MirrorTargets, ParityTargets, RealTargets}, Seed: 3}
	ps, err := Generate(pc, nil)
	if err != nil {
		t.Fatal(err)
	}
	nsym := 0
	for p := 0; p < 16; p++ {
		inp := ps.Input(p)
		sym := inp[0] == inp[3] && inp[1] == inp[2]
		if (ps.Target(p)[0] == 1) != sym {
			t.Errorf("mirror target wrong for %v", inp)
		}
		if sym {
			nsym++
		}
		if r := ps.Target(p)[2]; r < 0 || r >= 1 {
			t.Errorf("real target out of range: %v", r)
		}
	}
	if nsym != 4 {
		t.Errorf("expected 4 symmetric patterns, got %d", nsym)
	}
	if Mirror([]float32{1, 0, 1}) != 1 || Mirror([]float32{1, 0, 0}) != 0 {
		t.Errorf("odd length mirror err")
	}
}

func TestOneHot(t *testing.T) {
	pc := &Config{NInputs: 3, NOutputs: 4, NPats: 8, InputMode: RandomInputs, Targets: []TargetTypes{OneHotTargets}, Seed: 5}
	ps, err := Generate(pc, nil)
	if err != nil {
		t.Fatal(err)
	}
	hot := map[int]bool{}
	for out := 0; out < 4; out++ {
		n := 0
		for p := 0; p < 8; p++ {
			switch ps.Target(p)[out] {
			case 1:
				n++
				if hot[p] {
					t.Errorf("pattern %d is hot for two outputs", p)
				}
				hot[p] = true
			case 0:
			default:
				t.Errorf("non binary one-hot target")
			}
		}
		if n != 1 {
			t.Errorf("output %d has %d hot patterns", out, n)
		}
	}
	for p := 0; p < 8; p++ {
		for _, v := range ps.Input(p) {
			if v < 0 || v >= 1 {
				t.Errorf("random input out of range: %v", v)
			}
		}
	}
	pc.NPats = 3
	if _, err := Generate(pc, nil); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig for too few patterns, got %v", err)
	}
}

func TestRandomTargetsSeed(t *testing.T) {
	pc := &Config{NInputs: 2, NOutputs: 2, NPats: 20, InputMode: RandomInputs, Targets: []TargetTypes{RandomTargets}, Seed: 9}
	p1, _ := Generate(pc, nil)
	p2, _ := Generate(pc, nil)
	for i := range p1.Targets.Values {
		if p1.Targets.Values[i] != p2.Targets.Values[i] {
			t.Fatalf("same seed gave different targets")
		}
		if v := p1.Targets.Values[i]; v != 0 && v != 1 {
			t.Errorf("random target not binary: %v", v)
		}
	}
}

func TestManual(t *testing.T) {
	pc := &Config{NInputs: 2, NOutputs: 1, NPats: 4, Targets: []TargetTypes{ManualTargets}}
	if _, err := Generate(pc, nil); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig without TargetFunc, got %v", err)
	}
	ps, err := Generate(pc, func(pat, out int, inp []float32) (float32, error) {
		return inp[0] * inp[1], nil // AND
	})
	if err != nil {
		t.Fatal(err)
	}
	if ps.Target(3)[0] != 1 || ps.Target(1)[0] != 0 {
		t.Errorf("manual targets: %v", ps.Targets.Values)
	}
}

func TestConfigErrors(t *testing.T) {
	for _, pc := range []Config{
		{NInputs: 0, NOutputs: 1, NPats: 1, Targets: []TargetTypes{ParityTargets}},
		{NInputs: 1, NOutputs: 0, NPats: 1, Targets: []TargetTypes{ParityTargets}},
		{NInputs: 1, NOutputs: 1, NPats: 0, Targets: []TargetTypes{ParityTargets}},
		{NInputs: 1, NOutputs: 3, NPats: 1, Targets: []TargetTypes{ParityTargets, MirrorTargets}},
		{NInputs: 1, NOutputs: 1, NPats: 1, Targets: []TargetTypes{TargetTypesN}},
	} {
		if _, err := Generate(&pc, nil); !errors.Is(err, ErrConfig) {
			t.Errorf("%+v: expected ErrConfig, got %v", pc, err)
		}
	}
}

func TestParseTargetTypes(t *testing.T) {
	tts, err := ParseTargetTypes("Parity, MirrorTargets OneHot")
	if err != nil {
		t.Fatal(err)
	}
	if len(tts) != 3 || tts[0] != ParityTargets || tts[1] != MirrorTargets || tts[2] != OneHotTargets {
		t.Errorf("parsed: %v", tts)
	}
	if _, err := ParseTargetTypes("Bogus"); err == nil {
		t.Errorf("expected error")
	}
}

func TestEnv(t *testing.T) {
	pc := &Config{}
	pc.Defaults()
	ps, _ := Generate(pc, nil)
	ev := NewEnv("XOR", ps, false, 1)
	if err := ev.Validate(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if ev.Step() {
			t.Errorf("new epoch inside first epoch at %d", i)
		}
		if ev.PatIdx() != i {
			t.Errorf("fixed order: %v != %v", ev.PatIdx(), i)
		}
	}
	if !ev.Step() || ev.Epoch.Cur != 1 || ev.Trial.Cur != 0 {
		t.Errorf("epoch wrap: %v", ev.String())
	}
	if cur, prv, chg := ev.Counter(env.Epoch); cur != 1 || prv != 0 || !chg {
		t.Errorf("epoch counter: %v %v %v", cur, prv, chg)
	}
	ev.Step()
	if _, _, chg := ev.Counter(env.Epoch); chg {
		t.Errorf("epoch counter changed inside epoch")
	}
	if ev.String() != "Epc_1_Trl_1_Pat_1" {
		t.Errorf("string: %v", ev.String())
	}
	ev.Init()
	if ev.Trial.Cur != -1 || ev.Epoch.Cur != 0 || ev.PatIdx() != -1 {
		t.Errorf("init: %v", ev.String())
	}

	pev := NewEnv("Perm", ps, true, 2)
	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		pev.Step()
		seen[pev.PatIdx()] = true
	}
	if len(seen) != 4 {
		t.Errorf("permuted epoch did not visit every pattern: %v", pev.Order)
	}

	// same seed gives the same permutation sequence
	aev := NewEnv("A", ps, true, 5)
	bev := NewEnv("B", ps, true, 5)
	for i := 0; i < 12; i++ {
		aev.Step()
		bev.Step()
		if aev.PatIdx() != bev.PatIdx() {
			t.Errorf("permutation not reproducible at step %d: %v != %v", i, aev.Order, bev.Order)
			break
		}
	}
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import (
	"errors"
	"strings"
	"testing"
)

// parityPats returns all binary patterns of n inputs with odd parity targets
func parityPats(n int) (inps, trgs [][]float32) {
	np := 1 << n
	for p := 0; p < np; p++ {
		inp := make([]float32, n)
		cnt := 0
		for i := 0; i < n; i++ {
			if p&(1<<i) != 0 {
				inp[i] = 1
				cnt++
			}
		}
		inps = append(inps, inp)
		trgs = append(trgs, []float32{float32(cnt % 2)})
	}
	return
}

// trainUntilZero trains until an epoch has no output errors, returning
// the number of epochs, or -1 if maxEpc was reached
func trainUntilZero(t *testing.T, nt *Network, inps, trgs [][]float32, maxEpc int) int {
	t.Helper()
	for epc := 1; epc <= maxEpc; epc++ {
		nt.ResetEpoch()
		for pi := range inps {
			if _, err := nt.TrainPattern(inps[pi], trgs[pi]); err != nil {
				t.Fatal(err)
			}
		}
		if nt.EpochErrCount() == 0 {
			return epc
		}
	}
	return -1
}

func TestXOR(t *testing.T) {
	inps, trgs := parityPats(2)
	tp := Topology{NInputs: 2, NOutputs: 1, NHidden1: 8}
	for seed := int64(1); seed <= 5; seed++ {
		nt, err := InitNetwork("XOR", tp, defFlags(), defInit(), seed)
		if err != nil {
			t.Fatal(err)
		}
		if nt.Act.NTimeSteps != 2 || nt.Learn.Lrate != 0.8 || nt.Act.Steepness != 0.4 {
			t.Fatalf("unexpected defaults: %+v %+v", nt.Act, nt.Learn)
		}
		epcs := trainUntilZero(t, nt, inps, trgs, 500)
		if epcs < 0 {
			t.Errorf("seed %d: XOR did not converge in 500 epochs, err total: %v count: %v", seed, nt.EpochErrTotal(), nt.EpochErrCount())
			continue
		}
		for pi := range inps {
			ps, _ := nt.TestPattern(inps[pi], trgs[pi])
			if ps.Exceeded {
				t.Errorf("seed %d: pattern %v wrong after training: %v", seed, inps[pi], ps.Errs)
			}
		}
	}
}

func TestParity3(t *testing.T) {
	inps, trgs := parityPats(3)
	tp := Topology{NInputs: 3, NOutputs: 1, NHidden1: 16}
	nt, err := InitNetwork("Parity3", tp, defFlags(), defInit(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if epcs := trainUntilZero(t, nt, inps, trgs, 1000); epcs < 0 {
		t.Errorf("3-bit parity did not converge, err count: %v", nt.EpochErrCount())
	}
}

func TestXORBidir(t *testing.T) {
	inps, trgs := parityPats(2)
	fl := defFlags()
	fl.Bidir = true
	nt, err := InitNetwork("XORBidir", Topology{NInputs: 2, NOutputs: 1, NHidden1: 8}, fl, defInit(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if epcs := trainUntilZero(t, nt, inps, trgs, 1000); epcs < 0 {
		t.Errorf("bidirectional XOR did not converge, err count: %v", nt.EpochErrCount())
	}
}

func TestStructuralZeros(t *testing.T) {
	inps, trgs := parityPats(2)
	for _, fl := range []Flags{defFlags(), {SelfLoopCut: true, LoopCut: true, MultiLayer: true, Bidir: true, InhibInputs: false}} {
		nt, err := InitNetwork("Zeros", Topology{NInputs: 2, NOutputs: 2, NHidden1: 6, NHidden2: 2}, fl, defInit(), 4)
		if err != nil {
			t.Fatal(err)
		}
		before := nt.SnapshotWeights()
		for epc := 0; epc < 20; epc++ {
			nt.ResetEpoch()
			for pi := range inps {
				nt.TrainPattern(inps[pi], []float32{trgs[pi][0], 1 - trgs[pi][0]})
			}
		}
		after := nt.SnapshotWeights()
		nchg := 0
		for i, bw := range before.Values {
			aw := after.Values[i]
			if bw == 0 && aw != 0 {
				t.Fatalf("disabled connection %d became %v", i, aw)
			}
			if bw != aw {
				nchg++
			}
		}
		if nchg == 0 {
			t.Errorf("no weights changed in training")
		}
	}
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		tp    Topology
		field string
	}{
		{Topology{NInputs: 0, NOutputs: 1, NHidden1: 2}, "NInputs"},
		{Topology{NInputs: 2, NOutputs: 0, NHidden1: 2}, "NOutputs"},
		{Topology{NInputs: 2, NOutputs: MaxOutputs + 1, NHidden1: 2}, "NOutputs"},
		{Topology{NInputs: 2, NOutputs: 1, NHidden1: -1}, "NHidden1"},
		{Topology{NInputs: 2, NOutputs: 1, NHidden1: 2, NHidden2: -3}, "NHidden2"},
	}
	for _, c := range cases {
		_, err := InitNetwork("Bad", c.tp, defFlags(), defInit(), 1)
		if !errors.Is(err, ErrConfig) {
			t.Errorf("%+v: expected ErrConfig, got %v", c.tp, err)
			continue
		}
		var ce *ConfigError
		if !errors.As(err, &ce) || ce.Field != c.field {
			t.Errorf("%+v: expected field %s, got %v", c.tp, c.field, err)
		}
	}

	nt := NewNetwork("BadParams")
	nt.Act.NTimeSteps = 0
	if err := nt.Config(Topology{NInputs: 1, NOutputs: 1, NHidden1: 1}, defFlags()); !errors.Is(err, ErrConfig) {
		t.Errorf("NTimeSteps 0: expected ErrConfig, got %v", err)
	}
	if nt.IsBuilt() {
		t.Errorf("network built after config error")
	}
	ip := defInit()
	ip.WtRange = -1
	if _, err := InitNetwork("BadInit", Topology{NInputs: 1, NOutputs: 1}, defFlags(), ip, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("WtRange -1: expected ErrConfig, got %v", err)
	}
}

func TestPatternErrors(t *testing.T) {
	nt := NewNetwork("Unbuilt")
	if _, err := nt.TrainPattern([]float32{1}, []float32{1}); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("expected ErrNotBuilt, got %v", err)
	}
	nt, _ = InitNetwork("Sizes", Topology{NInputs: 2, NOutputs: 1, NHidden1: 4}, defFlags(), defInit(), 1)
	before := nt.SnapshotWeights()
	if _, err := nt.TrainPattern([]float32{1}, []float32{1}); !errors.Is(err, ErrPatternSize) {
		t.Errorf("expected ErrPatternSize for input, got %v", err)
	}
	if _, err := nt.TrainPattern([]float32{1, 0}, []float32{1, 0}); !errors.Is(err, ErrPatternSize) {
		t.Errorf("expected ErrPatternSize for target, got %v", err)
	}
	after := nt.SnapshotWeights()
	CmprFloats(after.Values, before.Values, "weights after rejected pattern", t)
	if nt.Ctrs.TrialTot != 0 || nt.EpochErrTotal() != 0 {
		t.Errorf("counters changed by rejected pattern")
	}
}

func TestEpochCounters(t *testing.T) {
	inps, trgs := parityPats(2)
	nt, _ := InitNetwork("Counters", Topology{NInputs: 2, NOutputs: 1, NHidden1: 8}, defFlags(), defInit(), 1)
	nt.ResetEpoch()
	var tot, mx float32
	cnt := 0
	for pi := range inps {
		ps, err := nt.TrainPattern(inps[pi], trgs[pi])
		if err != nil {
			t.Fatal(err)
		}
		e := ps.Errs[0]
		if e < 0 {
			e = -e
		}
		tot += e
		if e > mx {
			mx = e
		}
		if e > ErrThr {
			cnt++
			if !ps.Exceeded {
				t.Errorf("Exceeded not set for err %v", e)
			}
		}
	}
	CmprFloats([]float32{nt.EpochErrTotal()}, []float32{tot}, "ErrTotal", t)
	if nt.EpochErrCount() != cnt {
		t.Errorf("ErrCount %v != %v", nt.EpochErrCount(), cnt)
	}
	es := nt.EpochStats()
	if es.Epoch != 1 || es.NPats != 4 {
		t.Errorf("epoch stats counters: %+v", es)
	}
	CmprFloats([]float32{es.AvgErr, es.MaxErr, es.Accuracy}, []float32{tot / 4, mx, 100 * float32(4-cnt) / 4}, "EpochStats", t)
	if es.MaxErr <= 0 || es.MaxErr < es.AvgErr {
		t.Errorf("MaxErr %v not above AvgErr %v", es.MaxErr, es.AvgErr)
	}
	if es.Mode != "Train" {
		t.Errorf("epoch stats mode: %v", es.Mode)
	}

	nt.ResetEpoch()
	if nt.EpochErrTotal() != 0 || nt.EpochErrCount() != 0 || nt.Ctrs.Epoch != 2 || nt.Ctrs.Trial != 0 {
		t.Errorf("ResetEpoch did not reset: %v %v %+v", nt.EpochErrTotal(), nt.EpochErrCount(), nt.Ctrs)
	}
}

func TestTestPattern(t *testing.T) {
	nt, _ := InitNetwork("Test", Topology{NInputs: 2, NOutputs: 1, NHidden1: 8}, defFlags(), defInit(), 1)
	before := nt.SnapshotWeights()
	ps1, _ := nt.TestPattern([]float32{1, 0}, []float32{1})
	ps2, _ := nt.TestPattern([]float32{1, 0}, []float32{1})
	after := nt.SnapshotWeights()
	CmprFloats(after.Values, before.Values, "weights after test", t)
	if ps1.Errs[0] != ps2.Errs[0] {
		t.Errorf("test pattern not deterministic: %v %v", ps1.Errs, ps2.Errs)
	}
	if nt.EpochErrTotal() != 0 {
		t.Errorf("test pattern added to epoch errors")
	}
	if es := nt.EpochStats(); es.Mode != "Test" {
		t.Errorf("mode after TestPattern: %v", es.Mode)
	}
	outs := nt.Outputs()
	CmprFloats([]float32{1 - outs[0]}, ps1.Errs, "Outputs", t)
}

func TestParallelOutputs(t *testing.T) {
	inps, trgs := parityPats(3)
	tp := Topology{NInputs: 3, NOutputs: 4, NHidden1: 6, NHidden2: 2}
	run := func(nthr int) *Network {
		nt := NewNetwork("Par")
		nt.NThreads = nthr
		if err := nt.Config(tp, defFlags()); err != nil {
			t.Fatal(err)
		}
		nt.InitWts(8)
		for epc := 0; epc < 5; epc++ {
			nt.ResetEpoch()
			for pi := range inps {
				p := trgs[pi][0]
				nt.TrainPattern(inps[pi], []float32{p, 1 - p, inps[pi][0], inps[pi][2]})
			}
		}
		return nt
	}
	ser := run(1)
	par := run(4)
	sw := ser.SnapshotWeights()
	pw := par.SnapshotWeights()
	for i := range sw.Values {
		if sw.Values[i] != pw.Values[i] {
			t.Fatalf("parallel weights differ at %d: %v vs %v", i, sw.Values[i], pw.Values[i])
		}
	}
	if ser.EpochErrTotal() != par.EpochErrTotal() || ser.EpochErrCount() != par.EpochErrCount() {
		t.Errorf("parallel counters differ: %v %v vs %v %v", ser.EpochErrTotal(), ser.EpochErrCount(), par.EpochErrTotal(), par.EpochErrCount())
	}
}

func TestSnapshotWeights(t *testing.T) {
	nt, _ := InitNetwork("Snap", Topology{NInputs: 2, NOutputs: 2, NHidden1: 3}, defFlags(), defInit(), 6)
	sw := nt.SnapshotWeights()
	nu := nt.Topo.NUnits()
	if sw.Len() != 2*nu*nu {
		t.Fatalf("snapshot size %v", sw.Len())
	}
	ri, si := nt.Topo.HidSt(), 0
	if sw.Values[nu*nu+ri*nu+si] != nt.Wt(1, ri, si) {
		t.Errorf("snapshot value mismatch")
	}
	sw.Values[ri*nu+si] = 100
	if nt.Wt(0, ri, si) == 100 {
		t.Errorf("snapshot is not a copy")
	}
	if !nt.IsConn(0, ri, si) || nt.IsConn(0, 0, 0) {
		t.Errorf("IsConn err")
	}
	if !strings.Contains(nt.SizeReport(), "Network Total") {
		t.Errorf("SizeReport: %v", nt.SizeReport())
	}
}

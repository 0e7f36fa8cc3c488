// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prompt

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emer/edla/patgen"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(NewPlainReader(strings.NewReader(input), &out), &out), &out
}

func TestTyped(t *testing.T) {
	pr, out := newTestPrompter("7\n\nabc\n-2\n3\n0.25\ny\n\nhello\n")
	if v, err := pr.Int("a", 1, 0); err != nil || v != 7 {
		t.Errorf("Int: %v %v", v, err)
	}
	if v, err := pr.Int("b", 5, 0); err != nil || v != 5 {
		t.Errorf("Int default: %v %v", v, err)
	}
	if v, err := pr.Int("c", 1, 0); err != nil || v != 3 {
		t.Errorf("Int retry: %v %v", v, err)
	}
	if strings.Count(out.String(), "invalid answer") != 2 {
		t.Errorf("expected 2 invalid answers in:\n%v", out.String())
	}
	if !strings.Contains(out.String(), "a? (default=1): ") {
		t.Errorf("prompt format:\n%v", out.String())
	}
	if v, err := pr.Float("d", 1); err != nil || v != 0.25 {
		t.Errorf("Float: %v %v", v, err)
	}
	if v, err := pr.Bool("e", false); err != nil || !v {
		t.Errorf("Bool: %v %v", v, err)
	}
	if v, err := pr.Bool("f", true); err != nil || !v {
		t.Errorf("Bool default: %v %v", v, err)
	}
	if v, err := pr.String("g", "x"); err != nil || v != "hello" {
		t.Errorf("String: %v %v", v, err)
	}
	if _, err := pr.Int("h", 1, 0); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestMaxTries(t *testing.T) {
	pr, _ := newTestPrompter("x\ny\nz\n4\n")
	if _, err := pr.Int("n", 1, 0); err == nil {
		t.Errorf("expected error after 3 invalid answers")
	}
}

func TestRunParams(t *testing.T) {
	// all defaults except: 3 inputs, 2 outputs, mirror and parity, 12 hidden, bidir
	ans := []string{
		"",              // seed
		"3",             // inputs
		"",              // patterns = 8
		"2",             // outputs
		"Mirror,Parity", // target types
		"12",            // hidden
		"",              // second hidden block
		"",              // time steps
		"",              // weight range
		"",              // threshold range
		"",              // self loop cut
		"",              // loop cut
		"",              // multi layer
		"",              // inhib inputs
		"y",             // bidir
		"",              // steepness
		"",              // amp
		"0.5",           // lrate
		"",              // bias
		"200",           // max epochs
	}
	pr, _ := newTestPrompter(strings.Join(ans, "\n") + "\n")
	rp := &RunParams{}
	rp.Defaults()
	if err := pr.RunParams(rp); err != nil {
		t.Fatal(err)
	}
	if rp.Pats.NInputs != 3 || rp.Pats.NPats != 8 || rp.Pats.NOutputs != 2 {
		t.Errorf("pats: %+v", rp.Pats)
	}
	if len(rp.Pats.Targets) != 2 || rp.Pats.Targets[0] != patgen.MirrorTargets || rp.Pats.Targets[1] != patgen.ParityTargets {
		t.Errorf("targets: %v", rp.Pats.Targets)
	}
	if rp.Topo.NInputs != 3 || rp.Topo.NOutputs != 2 || rp.Topo.NHidden1 != 12 || rp.Topo.NHidden2 != 0 {
		t.Errorf("topo: %+v", rp.Topo)
	}
	if !rp.Flags.Bidir || !rp.Flags.LoopCut || rp.Learn.Lrate != 0.5 || rp.Act.Steepness != 0.4 || rp.MaxEpochs != 200 {
		t.Errorf("params: %+v %+v %+v %v", rp.Flags, rp.Learn, rp.Act, rp.MaxEpochs)
	}
	if err := rp.Topo.Validate(); err != nil {
		t.Error(err)
	}
}

func TestManualTargets(t *testing.T) {
	pr, out := newTestPrompter("1\n0\n\n1\n")
	pc := &patgen.Config{NInputs: 2, NOutputs: 1, NPats: 4, Targets: []patgen.TargetTypes{patgen.ManualTargets}}
	ps, err := patgen.Generate(pc, pr.ManualTargets())
	if err != nil {
		t.Fatal(err)
	}
	exp := []float32{1, 0, 0, 1}
	for p, e := range exp {
		if ps.Target(p)[0] != e {
			t.Errorf("pattern %d: %v != %v", p, ps.Target(p)[0], e)
		}
	}
	if !strings.Contains(out.String(), "pattern 3 [1,1] target of output 0") {
		t.Errorf("prompt:\n%v", out.String())
	}
}

func TestLineReaderStreams(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "answers")
	if err := os.WriteFile(fn, []byte("42\n"), 0644); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	var out bytes.Buffer
	cfg := rlConfig(in, &out, "hist")
	if cfg.Stdin != in || cfg.Stdout != &out || cfg.HistoryFile != "hist" {
		t.Errorf("readline config does not use the given streams: %+v", cfg)
	}
	if cfg.FuncIsTerminal() {
		t.Errorf("regular file reported as terminal")
	}

	lr, err := NewLineReader(in, &out, "")
	if err != nil {
		t.Fatal(err)
	}
	defer lr.Close()
	if line, err := lr.ReadLine("n? "); err != nil || line != "42" {
		t.Errorf("ReadLine: %q %v", line, err)
	}
	if out.String() != "n? " {
		t.Errorf("prompt not written to out: %q", out.String())
	}
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package prompt asks for run parameters and manual target values on the
console.  Each question shows its default, which is taken when the answer
is empty.  Invalid answers are asked again, up to MaxTries times.
*/
package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks typed questions over a LineReader
type Prompter struct {

	// source of answers
	Rd LineReader

	// error messages for invalid answers are written here, if non-nil
	Out io.Writer

	// number of times a question is asked before giving up
	MaxTries int
}

// NewPrompter returns a Prompter reading from rd
func NewPrompter(rd LineReader, out io.Writer) *Prompter {
	return &Prompter{Rd: rd, Out: out, MaxTries: 3}
}

// ask asks q until parse accepts the answer.  Empty answers return def.
func (pr *Prompter) ask(q, def string, parse func(ans string) error) error {
	tries := pr.MaxTries
	if tries < 1 {
		tries = 1
	}
	var perr error
	for i := 0; i < tries; i++ {
		ans, err := pr.Rd.ReadLine(fmt.Sprintf("%s? (default=%s): ", q, def))
		if err != nil {
			return err
		}
		ans = strings.TrimSpace(ans)
		if ans == "" {
			ans = def
		}
		perr = parse(ans)
		if perr == nil {
			return nil
		}
		if pr.Out != nil {
			fmt.Fprintf(pr.Out, "invalid answer %q: %v\n", ans, perr)
		}
	}
	return fmt.Errorf("prompt: %s: %w", q, perr)
}

// String asks q and returns the answer, or def if empty
func (pr *Prompter) String(q, def string) (string, error) {
	val := def
	err := pr.ask(q, def, func(ans string) error {
		val = ans
		return nil
	})
	return val, err
}

// Int asks q for an integer >= min
func (pr *Prompter) Int(q string, def, min int) (int, error) {
	val := def
	err := pr.ask(q, strconv.Itoa(def), func(ans string) error {
		v, err := strconv.Atoi(ans)
		if err != nil {
			return err
		}
		if v < min {
			return fmt.Errorf("must be >= %d", min)
		}
		val = v
		return nil
	})
	return val, err
}

// Float asks q for a number
func (pr *Prompter) Float(q string, def float32) (float32, error) {
	val := def
	err := pr.ask(q, strconv.FormatFloat(float64(def), 'g', -1, 32), func(ans string) error {
		v, err := strconv.ParseFloat(ans, 32)
		if err != nil {
			return err
		}
		val = float32(v)
		return nil
	})
	return val, err
}

// Bool asks q for a yes / no answer: y, yes, true, 1 or n, no, false, 0
func (pr *Prompter) Bool(q string, def bool) (bool, error) {
	val := def
	dstr := "n"
	if def {
		dstr = "y"
	}
	err := pr.ask(q, dstr, func(ans string) error {
		switch strings.ToLower(ans) {
		case "y", "yes", "true", "1":
			val = true
		case "n", "no", "false", "0":
			val = false
		default:
			return fmt.Errorf("answer y or n")
		}
		return nil
	})
	return val, err
}

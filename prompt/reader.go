// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user interrupts input with ^C
var ErrInterrupted = errors.New("prompt: interrupted")

// LineReader reads one line of input after showing a prompt
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a readline based LineReader with editing and history
// if in is a terminal, and a plain line reader writing prompts to out otherwise.
// history is the readline history file, empty for none.
func NewLineReader(in *os.File, out io.Writer, history string) (LineReader, error) {
	if IsTerminal(in) {
		rl, err := readline.NewEx(rlConfig(in, out, history))
		if err != nil {
			return nil, err
		}
		return &rlReader{rl: rl}, nil
	}
	return NewPlainReader(in, out), nil
}

// rlConfig returns the readline config reading from in and writing to out,
// or to stdout if out is nil
func rlConfig(in *os.File, out io.Writer, history string) *readline.Config {
	return &readline.Config{
		Stdin:           in,
		Stdout:          out,
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		FuncIsTerminal:  func() bool { return IsTerminal(in) },
	}
}

// IsTerminal returns true if f is a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type rlReader struct {
	rl *readline.Instance
}

func (rr *rlReader) ReadLine(prompt string) (string, error) {
	rr.rl.SetPrompt(prompt)
	line, err := rr.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", ErrInterrupted
	}
	return line, err
}

func (rr *rlReader) Close() error { return rr.rl.Close() }

// PlainReader is a LineReader over any io.Reader, for piped input
type PlainReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlainReader returns a PlainReader reading from in and writing prompts to out,
// which may be nil
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next line without its line ending.
// A final line without a newline is returned, and io.EOF after that.
func (pr *PlainReader) ReadLine(prompt string) (string, error) {
	if pr.out != nil {
		fmt.Fprint(pr.out, prompt)
	}
	line, err := pr.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (pr *PlainReader) Close() error { return nil }

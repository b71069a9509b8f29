// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/btcsuite/treapdex/orderedset"
	"github.com/btcsuite/treapdex/priority"
)

// SetConfig houses the options for a SetProcessor.
type SetConfig struct {
	// NewSource returns the priority source for each newly made set.  A nil
	// function gives every set its own unpredictable source.
	NewSource func() priority.Source

	// Strict makes removing a key that is not a member of the set a fatal
	// error instead of printing 0.
	Strict bool
}

// Stats summarizes a completed run.
type Stats struct {
	Commands int
	Sets     int
	Keys     int
}

// SetProcessor executes set commands against the sets it has made.
type SetProcessor struct {
	cfg      SetConfig
	sets     []*orderedset.Set[int64]
	commands int
}

// NewSetProcessor returns a processor with no sets.
func NewSetProcessor(cfg *SetConfig) *SetProcessor {
	p := &SetProcessor{}
	if cfg != nil {
		p.cfg = *cfg
	}
	return p
}

// tokenReader hands out whitespace separated tokens.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

// next returns the next token.  It returns io.EOF when the input is
// exhausted.
func (tr *tokenReader) next() (string, error) {
	if tr.scanner.Scan() {
		return tr.scanner.Text(), nil
	}
	if err := tr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// arity returns the number of arguments taken by the named command and
// whether the command exists.
func arity(name string) (int, bool) {
	switch name {
	case "make":
		return 0, true
	case "len":
		return 1, true
	case "add", "remove", "contains", "next_larger", "prev_smaller":
		return 2, true
	}
	return 0, false
}

// Run reads a command count followed by that many commands from r and writes
// the output of each command to w, one per line.  Processing stops at the
// first error.
func (p *SetProcessor) Run(r io.Reader, w io.Writer) error {
	tokens := newTokenReader(r)
	out := bufio.NewWriter(w)
	err := p.run(tokens, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	return err
}

func (p *SetProcessor) run(tokens *tokenReader, out *bufio.Writer) error {
	countToken, err := tokens.next()
	if err != nil {
		return endOfInput(err, "command count")
	}
	count, err := strconv.Atoi(countToken)
	if err != nil || count < 0 {
		str := fmt.Sprintf("invalid command count %q", countToken)
		return queryError(ErrMalformedInput, str)
	}
	log.Debugf("Processing %d set commands", count)

	for i := 0; i < count; i++ {
		name, err := tokens.next()
		if err != nil {
			return endOfInput(err, fmt.Sprintf("command %d of %d",
				i+1, count))
		}
		numArgs, ok := arity(name)
		if !ok {
			str := fmt.Sprintf("command %d: unknown command %q", i+1,
				name)
			return queryError(ErrUnknownCommand, str)
		}
		args := make([]string, numArgs)
		for j := range args {
			if args[j], err = tokens.next(); err != nil {
				return endOfInput(err, fmt.Sprintf("argument %d "+
					"of command %d (%s)", j+1, i+1, name))
			}
		}

		result, err := p.Exec(name, args...)
		if err != nil {
			return err
		}
		if result != "" {
			if _, err := fmt.Fprintln(out, result); err != nil {
				return err
			}
		}
	}
	return nil
}

// endOfInput converts a failure to read the named token into an error.
func endOfInput(err error, what string) error {
	if errors.Is(err, io.EOF) {
		str := fmt.Sprintf("input ended before %s", what)
		return queryError(ErrMalformedInput, str)
	}
	return err
}

// Exec runs a single named command with its arguments and returns its output
// line, which is empty for commands that print nothing.
func (p *SetProcessor) Exec(name string, args ...string) (string, error) {
	numArgs, ok := arity(name)
	if !ok {
		str := fmt.Sprintf("unknown command %q", name)
		return "", queryError(ErrUnknownCommand, str)
	}
	if len(args) != numArgs {
		str := fmt.Sprintf("%s takes %d arguments, got %d", name,
			numArgs, len(args))
		return "", queryError(ErrMalformedInput, str)
	}
	p.commands++
	log.Tracef("Executing %s %v", name, args)

	if name == "make" {
		var src priority.Source
		if p.cfg.NewSource != nil {
			src = p.cfg.NewSource()
		}
		p.sets = append(p.sets, orderedset.New[int64](src))
		return "", nil
	}

	set, err := p.set(args[0])
	if err != nil {
		return "", err
	}
	if name == "len" {
		return strconv.Itoa(set.Len()), nil
	}

	key, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		str := fmt.Sprintf("%s: invalid key %q", name, args[1])
		return "", queryError(ErrInvalidKey, str)
	}

	switch name {
	case "add":
		return formatBool(set.Add(key)), nil

	case "remove":
		if !p.cfg.Strict {
			return formatBool(set.Remove(key)), nil
		}
		if err := set.RemoveStrict(key); err != nil {
			str := fmt.Sprintf("remove from set %s: %v", args[0], err)
			return "", queryError(ErrAbsentKey, str)
		}
		return formatBool(true), nil

	case "contains":
		return formatBool(set.Contains(key)), nil

	case "next_larger":
		return formatNeighbor(set.After(key)), nil

	case "prev_smaller":
		return formatNeighbor(set.Before(key)), nil
	}

	// Not reached since arity validated the name.
	return "", queryError(ErrUnknownCommand, "unhandled command "+name)
}

// set returns the set addressed by the passed index token.
func (p *SetProcessor) set(indexToken string) (*orderedset.Set[int64], error) {
	index, err := strconv.Atoi(indexToken)
	if err != nil || index < 0 || index >= len(p.sets) {
		str := fmt.Sprintf("set index %q is out of range [0, %d)",
			indexToken, len(p.sets))
		return nil, queryError(ErrSetIndex, str)
	}
	return p.sets[index], nil
}

// Stats returns a summary of the commands processed so far.
func (p *SetProcessor) Stats() Stats {
	stats := Stats{Commands: p.commands, Sets: len(p.sets)}
	for _, set := range p.sets {
		stats.Keys += set.Len()
	}
	return stats
}

// Verify checks the invariants of every set made so far.
func (p *SetProcessor) Verify() error {
	for i, set := range p.sets {
		if err := set.Verify(); err != nil {
			return fmt.Errorf("set %d: %w", i, err)
		}
	}
	return nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatNeighbor(key int64, ok bool) string {
	if !ok {
		return "!"
	}
	return strconv.FormatInt(key, 10)
}

// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/treapdex/pokedex"
)

// DemoScript is the reference sequence of pokedex commands replayed by the
// pokedex driver's demo mode.
const DemoScript = `catch Pikachu
before Pikachu
catch Bulbasaur
before Pikachu
after Pikachu
before Magikarp
after Magikarp
catch Magikarp
before Pikachu
`

// PokedexSession executes pokedex commands against a single pokedex.
type PokedexSession struct {
	dex     *pokedex.Pokedex
	queries int
}

// NewPokedexSession returns a session operating on dex.
func NewPokedexSession(dex *pokedex.Pokedex) *PokedexSession {
	return &PokedexSession{dex: dex}
}

// Run reads commands line by line from r and writes the result of every
// before and after query to w.  Processing stops at the first error.
func (s *PokedexSession) Run(r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	err := s.run(r, out)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	return err
}

func (s *PokedexSession) run(r io.Reader, out *bufio.Writer) error {
	scanner := bufio.NewScanner(r)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := s.Exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		if result != "" {
			if _, err := fmt.Fprintln(out, result); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// Exec runs a single command line and returns the line to print, which is
// empty for catch.
func (s *PokedexSession) Exec(line string) (string, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	if name != "catch" && name != "before" && name != "after" {
		str := fmt.Sprintf("unknown command %q", name)
		return "", queryError(ErrUnknownCommand, str)
	}
	if arg == "" {
		str := fmt.Sprintf("%s requires a name", name)
		return "", queryError(ErrMalformedInput, str)
	}

	switch name {
	case "catch":
		s.dex.Catch(arg)
		return "", nil

	case "before":
		s.queries++
		return formatFound(s.dex.Beside(pokedex.Before, arg)), nil
	}

	s.queries++
	return formatFound(s.dex.Beside(pokedex.After, arg)), nil
}

// Queries returns the number of before and after queries answered.
func (s *PokedexSession) Queries() int {
	return s.queries
}

func formatFound(name string, ok bool) string {
	if !ok {
		return "No pokemon found."
	}
	return "Pokemon found: " + name
}

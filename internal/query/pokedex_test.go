// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcsuite/treapdex/pokedex"
	"github.com/btcsuite/treapdex/priority"
	"github.com/stretchr/testify/require"
)

// TestPokedexSessionDemo ensures the demo script produces the reference
// output.
func TestPokedexSessionDemo(t *testing.T) {
	t.Parallel()

	want := `No pokemon found.
Pokemon found: Bulbasaur
No pokemon found.
Pokemon found: Bulbasaur
Pokemon found: Pikachu
Pokemon found: Magikarp
`

	session := NewPokedexSession(pokedex.New(priority.NewSeeded(1)))
	var out bytes.Buffer
	require.NoError(t, session.Run(strings.NewReader(DemoScript), &out))
	require.Equal(t, want, out.String())
	require.Equal(t, 6, session.Queries())
}

// TestPokedexSessionInput ensures comments, blank lines, and names containing
// spaces are handled.
func TestPokedexSessionInput(t *testing.T) {
	t.Parallel()

	input := `# a comment

catch   Mr. Mime
catch Abra
  after Abra  
before Mr. Mime
before Abra
`
	want := `Pokemon found: Mr. Mime
Pokemon found: Abra
No pokemon found.
`

	dex := pokedex.New(priority.NewSeeded(2))
	session := NewPokedexSession(dex)
	var out bytes.Buffer
	require.NoError(t, session.Run(strings.NewReader(input), &out))
	require.Equal(t, want, out.String())
	require.True(t, dex.Caught("Mr. Mime"))
}

// TestPokedexSessionErrors ensures bad commands are rejected with the
// expected codes and the line they appeared on.
func TestPokedexSessionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		code  ErrorCode
		line  string
	}{
		{name: "missing name", input: "catch", code: ErrMalformedInput,
			line: "line 1"},
		{name: "unknown", input: "catch Abra\nrelease Abra",
			code: ErrUnknownCommand, line: "line 2"},
		{name: "unknown without name", input: "\n\nrelease",
			code: ErrUnknownCommand, line: "line 3"},
	}

	for _, test := range tests {
		session := NewPokedexSession(pokedex.New(priority.NewSeeded(3)))
		err := session.Run(strings.NewReader(test.input), &bytes.Buffer{})
		requireCode(t, err, test.code)
		require.Containsf(t, err.Error(), test.line, "%q", test.name)
	}
}

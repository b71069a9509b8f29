// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/treapdex/priority"
	"github.com/stretchr/testify/require"
)

// newTestProcessor returns a processor whose sets draw from seeded sources.
func newTestProcessor(strict bool) *SetProcessor {
	var seed uint64
	return NewSetProcessor(&SetConfig{
		NewSource: func() priority.Source {
			seed++
			return priority.NewSeeded(seed)
		},
		Strict: strict,
	})
}

// requireCode asserts err is a query Error with the passed code.
func requireCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()

	var qErr Error
	require.Truef(t, errors.As(err, &qErr), "unexpected error type %T: %v",
		err, err)
	require.Equal(t, code, qErr.ErrorCode, qErr.Description)
}

// TestSetProcessorRun ensures a full command stream produces the expected
// output.
func TestSetProcessorRun(t *testing.T) {
	t.Parallel()

	input := `17
make
add 0 5
add 0 1
add 0 5
contains 0 5
contains 0 4
next_larger 0 1
next_larger 0 5
prev_smaller 0 5
prev_smaller 0 1
len 0
make
len 1
add 1 -9223372036854775808
next_larger 1 -9223372036854775808
remove 0 1
remove 0 1
`
	want := `1
1
0
1
0
5
!
1
!
2
0
1
!
1
0
`

	p := newTestProcessor(false)
	var out bytes.Buffer
	require.NoError(t, p.Run(strings.NewReader(input), &out))
	require.Equal(t, want, out.String())
	require.NoError(t, p.Verify())
	require.Equal(t, Stats{Commands: 17, Sets: 2, Keys: 2}, p.Stats())
}

// TestSetProcessorErrors ensures malformed streams are rejected with the
// expected error codes.
func TestSetProcessorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		code  ErrorCode
	}{
		{name: "empty input", input: "", code: ErrMalformedInput},
		{name: "bad count", input: "three", code: ErrMalformedInput},
		{name: "negative count", input: "-1", code: ErrMalformedInput},
		{name: "too few commands", input: "2 make", code: ErrMalformedInput},
		{name: "missing argument", input: "2 make add 0", code: ErrMalformedInput},
		{name: "unknown command", input: "1 pop 0", code: ErrUnknownCommand},
		{name: "no such set", input: "1 add 0 1", code: ErrSetIndex},
		{name: "bad set index", input: "2 make len x", code: ErrSetIndex},
		{name: "bad key", input: "2 make add 0 1.5", code: ErrInvalidKey},
		{name: "key overflow", input: "2 make add 0 9223372036854775808",
			code: ErrInvalidKey},
	}

	for _, test := range tests {
		p := newTestProcessor(false)
		var out bytes.Buffer
		err := p.Run(strings.NewReader(test.input), &out)
		require.Errorf(t, err, "%q", test.name)

		var qErr Error
		require.Truef(t, errors.As(err, &qErr), "%q: unexpected error "+
			"type %T", test.name, err)
		require.Equalf(t, test.code, qErr.ErrorCode, "%q: %v", test.name,
			err)
	}
}

// TestSetProcessorOutputBeforeError ensures output from commands preceding a
// failure is still written.
func TestSetProcessorOutputBeforeError(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(false)
	var out bytes.Buffer
	err := p.Run(strings.NewReader("3 make add 0 7 add 3 7"), &out)
	requireCode(t, err, ErrSetIndex)
	require.Equal(t, "1\n", out.String())
}

// TestSetProcessorStrict ensures strict removal turns an absent key into an
// error.
func TestSetProcessorStrict(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(true)
	_, err := p.Exec("make")
	require.NoError(t, err)

	got, err := p.Exec("add", "0", "4")
	require.NoError(t, err)
	require.Equal(t, "1", got)

	got, err = p.Exec("remove", "0", "4")
	require.NoError(t, err)
	require.Equal(t, "1", got)

	_, err = p.Exec("remove", "0", "4")
	requireCode(t, err, ErrAbsentKey)
}

// TestSetProcessorExecArgs ensures Exec validates its arguments.
func TestSetProcessorExecArgs(t *testing.T) {
	t.Parallel()

	p := newTestProcessor(false)
	_, err := p.Exec("make", "0")
	requireCode(t, err, ErrMalformedInput)

	_, err = p.Exec("frobnicate")
	requireCode(t, err, ErrUnknownCommand)

	// A processor without a configuration still makes usable sets.
	p = NewSetProcessor(nil)
	_, err = p.Exec("make")
	require.NoError(t, err)
	got, err := p.Exec("add", "0", "1")
	require.NoError(t, err)
	require.Equal(t, "1", got)
}

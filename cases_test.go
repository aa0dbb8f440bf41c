package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// What the callbacks of a test program record, plus the positional arguments.
type parseState struct {
	Verbose bool
	Print   string
	Left    []string
}

type parseCase struct {
	args     []string
	err      error
	expected parseState
}

func noErrorCase(expected parseState, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func (me parseCase) Run(t *testing.T, newProgram func(s *parseState) *Program) {
	var s parseState
	left, err := newProgram(&s).Parse(me.args)
	assert.EqualValues(t, me.err, err, "%v", me.args)
	if me.err != nil {
		return
	}
	if len(left) != 0 {
		s.Left = left
	}
	assert.EqualValues(t, me.expected, s, "%v", me.args)
}

func RunCases(t *testing.T, cases []parseCase, newProgram func(s *parseState) *Program) {
	for _, _case := range cases {
		_case.Run(t, newProgram)
	}
}

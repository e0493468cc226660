package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const palindromeLikeDFA = `a b
0 1 2
0
2
0 a 1
1 b 2`

func Test_Parse_ValidDFA(t *testing.T) {
	assert := assert.New(t)

	d, err := ParseString(palindromeLikeDFA)
	assert.NoError(err)
	assert.True(d.Validate("ab"))
	assert.False(d.Validate("a"))
	assert.False(d.Validate("ba"))
}

func Test_Parse_EmptyAcceptsIffStartIsFinal(t *testing.T) {
	assert := assert.New(t)

	acceptsEmpty := `a
0
0
0
0 a 0`
	d, err := ParseString(acceptsEmpty)
	assert.NoError(err)
	assert.True(d.Validate(""))

	d2, err := ParseString(palindromeLikeDFA)
	assert.NoError(err)
	assert.False(d2.Validate(""))
}

func Test_Parse_FormatErrors(t *testing.T) {
	testCases := []struct {
		name string
		def  string
	}{
		{
			name: "missing states section",
			def:  "a b",
		},
		{
			name: "duplicate alphabet symbol",
			def: `a a
0 1
0
1
0 a 1`,
		},
		{
			name: "non-integer state",
			def: `a
0 x
0
1
0 a 1`,
		},
		{
			name: "duplicate state",
			def: `a
0 0
0
0
0 a 0`,
		},
		{
			name: "initial state not in states",
			def: `a
0 1
5
1
0 a 1`,
		},
		{
			name: "final state not in states",
			def: `a
0 1
0
5
0 a 1`,
		},
		{
			name: "duplicate final state",
			def: `a
0 1
0
1 1
0 a 1`,
		},
		{
			name: "transition symbol not in alphabet",
			def: `a
0 1
0
1
0 b 1`,
		},
		{
			name: "duplicate transition key",
			def: `a b
0 1
0
1
0 a 1
0 a 1`,
		},
		{
			name: "no transitions",
			def: `a
0
0
0
`,
		},
		{
			name: "unused state",
			def: `a
0 1 2
0
2
0 a 2`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := ParseString(tc.def)
			assert.Error(err)

			var fe *FormatError
			assert.ErrorAs(err, &fe)
		})
	}
}

func Test_Parse_SpaceEscape(t *testing.T) {
	assert := assert.New(t)

	def := `\s
0 1
0
1
0 \s 1`
	d, err := ParseString(def)
	assert.NoError(err)
	assert.True(d.Validate(" "))
	assert.False(d.Validate("a"))
}

func Test_Parse_ReadsFromReader(t *testing.T) {
	assert := assert.New(t)

	d, err := Parse(strings.NewReader(palindromeLikeDFA))
	assert.NoError(err)
	assert.True(d.Validate("ab"))
}

func Test_Transitions_ListsEveryTransition(t *testing.T) {
	assert := assert.New(t)

	d, err := ParseString(palindromeLikeDFA)
	assert.NoError(err)

	entries := d.Transitions()
	assert.Len(entries, 2)
	assert.Contains(entries, TransitionEntry{From: 0, Symbol: 'a', To: 1})
	assert.Contains(entries, TransitionEntry{From: 1, Symbol: 'b', To: 2})
}

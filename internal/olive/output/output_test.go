package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/olive/internal/olive/lex"
	"github.com/dekarrin/olive/internal/olive/parse"
)

func Test_WriteTokens_SuccessfulScan(t *testing.T) {
	assert := assert.New(t)

	res, err := lex.Scan("number n = 42")
	assert.NoError(err)

	var buf strings.Builder
	assert.NoError(WriteTokens(&buf, res, nil))

	out := buf.String()
	assert.Contains(out, "Token list:")
	assert.Contains(out, "(Identifier, 1)")
	assert.Contains(out, "(Constant, 1)")
	assert.Contains(out, "Identifier table:")
	assert.Contains(out, "K: n, V: 1")
	assert.Contains(out, "Constant table:")
	assert.Contains(out, "K: 42, V: 1")
	assert.Contains(out, "Lexically correct!")
}

func Test_WriteTokens_ReportsLexicalError(t *testing.T) {
	assert := assert.New(t)

	res, err := lex.Scan("const 2a: number = 1")
	assert.Error(err)

	var buf strings.Builder
	assert.NoError(WriteTokens(&buf, res, err))

	out := buf.String()
	assert.Contains(out, "Lexical error on line 1 => undefined token: 2a")
}

func Test_WriteParseTree_RendersNodesWithReferences(t *testing.T) {
	assert := assert.New(t)

	var buf strings.Builder
	assert.NoError(WriteParseTree(&buf, &parse.Tree{Nodes: []parse.Node{
		{Symbol: "S", Parent: -1, Sibling: -1, LastChild: 1},
		{Symbol: "a", Parent: 0, Sibling: -1, LastChild: -1},
	}}))

	out := buf.String()
	assert.Contains(out, "Node 0: Symbol = S, Parent = none, Sibling = none")
	assert.Contains(out, "Node 1: Symbol = a, Parent = S (0), Sibling = none")
}

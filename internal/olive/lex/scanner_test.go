package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func Test_Scan_NumberDeclaration(t *testing.T) {
	assert := assert.New(t)

	res, err := Scan("number n = 42")
	assert.NoError(err)
	assert.Equal([]Kind{KeywordNumber, Identifier, Assign, Constant}, kinds(res.Tokens))

	idTok := res.Tokens[1]
	assert.Equal(1, idTok.Position)
	name, ok := res.Identifiers.Get(1)
	assert.True(ok)
	assert.Equal("n", name)

	constTok := res.Tokens[3]
	assert.Equal(1, constTok.Position)
	val, ok := res.Constants.Get(1)
	assert.True(ok)
	assert.Equal("42", val)
}

func Test_Scan_StringDeclaration(t *testing.T) {
	assert := assert.New(t)

	res, err := Scan(`s: string = "abc"`)
	assert.NoError(err)
	assert.Equal([]Kind{Identifier, Colon, KeywordString, Assign, Constant}, kinds(res.Tokens))
	assert.Equal(`"abc"`, res.Tokens[4].Inner)
}

func Test_Scan_SignedConstantAndLessEqual(t *testing.T) {
	assert := assert.New(t)

	res, err := Scan("if x <= 0 { y = -1 }")
	assert.NoError(err)

	ks := kinds(res.Tokens)
	assert.Contains(ks, LessEqual)

	var sawNegativeOne bool
	for _, tok := range res.Tokens {
		if tok.Kind == Constant && tok.Inner == "-1" {
			sawNegativeOne = true
		}
	}
	assert.True(sawNegativeOne)
}

func Test_Scan_LongestMatchOperators(t *testing.T) {
	assert := assert.New(t)

	res, err := Scan("<=")
	assert.NoError(err)
	assert.Equal([]Kind{LessEqual}, kinds(res.Tokens))
	assert.Equal("<=", res.Tokens[0].Inner)
}

func Test_Scan_LexicalErrorReportsLineAndLexeme(t *testing.T) {
	assert := assert.New(t)

	_, err := Scan("const 2a: number = 1")

	var lexErr *LexError
	assert.ErrorAs(err, &lexErr)
	assert.Equal(1, lexErr.Line)
	assert.Equal("2a", lexErr.Lexeme)
}

func Test_Scan_LineCounterTracksNewlines(t *testing.T) {
	assert := assert.New(t)

	res, err := Scan("number a = 1\nnumber b = 2")
	assert.NoError(err)

	var bLine int
	for _, tok := range res.Tokens {
		if tok.Kind == Identifier && tok.Inner == "b" {
			bLine = tok.Line
		}
	}
	assert.Equal(2, bLine)
}

func Test_Scan_CommentsAreSkipped(t *testing.T) {
	assert := assert.New(t)

	res, err := Scan("number a = 1 -- this is a comment\nnumber b = 2")
	assert.NoError(err)
	assert.Equal(8, len(res.Tokens))
}

func Test_Scan_EveryTokenInnerIsASourceSlice(t *testing.T) {
	assert := assert.New(t)

	src := `number n = 42`
	res, err := Scan(src)
	assert.NoError(err)

	for _, tok := range res.Tokens {
		assert.Contains(src, tok.Inner)
	}
}

func Test_Scan_NonIdentifierTokensCarryZeroPosition(t *testing.T) {
	assert := assert.New(t)

	res, err := Scan("number n = 42")
	assert.NoError(err)

	assert.Equal(0, res.Tokens[0].Position) // KeywordNumber
	assert.Equal(0, res.Tokens[2].Position) // Assign
}

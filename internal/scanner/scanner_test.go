package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yulc/internal/source"
	"yulc/token"
)

type scanned struct {
	kind    token.Kind
	literal string
}

func scanAll(t *testing.T, text string) []scanned {
	t.Helper()
	s := New(source.NewCharStream("test.yul", text), 0)
	var out []scanned
	for s.CurrentToken() != token.EOS {
		out = append(out, scanned{s.CurrentToken(), s.CurrentLiteral()})
		s.Advance()
	}
	require.NoError(t, s.Err())
	return out
}

func TestScanTokens(t *testing.T) {
	tokens := scanAll(t, `{ let x:u256 := add(0x20, 1) function f(a) -> r { leave } }`)

	expected := []scanned{
		{token.LBRACE, "{"},
		{token.LET, "let"},
		{token.IDENTIFIER, "x"},
		{token.COLON, ":"},
		{token.IDENTIFIER, "u256"},
		{token.ASSIGN, ":="},
		{token.IDENTIFIER, "add"},
		{token.LPAREN, "("},
		{token.NUMBER, "0x20"},
		{token.COMMA, ","},
		{token.NUMBER, "1"},
		{token.RPAREN, ")"},
		{token.FUNCTION, "function"},
		{token.IDENTIFIER, "f"},
		{token.LPAREN, "("},
		{token.IDENTIFIER, "a"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENTIFIER, "r"},
		{token.LBRACE, "{"},
		{token.LEAVE, "leave"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
	}
	assert.Equal(t, expected, tokens)
}

func TestScanLiterals(t *testing.T) {
	tokens := scanAll(t, `"a\"b" 'c' hex"00ff" true false 12ab $x.y #`)

	assert.Equal(t, []scanned{
		{token.STRING, `"a\"b"`},
		{token.STRING, `'c'`},
		{token.HEX_STRING, `hex"00ff"`},
		{token.TRUE, "true"},
		{token.FALSE, "false"},
		{token.NUMBER, "12ab"},
		{token.IDENTIFIER, "$x.y"},
		{token.ILLEGAL, "#"},
	}, tokens)
}

func TestLocations(t *testing.T) {
	s := New(source.NewCharStream("test.yul", "{\n  foo }"), 2)

	assert.Equal(t, source.Location{Start: 0, End: 1, SourceIndex: 2}, s.CurrentLocation())
	s.Advance()
	assert.Equal(t, source.Location{Start: 4, End: 7, SourceIndex: 2}, s.CurrentLocation())
	s.Advance()
	s.Advance()
	assert.Equal(t, token.Kind(token.EOS), s.CurrentToken())
	assert.Equal(t, source.Location{Start: 9, End: 9, SourceIndex: 2}, s.CurrentLocation())
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens := scanAll(t, "// line\n{ /* block\n */ } /**/")
	assert.Equal(t, []scanned{{token.LBRACE, "{"}, {token.RBRACE, "}"}}, tokens)
}

func TestDocCommentAttachment(t *testing.T) {
	text := "/// @src 0:10:5\n/// @ast-id 3\n{ // plain\n/** @src 1:2:3 */ x\n /**\n  * @src 2:0:1\n  */ y z }"
	s := New(source.NewCharStream("test.yul", text), 0)

	assert.Equal(t, token.Kind(token.LBRACE), s.CurrentToken())
	assert.Equal(t, " @src 0:10:5\n @ast-id 3", s.CurrentCommentLiteral())

	s.Advance()
	assert.Equal(t, "x", s.CurrentLiteral())
	assert.Equal(t, " @src 1:2:3 ", s.CurrentCommentLiteral())

	s.Advance()
	assert.Equal(t, "y", s.CurrentLiteral())
	assert.Equal(t, "\n @src 2:0:1\n  ", s.CurrentCommentLiteral())

	s.Advance()
	assert.Equal(t, "z", s.CurrentLiteral())
	assert.Empty(t, s.CurrentCommentLiteral())
}

func TestDocCommentBeforeEOS(t *testing.T) {
	s := New(source.NewCharStream("test.yul", "{} /// @src 0:0:1"), 0)
	s.Advance()
	s.Advance()
	assert.Equal(t, token.Kind(token.EOS), s.CurrentToken())
	assert.Equal(t, " @src 0:0:1", s.CurrentCommentLiteral())
}

func TestUnterminatedComment(t *testing.T) {
	s := New(source.NewCharStream("test.yul", "{ /* never closed"), 0)
	assert.Equal(t, token.Kind(token.LBRACE), s.CurrentToken())

	s.Advance()
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "unterminated block comment")
	assert.Equal(t, token.Kind(token.EOS), s.CurrentToken())
	assert.Equal(t, 2, s.CurrentLocation().Start)

	// Stays put
	s.Advance()
	assert.Equal(t, token.Kind(token.EOS), s.CurrentToken())
}

func TestDocBlockText(t *testing.T) {
	assert.Equal(t, " @src 0:1:2 ", docBlockText("/** @src 0:1:2 */"))
	assert.Equal(t, "\n @a 1\n @b 2\n ", docBlockText("/**\n * @a 1\n * @b 2\n */"))
}

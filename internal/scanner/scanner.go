// Package scanner turns source text into the token stream consumed by the
// parser. Documentation comments (`///` lines and `/** */` blocks) are not
// tokens; their text is attached to the token that follows them.
package scanner

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"
	"yulc/internal/source"
	"yulc/token"
)

var log = commonlog.GetLogger("yulc.scanner")

// Order matters: the first matching rule wins.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `[ \t\r\n\v\f]+`},

		// Comments
		{Name: "DocComment", Pattern: `///[^\n]*`},
		{Name: "DocBlock", Pattern: `/\*\*([^*]|\*+[^*/])*\*+/`},
		{Name: "BlockComment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`},
		{Name: "UnterminatedComment", Pattern: `/\*`},
		{Name: "Comment", Pattern: `//[^\n]*`},

		// Literals
		{Name: "HexString", Pattern: `hex"[0-9a-fA-F_]*"|hex'[0-9a-fA-F_]*'`},
		{Name: "String", Pattern: `"(\\.|[^"\\\n])*"|'(\\.|[^'\\\n])*'`},
		{Name: "Number", Pattern: `[0-9][0-9a-zA-Z_]*`},

		// Keywords and identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z_$0-9.]*`},

		{Name: "Punctuation", Pattern: `:=|->|[{}(),:]`},

		// Anything else is handed to the parser as ILLEGAL
		{Name: "Illegal", Pattern: `.`},
	},
})

var symbolNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, t := range Lexer.Symbols() {
		names[t] = name
	}
	return names
}()

// Scanner is a pull scanner over one source unit. It always has a current
// token; after the last token, or after a fatal error, that token is EOS.
type Scanner struct {
	lex         lexer.Lexer
	sourceIndex int

	kind     token.Kind
	literal  string
	location source.Location
	comment  string

	err error
}

// New creates a scanner over cs and positions it on the first token.
// Token locations carry sourceIndex.
func New(cs *source.CharStream, sourceIndex int) *Scanner {
	s := &Scanner{sourceIndex: sourceIndex}

	lex, err := Lexer.LexString(cs.Name, cs.Text)
	if err != nil {
		s.fail(fmt.Errorf("%s: %w", cs.Name, err), 0)
		return s
	}
	s.lex = lex
	s.Advance()
	return s
}

func (s *Scanner) CurrentToken() token.Kind {
	return s.kind
}

func (s *Scanner) CurrentLiteral() string {
	return s.literal
}

func (s *Scanner) CurrentLocation() source.Location {
	return s.location
}

// CurrentCommentLiteral returns the documentation text attached to the
// current token. Consecutive doc comments are joined with newlines.
func (s *Scanner) CurrentCommentLiteral() string {
	return s.comment
}

// Err returns the error that stopped scanning, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Advance moves to the next token. It does nothing after a fatal error.
func (s *Scanner) Advance() {
	if s.err != nil {
		return
	}

	var docs []string
	for {
		tok, err := s.lex.Next()
		if err != nil {
			s.fail(err, s.location.End)
			return
		}

		if tok.EOF() {
			s.set(token.EOS, "", tok.Pos.Offset, tok.Pos.Offset)
			s.comment = strings.Join(docs, "\n")
			return
		}

		start, end := tok.Pos.Offset, tok.Pos.Offset+len(tok.Value)

		var kind token.Kind
		switch symbolNames[tok.Type] {
		case "Whitespace", "Comment", "BlockComment":
			continue
		case "DocComment":
			docs = append(docs, strings.TrimPrefix(tok.Value, "///"))
			continue
		case "DocBlock":
			docs = append(docs, docBlockText(tok.Value))
			continue
		case "UnterminatedComment":
			s.fail(fmt.Errorf("%s: unterminated block comment", tok.Pos), start)
			return
		case "HexString":
			kind = token.HEX_STRING
		case "String":
			kind = token.STRING
		case "Number":
			kind = token.NUMBER
		case "Ident":
			kind = token.LookupIdent(tok.Value)
		case "Punctuation":
			kind = token.Kind(tok.Value)
		default:
			kind = token.ILLEGAL
		}

		s.set(kind, tok.Value, start, end)
		s.comment = strings.Join(docs, "\n")
		return
	}
}

func (s *Scanner) set(kind token.Kind, literal string, start, end int) {
	s.kind = kind
	s.literal = literal
	s.location = source.Location{Start: start, End: end, SourceIndex: s.sourceIndex}
}

func (s *Scanner) fail(err error, offset int) {
	log.Errorf("scanning stopped: %s", err)
	s.err = err
	s.comment = ""
	s.set(token.EOS, "", offset, offset)
}

// docBlockText strips the comment markers of a /** */ block and the leading
// '*' of its continuation lines.
func docBlockText(raw string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "/**"), "*/")
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "*") {
			lines[i] = trimmed[1:]
		}
	}
	return strings.Join(lines, "\n")
}

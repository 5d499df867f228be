// Package token SPDX-License-Identifier: Apache-2.0
package token

type Kind string

const (
	ILLEGAL = "ILLEGAL"
	EOS     = "EOS"

	// Identifiers + literals
	IDENTIFIER = "IDENTIFIER" // add, mstore, x, $y, a.b ...
	NUMBER     = "NUMBER"     // 42, 0x2a
	STRING     = "STRING"     // "abc"
	HEX_STRING = "HEX_STRING" // hex"00ff"

	// Delimiters
	COMMA  = ","
	COLON  = ":"
	ASSIGN = ":="
	ARROW  = "->"

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"

	// Keywords
	FUNCTION = "FUNCTION"
	LET      = "LET"
	IF       = "IF"
	SWITCH   = "SWITCH"
	CASE     = "CASE"
	DEFAULT  = "DEFAULT"
	FOR      = "FOR"
	BREAK    = "BREAK"
	CONTINUE = "CONTINUE"
	LEAVE    = "LEAVE"
	TRUE     = "TRUE"
	FALSE    = "FALSE"
)

var keywords = map[string]Kind{
	"function": FUNCTION,
	"let":      LET,
	"if":       IF,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"for":      FOR,
	"break":    BREAK,
	"continue": CONTINUE,
	"leave":    LEAVE,
	"true":     TRUE,
	"false":    FALSE,
}

func LookupIdent(ident string) Kind {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

// Spelling returns the source text of a keyword or delimiter kind.
func Spelling(k Kind) string {
	for word, kw := range keywords {
		if kw == k {
			return word
		}
	}
	return string(k)
}

// Describe renders a token for diagnostics, e.g. "'{'", "identifier \"x\"",
// "end of source".
func Describe(k Kind, literal string) string {
	switch k {
	case EOS:
		return "end of source"
	case ILLEGAL:
		return "illegal character '" + literal + "'"
	case IDENTIFIER:
		return "identifier \"" + literal + "\""
	case NUMBER:
		return "number " + literal
	case STRING, HEX_STRING:
		return "string literal"
	}
	if literal == "" {
		literal = Spelling(k)
	}
	return "'" + literal + "'"
}

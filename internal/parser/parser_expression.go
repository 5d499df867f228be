package parser

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"yulc/internal/ast"
	"yulc/internal/errors"
	"yulc/token"
)

// Number literals must stay below 2**256.
var numberLimit = new(big.Int).Lsh(big.NewInt(1), 256)

func (p *Parser) parseExpression() ast.Expression {
	defer p.leave()
	if !p.enter() {
		return &ast.BadExpr{Debug: p.createDebugData(), Message: "nesting too deep"}
	}

	switch {
	case p.check(token.IDENTIFIER):
		ident := p.parseIdentifier()
		if p.check(token.LPAREN) {
			return p.parseCall(ident)
		}
		if p.dialect.IsBuiltin(ident.Name) {
			p.report(errors.BuiltinNotCalled(ident.Name, ident.Debug.Native))
		}
		return ident

	case p.isLiteral():
		return p.parseLiteral()
	}

	dd := p.createDebugData()
	found := p.describeCurrent()
	p.report(errors.LiteralOrIdentifierExpected(found, p.scanner.CurrentLocation()))
	p.skipUnlessRecoveryPoint()
	p.finish(dd)
	return &ast.BadExpr{Debug: dd, Message: "expected literal or identifier, got " + found}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	dd := p.createDebugData()
	ident := &ast.Identifier{Debug: dd, Name: p.literal()}
	p.advance()
	p.finish(dd)
	return ident
}

// parseCall parses the argument list of a call to name. The call starts
// where its name starts.
func (p *Parser) parseCall(name *ast.Identifier) *ast.FunctionCall {
	dd := cloneDebugData(name.Debug)
	call := &ast.FunctionCall{Debug: dd, FunctionName: name}

	p.expect(token.LPAREN)
	if !p.check(token.RPAREN) {
		for {
			call.Arguments = append(call.Arguments, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)

	p.finish(dd)
	return call
}

func (p *Parser) parseLiteral() *ast.Literal {
	dd := p.createDebugData()
	lit := &ast.Literal{Debug: dd}
	raw := p.literal()
	loc := p.scanner.CurrentLocation()

	switch p.current() {
	case token.NUMBER:
		lit.Kind = ast.NumberLiteral
		lit.Value = raw
		if !isValidNumberLiteral(raw) {
			p.report(errors.InvalidNumberLiteral(raw, loc))
		}
	case token.TRUE, token.FALSE:
		lit.Kind = ast.BooleanLiteral
		lit.Value = raw
	case token.STRING:
		lit.Kind = ast.StringLiteral
		value, ok := unquote(raw)
		if !ok {
			p.report(errors.InvalidStringLiteral(raw, loc))
		}
		lit.Value = value
	case token.HEX_STRING:
		lit.Kind = ast.StringLiteral
		lit.Hex = true
		value, ok := decodeHexString(raw)
		if !ok {
			p.report(errors.InvalidStringLiteral(raw, loc))
		}
		lit.Value = value
	}
	p.advance()

	if p.match(token.COLON) {
		lit.Type = p.expectType()
	}

	p.finish(dd)
	return lit
}

func (p *Parser) parseTypedName() *ast.TypedName {
	dd := p.createDebugData()
	tn := &ast.TypedName{Debug: dd}
	tn.Name = p.expectIdentifier()
	if p.match(token.COLON) {
		tn.Type = p.expectType()
	}
	p.finish(dd)
	return tn
}

// isValidNumberLiteral accepts decimal digits or 0x followed by at least
// one hex digit, with a value below 2**256.
func isValidNumberLiteral(literal string) bool {
	digits, base := literal, 10
	if strings.HasPrefix(literal, "0x") {
		digits, base = literal[2:], 16
	}
	if digits == "" {
		return false
	}

	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c >= '0' && c <= '9':
		case base == 16 && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
		default:
			return false
		}
	}

	v, ok := new(big.Int).SetString(digits, base)
	return ok && v.Cmp(numberLimit) < 0
}

// unquote decodes a single or double quoted string literal. The result is
// a byte string, so \x escapes above 0x7f and raw bytes that are not valid
// UTF-8 are kept as single bytes.
func unquote(literal string) (string, bool) {
	if len(literal) < 2 {
		return "", false
	}
	quote := literal[0]
	body := literal[1 : len(literal)-1]

	var b strings.Builder
	for len(body) > 0 {
		if body[0] >= utf8.RuneSelf {
			if r, size := utf8.DecodeRuneInString(body); r == utf8.RuneError && size == 1 {
				b.WriteByte(body[0])
				body = body[1:]
				continue
			}
		}
		r, multibyte, tail, err := strconv.UnquoteChar(body, quote)
		if err != nil {
			return "", false
		}
		if multibyte {
			b.WriteRune(r)
		} else {
			b.WriteByte(byte(r))
		}
		body = tail
	}
	return b.String(), true
}

// decodeHexString decodes hex"..." with optional '_' between byte pairs.
func decodeHexString(literal string) (string, bool) {
	body := literal[len(`hex"`) : len(literal)-1]
	if strings.HasPrefix(body, "_") || strings.HasSuffix(body, "_") || strings.Contains(body, "__") {
		return "", false
	}

	digits := strings.ReplaceAll(body, "_", "")
	decoded, err := hex.DecodeString(digits)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

package parser

import (
	"yulc/internal/ast"
	"yulc/internal/errors"
	"yulc/token"
)

// current returns the kind of the current token. After a fatal error it
// is always EOS so every loop unwinds.
func (p *Parser) current() token.Kind {
	if p.fatal {
		return token.EOS
	}
	return p.scanner.CurrentToken()
}

func (p *Parser) literal() string {
	return p.scanner.CurrentLiteral()
}

func (p *Parser) advance() {
	p.lastEnd = p.scanner.CurrentLocation().End
	p.scanner.Advance()
	p.consumed++

	if err := p.scanner.Err(); err != nil {
		if !p.fatal {
			p.fail(errors.ScannerFailure(err, p.scanner.CurrentLocation()))
		}
		return
	}
	p.fetchDocumentation()
}

func (p *Parser) check(k token.Kind) bool {
	return p.current() == k
}

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of kind k. On mismatch it reports and skips the
// offending token, unless that token is a recovery point.
func (p *Parser) expect(k token.Kind) bool {
	if p.match(k) {
		return true
	}
	if k == token.IDENTIFIER {
		p.errorExpected("identifier")
	} else {
		p.errorExpected("'" + token.Spelling(k) + "'")
	}
	p.skipUnlessRecoveryPoint()
	return false
}

// atRecoveryPoint reports whether the current token opens or closes a
// block, starts a keyword statement or ends the input. Error recovery never
// consumes such a token.
func (p *Parser) atRecoveryPoint() bool {
	switch p.current() {
	case token.EOS, token.LBRACE, token.RBRACE,
		token.FUNCTION, token.LET, token.IF, token.SWITCH, token.FOR,
		token.CASE, token.DEFAULT,
		token.BREAK, token.CONTINUE, token.LEAVE:
		return true
	}
	return false
}

func (p *Parser) skipUnlessRecoveryPoint() {
	if !p.atRecoveryPoint() {
		p.advance()
	}
}

// expectIdentifier consumes an identifier that is about to be declared or
// assigned and returns its name, or "" after reporting.
func (p *Parser) expectIdentifier() string {
	if !p.check(token.IDENTIFIER) {
		p.expect(token.IDENTIFIER)
		return ""
	}
	name := p.literal()
	if p.dialect.IsBuiltin(name) {
		p.report(errors.BuiltinAsIdentifier(name, p.scanner.CurrentLocation()))
	}
	p.advance()
	return name
}

// expectType consumes a type name after ':'.
func (p *Parser) expectType() string {
	if !p.check(token.IDENTIFIER) {
		p.expect(token.IDENTIFIER)
		return ""
	}
	name := p.literal()
	if !p.dialect.IsType(name) {
		p.report(errors.UnknownType(name, p.scanner.CurrentLocation(), p.dialect.Types()))
	}
	p.advance()
	return name
}

// synchronize skips tokens until something that can start a statement or
// close a block. It always consumes at least one token. It only runs when a
// statement could not consume its first token, so the next identifier is
// taken to start the next statement.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atRecoveryPoint() && !p.check(token.IDENTIFIER) {
		p.advance()
	}
}

// enter guards recursion. Every call must be paired with a deferred leave.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.maxDepth {
		if !p.fatal {
			p.fail(errors.RecursionLimit(p.maxDepth, p.scanner.CurrentLocation()))
		}
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// report forwards to the sink. Nothing is reported after a fatal error.
func (p *Parser) report(err errors.CompilerError) {
	if p.fatal {
		return
	}
	p.sink.Report(err)
}

func (p *Parser) fail(err errors.CompilerError) {
	log.Errorf("parse aborted: %s", err.Message)
	p.report(err)
	p.fatal = true
}

func (p *Parser) errorExpected(what string) {
	p.report(errors.UnexpectedToken(what, p.describeCurrent(), p.scanner.CurrentLocation()))
}

func (p *Parser) describeCurrent() string {
	return token.Describe(p.current(), p.literal())
}

func (p *Parser) isLiteral() bool {
	switch p.current() {
	case token.NUMBER, token.STRING, token.HEX_STRING, token.TRUE, token.FALSE:
		return true
	}
	return false
}

// cloneDebugData copies dd so a parent node can start where its first
// child starts.
func cloneDebugData(dd *ast.DebugData) *ast.DebugData {
	c := *dd
	return &c
}

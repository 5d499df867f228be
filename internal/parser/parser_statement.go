package parser

import (
	"yulc/internal/ast"
	"yulc/internal/errors"
	"yulc/token"
)

func (p *Parser) parseBlock(sc scope) *ast.Block {
	dd := p.createDebugData()
	block := &ast.Block{Debug: dd}

	defer p.leave()
	if !p.enter() {
		return block
	}

	if !p.expect(token.LBRACE) {
		p.finish(dd)
		return block
	}
	for !p.check(token.RBRACE) && !p.check(token.EOS) {
		before := p.consumed
		if stmt := p.parseStatement(sc); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.consumed == before {
			p.synchronize()
		}
	}
	p.expect(token.RBRACE)

	p.finish(dd)
	return block
}

// parseStatement returns nil when nothing usable could be parsed.
func (p *Parser) parseStatement(sc scope) ast.Statement {
	defer p.leave()
	if !p.enter() {
		return nil
	}

	switch p.current() {
	case token.LBRACE:
		return p.parseBlock(sc)
	case token.FUNCTION:
		return p.parseFunctionDefinition(sc)
	case token.LET:
		return p.parseVariableDeclaration()
	case token.IF:
		return p.parseIf(sc)
	case token.SWITCH:
		return p.parseSwitch(sc)
	case token.FOR:
		return p.parseForLoop(sc)
	case token.BREAK:
		dd := p.createDebugData()
		p.checkBreakContinuePosition("break", sc)
		p.advance()
		p.finish(dd)
		return &ast.Break{Debug: dd}
	case token.CONTINUE:
		dd := p.createDebugData()
		p.checkBreakContinuePosition("continue", sc)
		p.advance()
		p.finish(dd)
		return &ast.Continue{Debug: dd}
	case token.LEAVE:
		dd := p.createDebugData()
		if !sc.insideFunction {
			p.report(errors.LeaveOutsideFunction(p.scanner.CurrentLocation()))
		}
		p.advance()
		p.finish(dd)
		return &ast.Leave{Debug: dd}
	case token.IDENTIFIER:
		return p.parseCallOrAssignment()
	}

	// Anything else can only be a bare literal. Other tokens are left to
	// the block loop to skip.
	if !p.isLiteral() {
		p.report(errors.LiteralOrIdentifierExpected(p.describeCurrent(), p.scanner.CurrentLocation()))
		return nil
	}
	dd := p.createDebugData()
	expr := p.parseExpression()
	p.report(errors.CallOrAssignmentExpected(dd.Native))
	p.finish(dd)
	return &ast.ExpressionStatement{Debug: dd, Expression: expr}
}

// checkBreakContinuePosition reports break and continue anywhere but
// directly in a for-loop body.
func (p *Parser) checkBreakContinuePosition(which string, sc scope) {
	if sc.loop == ForLoopBody {
		return
	}
	p.report(errors.BreakContinueNotInBody(which, sc.loop.String(), p.scanner.CurrentLocation()))
}

// parseCallOrAssignment handles statements starting with an identifier:
// a call, a single or multi-variable assignment, or an error.
func (p *Parser) parseCallOrAssignment() ast.Statement {
	dd := p.createDebugData()
	first := p.parseIdentifier()

	switch p.current() {
	case token.LPAREN:
		call := p.parseCall(first)
		p.finish(dd)
		return &ast.ExpressionStatement{Debug: dd, Expression: call}

	case token.COMMA, token.ASSIGN:
		names := []*ast.Identifier{first}
		for p.match(token.COMMA) {
			if !p.check(token.IDENTIFIER) {
				p.errorExpected("identifier")
				break
			}
			names = append(names, p.parseIdentifier())
		}
		for _, name := range names {
			if p.dialect.IsBuiltin(name.Name) {
				p.report(errors.BuiltinAsIdentifier(name.Name, name.Debug.Native))
			}
		}

		assign := &ast.Assignment{Debug: dd, VariableNames: names}
		p.expect(token.ASSIGN)
		assign.Value = p.parseExpression()
		p.finish(dd)
		return assign
	}

	if p.dialect.IsBuiltin(first.Name) {
		p.report(errors.BuiltinNotCalled(first.Name, first.Debug.Native))
	} else {
		p.report(errors.CallOrAssignmentExpected(first.Debug.Native))
	}
	p.finish(dd)
	return &ast.ExpressionStatement{Debug: dd, Expression: first}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	dd := p.createDebugData()
	p.advance()

	decl := &ast.VariableDeclaration{Debug: dd}
	for {
		decl.Variables = append(decl.Variables, p.parseTypedName())
		if !p.match(token.COMMA) {
			break
		}
	}

	if p.match(token.ASSIGN) {
		decl.Value = p.parseExpression()
	}

	p.finish(dd)
	return decl
}

func (p *Parser) parseIf(sc scope) *ast.If {
	dd := p.createDebugData()
	p.advance()

	stmt := &ast.If{Debug: dd}
	stmt.Condition = p.parseExpression()
	stmt.Body = p.parseBlock(sc)

	p.finish(dd)
	return stmt
}

func (p *Parser) parseSwitch(sc scope) *ast.Switch {
	dd := p.createDebugData()
	p.advance()

	sw := &ast.Switch{Debug: dd}
	sw.Expression = p.parseExpression()

	seenDefault := false
	for p.check(token.CASE) || p.check(token.DEFAULT) {
		isDefault := p.check(token.DEFAULT)
		switch {
		case isDefault && seenDefault:
			p.report(errors.InvalidSwitch("Only one default case allowed", p.scanner.CurrentLocation()))
		case !isDefault && seenDefault:
			p.report(errors.InvalidSwitch("Case not allowed after default case", p.scanner.CurrentLocation()))
		}
		seenDefault = seenDefault || isDefault

		if c := p.parseCase(sc); c != nil {
			sw.Cases = append(sw.Cases, c)
		}
	}

	if len(sw.Cases) == 0 && !seenDefault {
		p.report(errors.InvalidSwitch("Switch statement without any cases", dd.Native))
	}

	p.finish(dd)
	return sw
}

// parseCase parses a case or the default case. A case whose value is not
// a literal is reported and dropped after its body has been consumed.
func (p *Parser) parseCase(sc scope) *ast.Case {
	dd := p.createDebugData()
	c := &ast.Case{Debug: dd}

	valid := true
	if p.match(token.CASE) {
		if p.isLiteral() {
			c.Value = p.parseLiteral()
		} else {
			p.errorExpected("literal")
			valid = false
			p.skipUnlessRecoveryPoint()
		}
	} else {
		p.advance()
	}

	c.Body = p.parseBlock(sc)
	p.finish(dd)

	if !valid {
		return nil
	}
	return c
}

// parseForLoop parses the init block, condition, post block and body. The
// condition does not belong to any component.
func (p *Parser) parseForLoop(sc scope) *ast.ForLoop {
	dd := p.createDebugData()
	p.advance()

	loop := &ast.ForLoop{Debug: dd}
	loop.Pre = p.parseBlock(scope{loop: ForLoopPre, insideFunction: sc.insideFunction})
	loop.Condition = p.parseExpression()
	loop.Post = p.parseBlock(scope{loop: ForLoopPost, insideFunction: sc.insideFunction})
	loop.Body = p.parseBlock(scope{loop: ForLoopBody, insideFunction: sc.insideFunction})

	p.finish(dd)
	return loop
}

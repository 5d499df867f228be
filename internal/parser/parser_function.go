package parser

import (
	"yulc/internal/ast"
	"yulc/internal/errors"
	"yulc/token"
)

// parseFunctionDefinition parses `function name(params) -> returns { body }`.
// The body starts a fresh scope: it is not inside any for-loop component
// of the enclosing code, but it is inside a function.
func (p *Parser) parseFunctionDefinition(sc scope) *ast.FunctionDefinition {
	dd := p.createDebugData()
	if sc.loop == ForLoopPre {
		p.report(errors.FunctionInForLoopInit(p.scanner.CurrentLocation()))
	}
	p.advance()

	fn := &ast.FunctionDefinition{Debug: dd}
	fn.Name = p.expectIdentifier()

	p.expect(token.LPAREN)
	if !p.check(token.RPAREN) {
		fn.Parameters = p.parseTypedNameList()
	}
	p.expect(token.RPAREN)

	if p.match(token.ARROW) {
		fn.ReturnVariables = p.parseTypedNameList()
	}

	fn.Body = p.parseBlock(scope{loop: None, insideFunction: true})

	p.finish(dd)
	return fn
}

func (p *Parser) parseTypedNameList() []*ast.TypedName {
	var names []*ast.TypedName
	for {
		names = append(names, p.parseTypedName())
		if !p.match(token.COMMA) {
			return names
		}
	}
}

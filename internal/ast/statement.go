package ast

// Statement is one of the block-level alternatives of the grammar.
type Statement interface {
	Node
	isStatement()
}

func (*Block) isStatement()               {}
func (*ExpressionStatement) isStatement() {}
func (*Assignment) isStatement()          {}
func (*VariableDeclaration) isStatement() {}
func (*FunctionDefinition) isStatement()  {}
func (*If) isStatement()                  {}
func (*Switch) isStatement()              {}
func (*ForLoop) isStatement()             {}
func (*Break) isStatement()               {}
func (*Continue) isStatement()            {}
func (*Leave) isStatement()               {}

package ast

// Expression is one of *Literal, *Identifier, *FunctionCall or *BadExpr.
type Expression interface {
	Node
	isExpr()
}

func (*Literal) isExpr() {}

func (*Identifier) isExpr() {}

func (*FunctionCall) isExpr() {}

func (*BadExpr) isExpr() {}

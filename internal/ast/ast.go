package ast

import "yulc/internal/source"

// Block is a braced statement list.
// Example: "{ let x := 1 sstore(0, x) }"
type Block struct {
	Debug      *DebugData
	Statements []Statement
}

// Identifier is a reference to a variable or function name.
// Example: "x", "mstore", "$tmp.1"
type Identifier struct {
	Debug *DebugData
	Name  string
}

// TypedName is a declared name with an optional dialect type.
// Example: "x", "x:u256"
type TypedName struct {
	Debug *DebugData
	Name  string
	Type  string
}

type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	BooleanLiteral
	StringLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case BooleanLiteral:
		return "bool"
	case StringLiteral:
		return "string"
	}
	return "unknown"
}

// Literal is a number, boolean or string constant. Value holds the source
// spelling for numbers and booleans and the decoded bytes for strings.
// Example: "0x20", "true", "\"abc\"", "hex\"00ff\"", "1:u256"
type Literal struct {
	Debug *DebugData
	Kind  LiteralKind
	Value string
	Type  string
	Hex   bool // written as hex"..."
}

// FunctionCall is a call of a builtin or user-defined function.
// Example: "add(x, 1)"
type FunctionCall struct {
	Debug        *DebugData
	FunctionName *Identifier
	Arguments    []Expression
}

// BadExpr stands in for an expression that could not be parsed.
type BadExpr struct {
	Debug   *DebugData
	Message string
}

// ExpressionStatement is an expression evaluated for its side effects.
// Example: "sstore(0, 1)"
type ExpressionStatement struct {
	Debug      *DebugData
	Expression Expression
}

// Assignment assigns the value of an expression to one or more variables.
// Example: "x, y := f()"
type Assignment struct {
	Debug         *DebugData
	VariableNames []*Identifier
	Value         Expression
}

// VariableDeclaration declares variables with an optional initial value.
// Example: "let x, y:u256 := f()"
type VariableDeclaration struct {
	Debug     *DebugData
	Variables []*TypedName
	Value     Expression // nil without initializer
}

// FunctionDefinition declares a function.
// Example: "function f(a, b) -> r { r := add(a, b) }"
type FunctionDefinition struct {
	Debug           *DebugData
	Name            string
	Parameters      []*TypedName
	ReturnVariables []*TypedName
	Body            *Block
}

// If runs its body when the condition is non-zero.
// Example: "if lt(x, 10) { x := 10 }"
type If struct {
	Debug     *DebugData
	Condition Expression
	Body      *Block
}

// Case is one branch of a switch. Value is nil for the default case.
// Example: "case 0 { revert(0, 0) }", "default { }"
type Case struct {
	Debug *DebugData
	Value *Literal
	Body  *Block
}

// Switch selects a case by comparing its expression to case literals.
// Example: "switch x case 0 { } default { }"
type Switch struct {
	Debug      *DebugData
	Expression Expression
	Cases      []*Case
}

// ForLoop is "for { pre } condition { post } { body }".
type ForLoop struct {
	Debug     *DebugData
	Pre       *Block
	Condition Expression
	Post      *Block
	Body      *Block
}

type Break struct {
	Debug *DebugData
}

type Continue struct {
	Debug *DebugData
}

// Leave exits the current function.
type Leave struct {
	Debug *DebugData
}

// LocationOf returns the resolved location of a node, or the zero location
// when the node carries no debug data.
func LocationOf(n Node) source.Location {
	if n == nil {
		return source.Location{}
	}
	if dd := n.GetDebugData(); dd != nil {
		return dd.Location
	}
	return source.Location{}
}

// NativeLocationOf returns the scanner location of a node.
func NativeLocationOf(n Node) source.Location {
	if n == nil {
		return source.Location{}
	}
	if dd := n.GetDebugData(); dd != nil {
		return dd.Native
	}
	return source.Location{}
}

package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_EXPR

	// Names
	IDENTIFIER
	TYPED_NAME

	// Expressions
	LITERAL
	FUNCTION_CALL

	// Statements
	BLOCK
	EXPRESSION_STATEMENT
	ASSIGNMENT
	VARIABLE_DECLARATION
	FUNCTION_DEFINITION
	IF
	CASE
	SWITCH
	FOR_LOOP
	BREAK
	CONTINUE
	LEAVE
)

var nodeTypeNames = [...]string{
	ILLEGAL:              "Illegal",
	BAD_EXPR:             "BadExpr",
	IDENTIFIER:           "Identifier",
	TYPED_NAME:           "TypedName",
	LITERAL:              "Literal",
	FUNCTION_CALL:        "FunctionCall",
	BLOCK:                "Block",
	EXPRESSION_STATEMENT: "ExpressionStatement",
	ASSIGNMENT:           "Assignment",
	VARIABLE_DECLARATION: "VariableDeclaration",
	FUNCTION_DEFINITION:  "FunctionDefinition",
	IF:                   "If",
	CASE:                 "Case",
	SWITCH:               "Switch",
	FOR_LOOP:             "ForLoop",
	BREAK:                "Break",
	CONTINUE:             "Continue",
	LEAVE:                "Leave",
}

func (t NodeType) String() string {
	if int(t) >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "Unknown"
}

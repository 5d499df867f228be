package ast

// Inspect traverses the tree rooted at node in depth-first order. If f
// returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	visitChildren(node, f)
}

// visitChildren visits all children of a node
func visitChildren(node Node, f func(Node) bool) {
	switch n := node.(type) {
	case *Block:
		for _, stmt := range n.Statements {
			Inspect(stmt, f)
		}

	case *FunctionCall:
		if n.FunctionName != nil {
			Inspect(n.FunctionName, f)
		}
		for _, arg := range n.Arguments {
			Inspect(arg, f)
		}

	case *ExpressionStatement:
		Inspect(n.Expression, f)

	case *Assignment:
		for _, name := range n.VariableNames {
			Inspect(name, f)
		}
		Inspect(n.Value, f)

	case *VariableDeclaration:
		for _, v := range n.Variables {
			Inspect(v, f)
		}
		if n.Value != nil {
			Inspect(n.Value, f)
		}

	case *FunctionDefinition:
		for _, p := range n.Parameters {
			Inspect(p, f)
		}
		for _, r := range n.ReturnVariables {
			Inspect(r, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *If:
		Inspect(n.Condition, f)
		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *Switch:
		Inspect(n.Expression, f)
		for _, c := range n.Cases {
			Inspect(c, f)
		}

	case *Case:
		if n.Value != nil {
			Inspect(n.Value, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}

	case *ForLoop:
		if n.Pre != nil {
			Inspect(n.Pre, f)
		}
		Inspect(n.Condition, f)
		if n.Post != nil {
			Inspect(n.Post, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	}
}

// CollectNodes returns every node of the tree in depth-first order.
func CollectNodes(root Node) []Node {
	var nodes []Node
	Inspect(root, func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// FindNodeAt returns the innermost node whose native range contains offset.
func FindNodeAt(root Node, offset int) Node {
	var found Node
	Inspect(root, func(n Node) bool {
		if !NativeLocationOf(n).Contains(offset) {
			return false
		}
		found = n
		return true
	})
	return found
}

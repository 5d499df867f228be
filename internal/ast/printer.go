package ast

import (
	"encoding/hex"
	"strconv"
	"strings"
)

func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("    " + strings.ReplaceAll(stmt.String(), "\n", "\n    ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (i *Identifier) String() string {
	return i.Name
}

func (tn *TypedName) String() string {
	if tn.Type == "" {
		return tn.Name
	}
	return tn.Name + ":" + tn.Type
}

func (l *Literal) String() string {
	var s string
	switch {
	case l.Kind == StringLiteral && l.Hex:
		s = "hex\"" + hex.EncodeToString([]byte(l.Value)) + "\""
	case l.Kind == StringLiteral:
		s = strconv.Quote(l.Value)
	default:
		s = l.Value
	}
	if l.Type != "" {
		s += ":" + l.Type
	}
	return s
}

func (fc *FunctionCall) String() string {
	args := make([]string, len(fc.Arguments))
	for i, arg := range fc.Arguments {
		args[i] = arg.String()
	}
	return fc.FunctionName.String() + "(" + strings.Join(args, ", ") + ")"
}

func (be *BadExpr) String() string {
	return "BadExpr: " + be.Message
}

func (es *ExpressionStatement) String() string {
	return es.Expression.String()
}

func (a *Assignment) String() string {
	names := make([]string, len(a.VariableNames))
	for i, name := range a.VariableNames {
		names[i] = name.String()
	}
	return strings.Join(names, ", ") + " := " + a.Value.String()
}

func (vd *VariableDeclaration) String() string {
	s := "let " + typedNameList(vd.Variables)
	if vd.Value != nil {
		s += " := " + vd.Value.String()
	}
	return s
}

func (fd *FunctionDefinition) String() string {
	var b strings.Builder

	b.WriteString("function " + fd.Name + "(" + typedNameList(fd.Parameters) + ")")
	if len(fd.ReturnVariables) > 0 {
		b.WriteString(" -> " + typedNameList(fd.ReturnVariables))
	}
	b.WriteString(" ")
	b.WriteString(fd.Body.String())

	return b.String()
}

func (i *If) String() string {
	return "if " + i.Condition.String() + " " + i.Body.String()
}

func (c *Case) String() string {
	if c.Value == nil {
		return "default " + c.Body.String()
	}
	return "case " + c.Value.String() + " " + c.Body.String()
}

func (s *Switch) String() string {
	var b strings.Builder

	b.WriteString("switch " + s.Expression.String())
	for _, c := range s.Cases {
		b.WriteString("\n" + c.String())
	}

	return b.String()
}

func (f *ForLoop) String() string {
	return "for " + f.Pre.String() + " " + f.Condition.String() + " " + f.Post.String() + "\n" + f.Body.String()
}

func (*Break) String() string {
	return "break"
}

func (*Continue) String() string {
	return "continue"
}

func (*Leave) String() string {
	return "leave"
}

func typedNameList(names []*TypedName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

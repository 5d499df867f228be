package lsp

import (
	"sort"
	"strings"

	"yulc/internal/ast"
	"yulc/internal/source"
)

// keywords offered by completion
var keywords = []string{
	"function", "let", "if", "switch", "case", "default", "for",
	"break", "continue", "leave", "true", "false",
}

// SemanticToken is one entry of the semantic token stream before delta encoding
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	modDeclaration    = 1 << 0
	modDefaultLibrary = 1 << 1
)

// collectSemanticTokens walks the tree and classifies every name, literal
// and statement keyword. Positions come from the native ranges, so
// @src annotations do not move the highlighting.
func collectSemanticTokens(cs *source.CharStream, root *ast.Block, d Dialect) []SemanticToken {
	if root == nil {
		return nil
	}

	w := &tokenWalker{cs: cs, dialect: d}
	ast.Inspect(root, w.visit)

	sort.SliceStable(w.tokens, func(i, j int) bool {
		if w.tokens[i].Line != w.tokens[j].Line {
			return w.tokens[i].Line < w.tokens[j].Line
		}
		return w.tokens[i].StartChar < w.tokens[j].StartChar
	})
	return w.tokens
}

type tokenWalker struct {
	cs      *source.CharStream
	dialect Dialect
	tokens  []SemanticToken
}

func (w *tokenWalker) add(start, length int, tokenType string, modifiers int) {
	if length <= 0 || start < 0 || start+length > len(w.cs.Text) {
		return
	}
	w.tokens = append(w.tokens, makeToken(w.cs, start, length, tokenType, modifiers))
}

func (w *tokenWalker) typedName(tn *ast.TypedName, tokenType string) {
	native := ast.NativeLocationOf(tn)
	w.add(native.Start, len(tn.Name), tokenType, modDeclaration)
	if tn.Type != "" {
		w.add(native.End-len(tn.Type), len(tn.Type), "type", 0)
	}
}

func (w *tokenWalker) visit(n ast.Node) bool {
	native := ast.NativeLocationOf(n)

	switch v := n.(type) {
	case *ast.VariableDeclaration:
		w.add(native.Start, len("let"), "keyword", 0)
		for _, tn := range v.Variables {
			w.typedName(tn, "variable")
		}
		ast.Inspect(v.Value, w.visit)
		return false

	case *ast.FunctionDefinition:
		w.add(native.Start, len("function"), "keyword", 0)
		afterKeyword := native.Start + len("function")
		rest := w.cs.Snippet(source.Location{Start: afterKeyword, End: native.End})
		if i := strings.Index(rest, v.Name); i >= 0 && v.Name != "" {
			w.add(afterKeyword+i, len(v.Name), "function", modDeclaration)
		}
		for _, p := range v.Parameters {
			w.typedName(p, "parameter")
		}
		for _, r := range v.ReturnVariables {
			w.typedName(r, "variable")
		}
		if v.Body != nil {
			ast.Inspect(v.Body, w.visit)
		}
		return false

	case *ast.FunctionCall:
		if v.FunctionName != nil {
			name := ast.NativeLocationOf(v.FunctionName)
			modifiers := 0
			if w.dialect != nil && w.dialect.IsBuiltin(v.FunctionName.Name) {
				modifiers = modDefaultLibrary
			}
			w.add(name.Start, name.Length(), "function", modifiers)
		}
		for _, arg := range v.Arguments {
			ast.Inspect(arg, w.visit)
		}
		return false

	case *ast.Identifier:
		w.add(native.Start, native.Length(), "variable", 0)

	case *ast.Literal:
		kind := "number"
		switch v.Kind {
		case ast.StringLiteral:
			kind = "string"
		case ast.BooleanLiteral:
			kind = "keyword"
		}
		valueLength := native.Length()
		if v.Type != "" {
			valueLength -= len(v.Type) + 1
			w.add(native.End-len(v.Type), len(v.Type), "type", 0)
		}
		w.add(native.Start, valueLength, kind, 0)

	case *ast.If:
		w.add(native.Start, len("if"), "keyword", 0)
	case *ast.Switch:
		w.add(native.Start, len("switch"), "keyword", 0)
	case *ast.Case:
		if v.Value == nil {
			w.add(native.Start, len("default"), "keyword", 0)
		} else {
			w.add(native.Start, len("case"), "keyword", 0)
		}
	case *ast.ForLoop:
		w.add(native.Start, len("for"), "keyword", 0)
	case *ast.Break:
		w.add(native.Start, len("break"), "keyword", 0)
	case *ast.Continue:
		w.add(native.Start, len("continue"), "keyword", 0)
	case *ast.Leave:
		w.add(native.Start, len("leave"), "keyword", 0)
	}
	return true
}

// makeToken creates a semantic token for a byte span of the document
func makeToken(cs *source.CharStream, start, length int, tokenType string, modifiers int) SemanticToken {
	line, column := cs.LineColumn(start)
	return SemanticToken{
		Line:           uint32(line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}

package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"yulc/internal/dialect"
	"yulc/internal/lsp"
)

const testURI = "file:///tmp/test.yul"

const program = `{
    function f(a:u256) -> r {
        r := add(a, 1)
    }
    let x := f(2)
}`

type published struct {
	method string
	params *protocol.PublishDiagnosticsParams
}

func newContext(out *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*out = append(*out, published{method: method, params: params.(*protocol.PublishDiagnosticsParams)})
		},
	}
}

func open(t *testing.T, handler *lsp.Handler, ctx *glsp.Context, text string) {
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "yul", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	handler := lsp.NewHandler(dialect.EVM())

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	res, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, res.Capabilities.HoverProvider)
	assert.NotNil(t, res.Capabilities.CompletionProvider)

	tokens, ok := res.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	var out []published
	handler := lsp.NewHandler(dialect.EVM())
	ctx := newContext(&out)

	open(t, handler, ctx, "{ let x := }")

	require.Len(t, out, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, out[0].method)
	assert.Equal(t, testURI, out[0].params.URI)

	diags := out[0].params.Diagnostics
	require.NotEmpty(t, diags)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Equal(t, "E0109", diags[0].Code.Value)
	assert.Equal(t, "yulc", *diags[0].Source)
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(11), diags[0].Range.Start.Character)
}

func TestWarningsUseWarningSeverity(t *testing.T) {
	var out []published
	handler := lsp.NewHandler(dialect.EVM())

	open(t, handler, newContext(&out), "/// @src 0:5:0\n{ }")

	require.Len(t, out, 1)
	diags := out[0].params.Diagnostics
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diags[0].Severity)
	assert.Equal(t, "E0800", diags[0].Code.Value)
}

func TestDidChangeAndCloseRefreshDiagnostics(t *testing.T) {
	var out []published
	handler := lsp.NewHandler(dialect.EVM())
	ctx := newContext(&out)

	open(t, handler, ctx, "{ break }")
	require.NotEmpty(t, out[0].params.Diagnostics)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "{ for { } 1 { } { break } }"}},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Empty(t, out[1].params.Diagnostics)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Empty(t, out[2].params.Diagnostics)

	_, err = handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	assert.Error(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	var out []published
	handler := lsp.NewHandler(dialect.EVM())
	ctx := newContext(&out)
	open(t, handler, ctx, program)
	require.Empty(t, out[0].params.Diagnostics)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 13)

	assertToken(t, &decoded[0], 2, 5, 8, "keyword", nil)
	assertToken(t, &decoded[1], 2, 14, 1, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 2, 16, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[3], 2, 18, 4, "type", nil)
	assertToken(t, &decoded[4], 2, 27, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[5], 3, 9, 1, "variable", nil)
	assertToken(t, &decoded[6], 3, 14, 3, "function", []string{"defaultLibrary"})
	assertToken(t, &decoded[7], 3, 18, 1, "variable", nil)
	assertToken(t, &decoded[8], 3, 21, 1, "number", nil)
	assertToken(t, &decoded[9], 5, 5, 3, "keyword", nil)
	assertToken(t, &decoded[10], 5, 9, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[11], 5, 14, 1, "function", nil)
	assertToken(t, &decoded[12], 5, 16, 1, "number", nil)
}

func TestTextDocumentCompletion(t *testing.T) {
	handler := lsp.NewHandler(dialect.EVM())

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)

	labels := map[string]protocol.CompletionItem{}
	for _, item := range list.Items {
		labels[item.Label] = item
	}
	require.Contains(t, labels, "sstore")
	require.Contains(t, labels, "leave")
	assert.Equal(t, "sstore(a1, a2)", *labels["sstore"].Detail)
	assert.Equal(t, protocol.CompletionItemKindKeyword, *labels["leave"].Kind)
}

func TestTextDocumentHover(t *testing.T) {
	var out []published
	handler := lsp.NewHandler(dialect.EVM())
	ctx := newContext(&out)
	open(t, handler, ctx, program)

	hover, err := handler.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 2, Character: 14},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "**Identifier** `add(a1, a2) -> r`")
	assert.Contains(t, content.Value, "native=0:45:3")
	assert.Equal(t, protocol.Position{Line: 2, Character: 13}, hover.Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 16}, hover.Range.End)

	hover, err = handler.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 10, Character: 0},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, hover)
}

func TestTextDocumentHoverShowsTypes(t *testing.T) {
	var out []published
	handler := lsp.NewHandler(dialect.EVM())
	ctx := newContext(&out)
	open(t, handler, ctx, program)

	tests := []struct {
		pos  protocol.Position
		want string
	}{
		{protocol.Position{Line: 1, Character: 15}, "**TypedName** `u256`"},
		{protocol.Position{Line: 1, Character: 26}, "**TypedName** `u256 (default)`"},
		{protocol.Position{Line: 2, Character: 20}, "**Literal** `u256 (default)`"},
	}

	for _, tt := range tests {
		hover, err := handler.TextDocumentHover(ctx, &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
				Position:     tt.pos,
			},
		})
		require.NoError(t, err)
		require.NotNil(t, hover)
		assert.Contains(t, hover.Contents.(protocol.MarkupContent).Value, tt.want)
	}
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}

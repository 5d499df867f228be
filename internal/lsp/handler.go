package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"yulc/internal/ast"
	"yulc/internal/errors"
	"yulc/internal/parser"
	"yulc/internal/source"
)

var log = commonlog.GetLogger("yulc.lsp")

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"function",
	"parameter",
	"variable",
	"type",
	"keyword",
	"number",
	"string",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"defaultLibrary",
}

// Dialect is what the handler needs to know about the language flavour.
type Dialect interface {
	parser.Dialect
	BuiltinNames() []string
	DefaultType() string
}

type document struct {
	stream *source.CharStream
	block  *ast.Block
	errors []errors.CompilerError
}

// Handler implements the LSP server handlers for Yul documents
type Handler struct {
	mu      sync.RWMutex
	docs    map[protocol.DocumentUri]*document
	dialect Dialect
}

// NewHandler creates a handler that parses documents with d
func NewHandler(d Dialect) *Handler {
	return &Handler{
		docs:    make(map[protocol.DocumentUri]*document),
		dialect: d,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened text and publishes its diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)

	doc, err := h.update(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", params.TextDocument.URI, err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertErrors(doc.stream, doc.errors))
	return nil
}

// TextDocumentDidChange reparses the document. Only full syncs are advertised,
// so the last whole-document change wins.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	var text *string
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			text = &whole.Text
		}
	}
	if text == nil {
		return fmt.Errorf("no full content change for %s", params.TextDocument.URI)
	}

	doc, err := h.update(params.TextDocument.URI, *text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", params.TextDocument.URI, err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, ConvertErrors(doc.stream, doc.errors))
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the dialect builtins and the keywords
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	var items []protocol.CompletionItem

	for _, name := range h.dialect.BuiltinNames() {
		b, _ := h.dialect.Builtin(name)
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   ptrCompletionKind(protocol.CompletionItemKindFunction),
			Detail: ptrString(b.Signature()),
		})
	}
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentHover describes the innermost node under the cursor together
// with the location it was attributed to.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc.block == nil {
		return nil, nil
	}

	offset := offsetOf(doc.stream, params.Position)
	node := ast.FindNodeAt(doc.block, offset)
	if node == nil {
		return nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", node.NodeType())
	switch n := node.(type) {
	case *ast.Identifier:
		if builtin, ok := h.dialect.Builtin(n.Name); ok {
			fmt.Fprintf(&b, " `%s`", builtin.Signature())
		}
	case *ast.TypedName:
		fmt.Fprintf(&b, " `%s`", h.typeName(n.Type))
	case *ast.Literal:
		if n.Kind != ast.BooleanLiteral {
			fmt.Fprintf(&b, " `%s`", h.typeName(n.Type))
		}
	}
	fmt.Fprintf(&b, "\n\n%s", node.GetDebugData())

	rng := toRange(doc.stream, ast.NativeLocationOf(node))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: b.String(),
		},
		Range: &rng,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.get(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.stream, doc.block, h.dialect)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// typeName returns the explicit type or the dialect default, marked as such.
func (h *Handler) typeName(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if def := h.dialect.DefaultType(); def != "" {
		return def + " (default)"
	}
	return "untyped"
}

func (h *Handler) update(uri protocol.DocumentUri, text string) (*document, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	stream := source.NewCharStream(path, text)
	block, errs := parser.ParseSource(stream, h.dialect)
	doc := &document{stream: stream, block: block, errors: errs}

	h.mu.Lock()
	h.docs[uri] = doc
	h.mu.Unlock()

	return doc, nil
}

func (h *Handler) get(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

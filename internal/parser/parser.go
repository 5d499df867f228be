// Package parser builds the AST of a Yul source unit from a token stream
// and attaches a debug location to every node.
package parser

import (
	"github.com/tliron/commonlog"
	"yulc/internal/ast"
	"yulc/internal/dialect"
	"yulc/internal/errors"
	"yulc/internal/source"
	"yulc/token"
)

var log = commonlog.GetLogger("yulc.parser")

// DefaultMaxDepth bounds the nesting of blocks, statements and expressions.
const DefaultMaxDepth = 1200

// Scanner is the token stream consumed by the parser.
type Scanner interface {
	CurrentToken() token.Kind
	CurrentLiteral() string
	CurrentLocation() source.Location
	// CurrentCommentLiteral is the documentation text attached to the
	// current token, or "".
	CurrentCommentLiteral() string
	Advance()
	// Err reports a failure after which no further tokens can be produced.
	Err() error
}

// Dialect tells the parser which names are builtins and which are types.
type Dialect interface {
	Builtin(name string) (*dialect.Builtin, bool)
	IsBuiltin(name string) bool
	IsType(name string) bool
	Types() []string
}

// SourceResolver maps a source index named by @src to its stream.
type SourceResolver func(index int) (*source.CharStream, bool)

// ForLoopComponent is the part of a for-loop currently being parsed.
type ForLoopComponent int

const (
	None ForLoopComponent = iota
	ForLoopPre
	ForLoopPost
	ForLoopBody
)

func (c ForLoopComponent) String() string {
	switch c {
	case ForLoopPre:
		return "pre"
	case ForLoopPost:
		return "post"
	case ForLoopBody:
		return "body"
	default:
		return ""
	}
}

// scope is the context a statement is parsed in. It is passed by value so
// leaving a construct restores the enclosing context.
type scope struct {
	loop           ForLoopComponent
	insideFunction bool
}

type Option func(*Parser)

// WithLocationOverride makes every node without an @src annotation carry
// loc instead of its scanner range.
func WithLocationOverride(loc source.Location) Option {
	return func(p *Parser) {
		p.override = &loc
	}
}

// WithSourceResolver enables validation of @src source indices.
func WithSourceResolver(r SourceResolver) Option {
	return func(p *Parser) {
		p.resolver = r
	}
}

func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser is a recursive descent parser. It is not safe for concurrent use;
// all state belonging to one Parse call is reset when the next one starts.
type Parser struct {
	sink     errors.Sink
	dialect  Dialect
	override *source.Location
	resolver SourceResolver
	maxDepth int

	scanner  Scanner
	lastEnd  int
	consumed int
	depth    int
	fatal    bool

	// Annotations of the current token, cleared on every advance
	documented *source.Location
	astID      *int64
}

func New(sink errors.Sink, d Dialect, opts ...Option) *Parser {
	p := &Parser{
		sink:     sink,
		dialect:  d,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads one block from s. Unless reuseScanner is set the block must
// be followed by the end of the source. Errors go to the sink; the returned
// tree may be partial. Parse returns nil only if parsing could not proceed
// at all: the scanner failed or nesting exceeded the maximum depth.
func (p *Parser) Parse(s Scanner, reuseScanner bool) *ast.Block {
	p.scanner = s
	p.lastEnd = s.CurrentLocation().Start
	p.consumed = 0
	p.depth = 0
	p.fatal = false

	if err := s.Err(); err != nil {
		p.fail(errors.ScannerFailure(err, s.CurrentLocation()))
		return nil
	}
	p.fetchDocumentation()

	block := p.parseBlock(scope{})
	if p.fatal {
		return nil
	}

	if !reuseScanner && p.current() != token.EOS {
		p.report(errors.TrailingInput(p.describeCurrent(), p.scanner.CurrentLocation()))
	}

	return block
}

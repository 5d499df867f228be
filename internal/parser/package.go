package parser

import (
	"yulc/internal/ast"
	"yulc/internal/errors"
	"yulc/internal/scanner"
	"yulc/internal/source"
)

// ParseSource scans and parses a complete source unit with source index 0.
// The block is nil only if parsing could not proceed at all.
func ParseSource(cs *source.CharStream, d Dialect, opts ...Option) (*ast.Block, []errors.CompilerError) {
	var collector errors.Collector

	log.Debugf("parsing %s", cs.Name)
	block := New(&collector, d, opts...).Parse(scanner.New(cs, 0), false)

	return block, collector.Errors
}

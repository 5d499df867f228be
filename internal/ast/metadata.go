package ast

import (
	"fmt"

	"yulc/internal/source"
)

// DebugData is the location payload attached to every node.
type DebugData struct {
	// Location is where the node comes from: the range named by an @src
	// annotation, a caller supplied override, or the scanner range.
	Location source.Location

	// Native is always the range of the node in the text that was parsed.
	Native source.Location

	// Documented is set when Location was taken from an @src annotation.
	Documented bool

	// AstID is the id of the originating high-level AST node (@ast-id).
	AstID *int64
}

// NewDebugData returns debug data whose resolved and native locations are
// both loc.
func NewDebugData(loc source.Location) *DebugData {
	return &DebugData{Location: loc, Native: loc}
}

// String returns a human-readable representation of the debug data
func (d *DebugData) String() string {
	if d == nil {
		return "<no debug data>"
	}
	s := fmt.Sprintf("src=%s native=%s", d.Location, d.Native)
	if d.Documented {
		s += " documented"
	}
	if d.AstID != nil {
		s += fmt.Sprintf(" ast-id=%d", *d.AstID)
	}
	return s
}

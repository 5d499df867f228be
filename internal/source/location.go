package source

import (
	"fmt"
	"sort"
	"strings"
)

// Location is a half-open byte span [Start, End) inside the source unit
// identified by SourceIndex.
type Location struct {
	Start       int
	End         int
	SourceIndex int
}

// Valid reports whether the span is well formed.
func (l Location) Valid() bool {
	return l.Start >= 0 && l.Start <= l.End
}

func (l Location) Length() int {
	return l.End - l.Start
}

// Contains reports whether offset falls inside the span.
func (l Location) Contains(offset int) bool {
	return offset >= l.Start && offset < l.End
}

// String renders the location in the `index:start:length` form used by
// `@src` annotations.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d:%d", l.SourceIndex, l.Start, l.Length())
}

// CharStream is one named source unit.
type CharStream struct {
	Name string
	Text string

	lineStarts []int
}

func NewCharStream(name, text string) *CharStream {
	return &CharStream{Name: name, Text: text}
}

// LineColumn converts a byte offset into a 1-based line and column.
func (cs *CharStream) LineColumn(offset int) (line, column int) {
	if cs.lineStarts == nil {
		cs.lineStarts = []int{0}
		for i := 0; i < len(cs.Text); i++ {
			if cs.Text[i] == '\n' {
				cs.lineStarts = append(cs.lineStarts, i+1)
			}
		}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(cs.Text) {
		offset = len(cs.Text)
	}
	idx := sort.Search(len(cs.lineStarts), func(i int) bool { return cs.lineStarts[i] > offset }) - 1
	return idx + 1, offset - cs.lineStarts[idx] + 1
}

// Line returns the text of the 1-based line without its terminator.
func (cs *CharStream) Line(line int) string {
	lines := strings.Split(cs.Text, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}

// Snippet returns the text covered by loc, or "" when it is out of range.
func (cs *CharStream) Snippet(loc Location) string {
	if !loc.Valid() || loc.End > len(cs.Text) {
		return ""
	}
	return cs.Text[loc.Start:loc.End]
}

package parser

import (
	"strconv"
	"strings"

	"yulc/internal/annotation"
	"yulc/internal/ast"
	"yulc/internal/errors"
	"yulc/internal/source"
)

// fetchDocumentation reads the annotations attached to the current token.
// They apply to nodes created while this token is current.
func (p *Parser) fetchDocumentation() {
	p.documented = nil
	p.astID = nil

	comment := p.scanner.CurrentCommentLiteral()
	if comment == "" {
		return
	}

	for key, value := range annotation.All(comment) {
		switch key {
		case "src":
			p.documented = p.parseSrc(value)
		case "ast-id":
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil || id < 0 {
				p.report(errors.InvalidAnnotation(key, value, p.scanner.CurrentLocation()))
				p.astID = nil
				continue
			}
			p.astID = &id
		}
	}
}

// parseSrc decodes `index:start:length`, optionally followed by a quoted
// snippet of the original source. It returns nil after reporting when the
// value cannot be used.
func (p *Parser) parseSrc(value string) *source.Location {
	at := p.scanner.CurrentLocation()

	field, rest, _ := strings.Cut(value, " ")
	if rest = strings.TrimLeft(rest, " \t"); rest != "" && !strings.HasPrefix(rest, `"`) {
		p.report(errors.InvalidAnnotation("src", value, at))
		return nil
	}

	parts := strings.Split(field, ":")
	if len(parts) != 3 {
		p.report(errors.InvalidAnnotation("src", value, at))
		return nil
	}

	var nums [3]int
	for i, part := range parts {
		if part == "" || part[0] < '0' || part[0] > '9' {
			p.report(errors.InvalidAnnotation("src", value, at))
			return nil
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			p.report(errors.InvalidAnnotation("src", value, at))
			return nil
		}
		nums[i] = n
	}

	loc := &source.Location{SourceIndex: nums[0], Start: nums[1], End: nums[1] + nums[2]}
	if loc.End < loc.Start {
		p.report(errors.InvalidAnnotation("src", value, at))
		return nil
	}

	if p.resolver != nil {
		if _, ok := p.resolver(loc.SourceIndex); !ok {
			p.report(errors.UnknownSourceIndex(loc.SourceIndex, at))
			return nil
		}
	}

	if loc.Length() == 0 {
		p.report(errors.EmptySourceRange(value, at))
	}
	return loc
}

// currentLocation is the location a node created now would get.
func (p *Parser) currentLocation() source.Location {
	loc, _ := p.currentOverridableLocation()
	return loc
}

// currentOverridableLocation resolves the location of the current token:
// an @src annotation wins over the caller override, which wins over the
// scanner range.
func (p *Parser) currentOverridableLocation() (source.Location, bool) {
	switch {
	case p.documented != nil:
		return *p.documented, true
	case p.override != nil:
		return *p.override, false
	default:
		return p.scanner.CurrentLocation(), false
	}
}

// createDebugData starts the debug data of a node beginning at the
// current token.
func (p *Parser) createDebugData() *ast.DebugData {
	loc, documented := p.currentOverridableLocation()
	return &ast.DebugData{
		Location:   loc,
		Native:     p.scanner.CurrentLocation(),
		Documented: documented,
		AstID:      p.astID,
	}
}

// finish extends the debug data of a node to the last consumed token.
// Locations from @src and from the caller override are kept as they are.
func (p *Parser) finish(dd *ast.DebugData) {
	if p.lastEnd < dd.Native.End {
		return
	}
	dd.Native.End = p.lastEnd
	if !dd.Documented && p.override == nil {
		dd.Location.End = p.lastEnd
	}
}

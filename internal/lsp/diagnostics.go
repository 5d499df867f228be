package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"yulc/internal/errors"
	"yulc/internal/source"
)

// ConvertErrors transforms parser errors into LSP diagnostics for IDE display.
// Parser errors always point into the parsed document, so their native
// ranges map directly onto the open text.
func ConvertErrors(cs *source.CharStream, errs []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, err := range errs {
		severity := protocol.DiagnosticSeverityError
		if err.Level == errors.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}

		message := err.Message
		if err.HelpText != "" {
			message += "\n" + err.HelpText
		}

		diagnostic := protocol.Diagnostic{
			Range:    toRange(cs, err.Location),
			Severity: &severity,
			Source:   ptrString("yulc"),
			Message:  message,
		}
		if err.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: err.Code}
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// toRange converts a byte span into an LSP range (0-based lines and columns).
// Empty spans are widened by one column so editors still underline something.
func toRange(cs *source.CharStream, loc source.Location) protocol.Range {
	startLine, startCol := cs.LineColumn(loc.Start)
	endLine, endCol := cs.LineColumn(loc.End)
	if loc.Length() <= 0 {
		endLine, endCol = startLine, startCol+1
	}

	return protocol.Range{
		Start: protocol.Position{Line: uint32(startLine - 1), Character: uint32(startCol - 1)},
		End:   protocol.Position{Line: uint32(endLine - 1), Character: uint32(endCol - 1)},
	}
}

// offsetOf converts an LSP position back into a byte offset.
func offsetOf(cs *source.CharStream, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		next := strings.IndexByte(cs.Text[offset:], '\n')
		if next < 0 {
			return len(cs.Text)
		}
		offset += next + 1
	}
	return min(offset+int(pos.Character), len(cs.Text))
}

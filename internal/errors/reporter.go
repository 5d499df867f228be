package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"yulc/internal/source"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string          // Error code like E0100
	Message     string          // Primary error message
	Location    source.Location // Range the error refers to
	Suggestions []Suggestion    // Suggested fixes
	Notes       []string        // Additional context notes
	HelpText    string          // Help text for the error
}

func (e CompilerError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s (%s)", e.Level, e.Message, e.Location)
	}
	return fmt.Sprintf("%s[%s]: %s (%s)", e.Level, e.Code, e.Message, e.Location)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

// Sink receives diagnostics. Implementations must not abort the caller.
type Sink interface {
	Report(err CompilerError)
}

// Collector is a Sink that keeps every reported diagnostic in order.
type Collector struct {
	Errors []CompilerError
}

func (c *Collector) Report(err CompilerError) {
	c.Errors = append(c.Errors, err)
}

// HasErrors reports whether anything at Error level was collected.
func (c *Collector) HasErrors() bool {
	for _, err := range c.Errors {
		if err.Level == Error {
			return true
		}
	}
	return false
}

// ErrorReporter handles consistent error formatting and suggestions.
// Streams are looked up by the source index of each error location.
type ErrorReporter struct {
	streams map[int]*source.CharStream
}

// NewErrorReporter creates a reporter; stream i serves source index i.
func NewErrorReporter(streams ...*source.CharStream) *ErrorReporter {
	er := &ErrorReporter{streams: make(map[int]*source.CharStream, len(streams))}
	for i, cs := range streams {
		er.streams[i] = cs
	}
	return er
}

// AddStream registers cs under an explicit source index.
func (er *ErrorReporter) AddStream(index int, cs *source.CharStream) {
	er.streams[index] = cs
}

// FormatError formats a compiler error with Rust-like styling and suggestions
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0100]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	cs, ok := er.streams[err.Location.SourceIndex]
	if !ok {
		indent := strings.Repeat(" ", 3)
		result.WriteString(fmt.Sprintf("%s %s <source %d>:%d-%d\n",
			indent, dim("-->"), err.Location.SourceIndex, err.Location.Start, err.Location.End))
		er.writeTrailer(&result, err, indent, dim)
		result.WriteString("\n")
		return result.String()
	}

	line, column := cs.LineColumn(err.Location.Start)
	lineNumberWidth := er.getLineNumberWidth(line + 1)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), cs.Name, line, column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if line > 1 {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line-1)),
			dim("│"),
			cs.Line(line-1)))
	}

	lineContent := cs.Line(line)
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", lineNumberWidth, line)),
		dim("│"),
		lineContent))

	// Clamp the marker to the first line of a multi-line range
	length := err.Location.Length()
	if rest := len(lineContent) - (column - 1); length > rest {
		length = rest
	}
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		indent, dim("│"), er.createMarker(column, length, err.Level)))

	if next := cs.Line(line + 1); next != "" {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line+1)),
			dim("│"),
			next))
	}

	er.writeTrailer(&result, err, indent, dim)
	result.WriteString("\n")
	return result.String()
}

// FormatAll formats every error in order.
func (er *ErrorReporter) FormatAll(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	return b.String()
}

func (er *ErrorReporter) writeTrailer(result *strings.Builder, err CompilerError, indent string, dim func(...interface{}) string) {
	if len(err.Suggestions) > 0 {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		for i, suggestion := range err.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
					indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("    "), suggestion.Message))
			}

			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
				replacement := strings.ReplaceAll(suggestion.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, dim("│")))
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(replacement)))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}

	return spaces + markerColor(strings.Repeat("^", length))
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

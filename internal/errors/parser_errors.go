package errors

import (
	"fmt"
	"sort"
	"strings"

	"yulc/internal/source"
)

// ParserErrorBuilder helps construct diagnostics with suggestions
type ParserErrorBuilder struct {
	err CompilerError
}

// NewParserError creates a new error builder
func NewParserError(code, message string, loc source.Location) *ParserErrorBuilder {
	return &ParserErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Location: loc,
		},
	}
}

// NewParserWarning creates a new warning builder
func NewParserWarning(code, message string, loc source.Location) *ParserErrorBuilder {
	b := NewParserError(code, message, loc)
	b.err.Level = Warning
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ParserErrorBuilder) WithSuggestion(message string) *ParserErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *ParserErrorBuilder) WithReplacement(message, replacement string) *ParserErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the error
func (b *ParserErrorBuilder) WithNote(note string) *ParserErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ParserErrorBuilder) WithHelp(help string) *ParserErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the constructed error
func (b *ParserErrorBuilder) Build() CompilerError {
	return b.err
}

// UnexpectedToken reports a token that does not fit the grammar.
func UnexpectedToken(expected, found string, loc source.Location) CompilerError {
	return NewParserError(ErrorUnexpectedToken,
		fmt.Sprintf("Expected %s but got %s", expected, found), loc).
		Build()
}

// TrailingInput reports content after the outermost block.
func TrailingInput(found string, loc source.Location) CompilerError {
	return NewParserError(ErrorTrailingInput,
		fmt.Sprintf("Expected end of source but got %s", found), loc).
		WithHelp("a source unit consists of exactly one block").
		Build()
}

func InvalidNumberLiteral(literal string, loc source.Location) CompilerError {
	return NewParserError(ErrorInvalidLiteral,
		fmt.Sprintf("Invalid number literal %q", literal), loc).
		WithNote("number literals are decimal or 0x-prefixed hexadecimal and must be below 2**256").
		Build()
}

func InvalidStringLiteral(literal string, loc source.Location) CompilerError {
	return NewParserError(ErrorInvalidLiteral,
		fmt.Sprintf("Invalid string literal %s", literal), loc).
		Build()
}

// BuiltinAsIdentifier reports a declaration that reuses a builtin name.
func BuiltinAsIdentifier(name string, loc source.Location) CompilerError {
	return NewParserError(ErrorBuiltinAsIdentifier,
		fmt.Sprintf("Cannot use builtin function name %q as identifier name", name), loc).
		Build()
}

// BuiltinNotCalled reports a builtin that is referenced but not called.
func BuiltinNotCalled(name string, loc source.Location) CompilerError {
	return NewParserError(ErrorBuiltinNotCalled,
		fmt.Sprintf("Builtin function %q must be called", name), loc).
		WithReplacement("call it", name+"(...)").
		Build()
}

// InvalidAnnotation reports a malformed @src or @ast-id value.
func InvalidAnnotation(key, value string, loc source.Location) CompilerError {
	b := NewParserError(ErrorInvalidAnnotation,
		fmt.Sprintf("Invalid value in @%s debug annotation: %q", key, value), loc)
	if key == "src" {
		b.WithHelp("expected <source index>:<start>:<length>")
	}
	return b.Build()
}

func UnknownSourceIndex(index int, loc source.Location) CompilerError {
	return NewParserError(ErrorUnknownSourceIndex,
		fmt.Sprintf("Invalid source index %d in @src annotation", index), loc).
		Build()
}

func EmptySourceRange(value string, loc source.Location) CompilerError {
	return NewParserWarning(WarningEmptySourceRange,
		fmt.Sprintf("@src annotation %q covers no source text", value), loc).
		Build()
}

func CallOrAssignmentExpected(loc source.Location) CompilerError {
	return NewParserError(ErrorCallOrAssignmentExpected, "Call or assignment expected", loc).
		Build()
}

func LiteralOrIdentifierExpected(found string, loc source.Location) CompilerError {
	return NewParserError(ErrorLiteralOrIdentifierExpected,
		fmt.Sprintf("Literal or identifier expected, got %s", found), loc).
		Build()
}

// InvalidSwitch reports a structural problem with a switch statement.
func InvalidSwitch(message string, loc source.Location) CompilerError {
	return NewParserError(ErrorInvalidSwitch, message, loc).Build()
}

// UnknownType reports a type name the dialect does not define and offers
// the closest known names.
func UnknownType(name string, loc source.Location, known []string) CompilerError {
	b := NewParserError(ErrorUnknownType,
		fmt.Sprintf("Unknown type %q", name), loc)

	if similar := findSimilarNames(name, known); len(similar) > 0 {
		b.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else if len(known) > 0 {
		sorted := append([]string(nil), known...)
		sort.Strings(sorted)
		b.WithNote("available types: " + strings.Join(sorted, ", "))
	}

	return b.Build()
}

func RecursionLimit(limit int, loc source.Location) CompilerError {
	return NewParserError(ErrorRecursionLimit,
		fmt.Sprintf("Maximum recursion depth of %d reached", limit), loc).
		Build()
}

func ScannerFailure(cause error, loc source.Location) CompilerError {
	return NewParserError(ErrorScannerFailure, cause.Error(), loc).Build()
}

// BreakContinueNotInBody reports break/continue outside of a loop body.
// component is "" when there is no enclosing for-loop at all.
func BreakContinueNotInBody(keyword, component string, loc source.Location) CompilerError {
	var message string
	switch component {
	case "pre":
		message = fmt.Sprintf("Keyword %q in for-loop init block is not allowed", keyword)
	case "post":
		message = fmt.Sprintf("Keyword %q in for-loop post block is not allowed", keyword)
	default:
		message = fmt.Sprintf("Keyword %q needs to be inside a for-loop body", keyword)
	}
	b := NewParserError(ErrorBreakContinuePosition, message, loc)
	if component == "" {
		b.WithNote("function bodies do not inherit an enclosing for-loop")
	}
	return b.Build()
}

func LeaveOutsideFunction(loc source.Location) CompilerError {
	return NewParserError(ErrorLeaveOutsideFunction,
		`Keyword "leave" can only be used inside a function`, loc).
		Build()
}

func FunctionInForLoopInit(loc source.Location) CompilerError {
	return NewParserError(ErrorFunctionInForLoopInit,
		"Functions cannot be defined inside a for-loop init block", loc).
		WithHelp("move the function definition out of the for-loop").
		Build()
}

// findSimilarNames finds names similar to the target using Levenshtein distance
func findSimilarNames(target string, candidates []string) []string {
	type candidate struct {
		name     string
		distance int
	}

	var similar []candidate
	maxDistance := len(target) / 3
	if maxDistance < 1 {
		maxDistance = 1
	}
	if maxDistance > 3 {
		maxDistance = 3
	}

	for _, c := range candidates {
		distance := levenshteinDistance(strings.ToLower(target), strings.ToLower(c))
		if distance <= maxDistance {
			similar = append(similar, candidate{c, distance})
		}
	}

	sort.Slice(similar, func(i, j int) bool {
		if similar[i].distance != similar[j].distance {
			return similar[i].distance < similar[j].distance
		}
		return similar[i].name < similar[j].name
	})

	var result []string
	for i, s := range similar {
		if i >= 3 {
			break
		}
		result = append(result, s.name)
	}

	return result
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

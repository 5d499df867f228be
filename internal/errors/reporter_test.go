package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yulc/internal/source"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	text := "{\n    let x:u255 := 1\n    sstore(0, x)\n}"
	reporter := NewErrorReporter(source.NewCharStream("test.yul", text))

	start := strings.Index(text, "u255")
	err := UnknownType("u255", source.Location{Start: start, End: start + 4}, []string{"u256", "bool"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUnknownType+"]")
	assert.Contains(t, formatted, `Unknown type "u255"`)
	assert.Contains(t, formatted, "test.yul:2:11")
	assert.Contains(t, formatted, "did you mean 'u256'")
	assert.Contains(t, formatted, "    let x:u255 := 1")
	assert.Contains(t, formatted, "sstore(0, x)")
	assert.Contains(t, formatted, strings.Repeat(" ", 10)+"^^^^")
}

func TestFormatErrorUnknownSource(t *testing.T) {
	reporter := NewErrorReporter(source.NewCharStream("a.yul", "{ }"))

	err := UnknownSourceIndex(7, source.Location{Start: 3, End: 9, SourceIndex: 7})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUnknownSourceIndex+"]")
	assert.Contains(t, formatted, "<source 7>:3-9")
}

func TestAddStream(t *testing.T) {
	reporter := NewErrorReporter()
	reporter.AddStream(3, source.NewCharStream("Token.sol", "contract C {}"))

	formatted := reporter.FormatError(CompilerError{
		Level:    Warning,
		Message:  "generated from here",
		Location: source.Location{Start: 9, End: 10, SourceIndex: 3},
	})
	assert.Contains(t, formatted, "warning: generated from here")
	assert.Contains(t, formatted, "Token.sol:1:10")
}

func TestUnknownTypeWithoutSimilarNames(t *testing.T) {
	err := UnknownType("string", source.Location{}, []string{"u256", "bool"})
	assert.Empty(t, err.Suggestions)
	require.Len(t, err.Notes, 1)
	assert.Equal(t, "available types: bool, u256", err.Notes[0])
}

func TestBreakContinueMessages(t *testing.T) {
	loc := source.Location{Start: 4, End: 9}

	assert.Equal(t, `Keyword "break" in for-loop init block is not allowed`,
		BreakContinueNotInBody("break", "pre", loc).Message)
	assert.Equal(t, `Keyword "continue" in for-loop post block is not allowed`,
		BreakContinueNotInBody("continue", "post", loc).Message)

	err := BreakContinueNotInBody("break", "", loc)
	assert.Equal(t, `Keyword "break" needs to be inside a for-loop body`, err.Message)
	assert.Equal(t, ErrorBreakContinuePosition, err.Code)
	assert.Len(t, err.Notes, 1)
}

func TestInvalidAnnotationHelp(t *testing.T) {
	err := InvalidAnnotation("src", "1:x:3", source.Location{})
	assert.Equal(t, ErrorInvalidAnnotation, err.Code)
	assert.Contains(t, err.HelpText, "<source index>:<start>:<length>")

	err = InvalidAnnotation("ast-id", "abc", source.Location{})
	assert.Empty(t, err.HelpText)
}

func TestCompilerErrorImplementsError(t *testing.T) {
	var err error = CallOrAssignmentExpected(source.Location{Start: 2, End: 3})
	assert.Equal(t, "error[E0108]: Call or assignment expected (0:2:1)", err.Error())

	plain := CompilerError{Level: Note, Message: "hi", Location: source.Location{SourceIndex: 1, Start: 0, End: 2}}
	assert.Equal(t, "note: hi (1:0:2)", plain.Error())
}

func TestCollector(t *testing.T) {
	var c Collector
	var sink Sink = &c

	sink.Report(EmptySourceRange("0:1:0", source.Location{}))
	assert.False(t, c.HasErrors())

	sink.Report(LeaveOutsideFunction(source.Location{}))
	assert.True(t, c.HasErrors())
	assert.Len(t, c.Errors, 2)
}

func TestWarningFormatting(t *testing.T) {
	reporter := NewErrorReporter(source.NewCharStream("test.yul", "/// @src 0:1:0\n{ }"))

	err := EmptySourceRange("0:1:0", source.Location{Start: 4, End: 14})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning["+WarningEmptySourceRange+"]")
	assert.True(t, IsWarning(err.Code))
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter()

	marker := reporter.createMarker(5, 8, Error)

	assert.Equal(t, 4, strings.Count(marker, " "))
	assert.Equal(t, 8, strings.Count(marker, "^"))

	assert.Equal(t, 1, strings.Count(reporter.createMarker(1, 0, Warning), "^"))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"u256", "u128", "bool", "s256"}

	similar := findSimilarNames("u255", candidates)
	assert.Contains(t, similar, "u256")
	assert.NotContains(t, similar, "bool")

	assert.Empty(t, findSimilarNames("address", candidates))
}

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		code     string
		category string
	}{
		{ErrorUnexpectedToken, "Parser"},
		{ErrorRecursionLimit, "Parser"},
		{ErrorLeaveOutsideFunction, "Flow Control"},
		{WarningEmptySourceRange, "Warning"},
		{"E9999", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.code, tt.category), func(t *testing.T) {
			assert.Equal(t, tt.category, GetErrorCategory(tt.code))
			if tt.category != "Unknown" {
				assert.NotEqual(t, "Unknown error code", GetErrorDescription(tt.code))
			}
		})
	}
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}

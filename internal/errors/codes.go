package errors

// Error codes for the yulc front end
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0600-E0699: Flow control errors
// E0800-E0899: Warning codes

const (
	// Parser errors (E0100-E0199)

	// E0100: Token does not fit the grammar at this point
	ErrorUnexpectedToken = "E0100"

	// E0101: Input continues after the outermost block
	ErrorTrailingInput = "E0101"

	// E0102: Malformed number, string or hex string literal
	ErrorInvalidLiteral = "E0102"

	// E0104: Builtin function name used as a declared identifier
	ErrorBuiltinAsIdentifier = "E0104"

	// E0105: Builtin function referenced without being called
	ErrorBuiltinNotCalled = "E0105"

	// E0106: Malformed @src or @ast-id annotation
	ErrorInvalidAnnotation = "E0106"

	// E0107: @src names a source index that does not exist
	ErrorUnknownSourceIndex = "E0107"

	// E0108: Expression statement that is not a call
	ErrorCallOrAssignmentExpected = "E0108"

	// E0109: Expression expected
	ErrorLiteralOrIdentifierExpected = "E0109"

	// E0110: Switch without cases or with misplaced default
	ErrorInvalidSwitch = "E0110"

	// E0111: Type name unknown to the dialect
	ErrorUnknownType = "E0111"

	// E0112: Nesting too deep
	ErrorRecursionLimit = "E0112"

	// E0113: Scanner could not continue
	ErrorScannerFailure = "E0113"

	// Flow control errors (E0600-E0699)

	// E0600: break/continue outside of a for-loop body
	ErrorBreakContinuePosition = "E0600"

	// E0601: leave outside of a function body
	ErrorLeaveOutsideFunction = "E0601"

	// E0602: function defined in a for-loop init block
	ErrorFunctionInForLoopInit = "E0602"

	// Warning codes (E0800-E0899)

	// E0800: @src annotation whose range is empty
	WarningEmptySourceRange = "E0800"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Token does not fit the grammar at this point"
	case ErrorTrailingInput:
		return "Input continues after the end of the outermost block"
	case ErrorInvalidLiteral:
		return "Literal is malformed or out of range"
	case ErrorBuiltinAsIdentifier:
		return "Builtin function names cannot be declared"
	case ErrorBuiltinNotCalled:
		return "Builtin functions can only be used in calls"
	case ErrorInvalidAnnotation:
		return "Annotation value is malformed"
	case ErrorUnknownSourceIndex:
		return "Source index is not defined"
	case ErrorCallOrAssignmentExpected:
		return "Statement must be a function call or an assignment"
	case ErrorLiteralOrIdentifierExpected:
		return "Expression expected"
	case ErrorInvalidSwitch:
		return "Switch statement is malformed"
	case ErrorUnknownType:
		return "Type is not defined by the dialect"
	case ErrorRecursionLimit:
		return "Maximum nesting depth exceeded"
	case ErrorScannerFailure:
		return "Scanner could not continue"
	case ErrorBreakContinuePosition:
		return "break and continue are only allowed in a for-loop body"
	case ErrorLeaveOutsideFunction:
		return "leave is only allowed in a function body"
	case ErrorFunctionInForLoopInit:
		return "Functions cannot be defined in a for-loop init block"
	case WarningEmptySourceRange:
		return "Annotated source range is empty"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code >= "E0800" && code < "E0900"
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0600" && code < "E0700":
		return "Flow Control"
	case code >= "E0800" && code < "E0900":
		return "Warning"
	default:
		return "Unknown"
	}
}

package errors

// Error code constants organized by phase
// E001-E099: grammar errors
// E100-E199: AST builder errors
// E200-E299: string literal decode errors

const (
	// Grammar errors (E001-E099)
	ErrSyntax             = "E001"
	ErrUnterminatedString = "E002"

	// AST builder errors (E100-E199)
	ErrUnexpectedRule    = "E100"
	ErrUnknownSourceType = "E101"
	ErrMalformedLiteral  = "E102"

	// Decode errors (E200-E299)
	ErrInvalidEscape     = "E200"
	ErrInvalidHexEscape  = "E201"
	ErrInvalidUnicode    = "E202"
	ErrInvalidCodepoint  = "E203"
	ErrTruncatedEscape   = "E204"
)

// ErrorMessages maps error codes to their default messages
var ErrorMessages = map[string]string{
	ErrSyntax:             "Syntax error",
	ErrUnterminatedString: "Unterminated string literal",
	ErrUnexpectedRule:     "Parse node does not match the expected grammar rule",
	ErrUnknownSourceType:  "Unknown source directive keyword",
	ErrMalformedLiteral:   "Malformed string literal",
	ErrInvalidEscape:      "Invalid escape sequence",
	ErrInvalidHexEscape:   "Invalid hex escape sequence",
	ErrInvalidUnicode:     "Invalid unicode escape sequence",
	ErrInvalidCodepoint:   "Invalid unicode codepoint",
	ErrTruncatedEscape:    "Truncated escape sequence",
}

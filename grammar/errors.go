package grammar

import (
	"errors"
	"fmt"
)

// Errors flagging malformed input. Errors returned by Parse are of type
// *ParseError and unwrap to one of these.
var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrUnknownFunction       = errors.New("unknown function")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrMalformedExpression   = errors.New("malformed expression")
)

// ParseError is an error for input which could not be translated.
type ParseError struct {
	Err    error  // one of the classifying errors above
	Lexeme string // offending lexeme, if any
	Pos    int    // byte position within Source
	Source string // normalized input text
}

func (err *ParseError) Error() string {
	if err.Lexeme == "" {
		return fmt.Sprintf("%s at position %d in %q", err.Err.Error(), err.Pos, err.Source)
	}
	return fmt.Sprintf("%s %q at position %d in %q", err.Err.Error(), err.Lexeme,
		err.Pos, err.Source)
}

// Unwrap returns the classifying error.
func (err *ParseError) Unwrap() error {
	return err.Err
}

func parseError(e error, lexeme string, pos int, source string) *ParseError {
	tracer().Errorf("%s %q at position %d", e.Error(), lexeme, pos)
	return &ParseError{Err: e, Lexeme: lexeme, Pos: pos, Source: source}
}

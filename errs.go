package calc

import "strconv"

// SyntaxError is an error indicating a statement that does not follow the
// grammar. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Want describes what the grammar expected: "name", "=", "(", ")",
	// ",", "primary", or "end of statement".
	Want string
	// In names the production being parsed when the error occurred, if
	// that helps the message; it may be empty.
	In string
}

func (err *SyntaxError) Error() string {
	msg := "expected " + err.Want
	if err.In != "" {
		msg += " in " + err.In
	}
	return errpos(err.Col, msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched ( or { grouping. It
// implements InputError.
type BracketError struct {
	// Col is the position where the matching close bracket should have
	// appeared.
	Col int
	// Open is the opening bracket.
	Open string
	// Close is the token found in place of the close bracket, or the empty
	// string at end of input.
	Close string
}

func (err *BracketError) Error() string {
	if err.Close == "" {
		return errpos(err.Col, "open bracket "+err.Open+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Open+"expr"+err.Close)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Errors resulting from
// invalid input text implement InputError; errors about the meaning of a
// statement, such as NameError or DomainError, do not carry positions.
type InputError interface {
	error
	// Pos returns the rune position in the line of the token that caused
	// the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*BracketError)(nil)
)

// IsInputError reports whether err describes a problem with a statement, as
// opposed to a failure of the underlying input source. Statement errors are
// recoverable: report them, resynchronize with TokenStream.Ignore, and
// carry on. Anything else is fatal.
func IsInputError(err error) bool {
	switch err.(type) {
	case *LexError, *SyntaxError, *BracketError,
		*NameError, *UndeclaredError, *RedeclaredError, *ConstantError,
		*DomainError, *FactorialError:
		return true
	}
	return false
}

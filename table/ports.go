package table

import "errors"

// ErrInvalidInput is returned by a Prompter when the next token is not an
// integer. The offending input has already been consumed.
var ErrInvalidInput = errors.New("invalid input")

// Prompter supplies the integers the user types. It returns an error
// wrapping ErrInvalidInput for unparseable input and io.EOF once the input
// is exhausted.
type Prompter interface {
	NextInt() (int, error)
}

// View renders the game to the user.
type View interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
	// Prompt writes msg without a trailing newline
	Prompt(msg string)
}

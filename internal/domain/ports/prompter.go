package ports

import (
	"context"
	"errors"
)

// Prompter talks to the operator. Ask blocks until a line is read and
// returns it without surrounding whitespace.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
	Say(ctx context.Context, format string, args ...any)
	Heading(ctx context.Context, text string)
	Warn(ctx context.Context, format string, args ...any)
}

// ErrInput marks failures to read operator input other than io.EOF.
var ErrInput = errors.New("input unavailable")

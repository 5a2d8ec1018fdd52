package ports

import (
	"context"
	"time"
)

// TextCleaner flattens operator input into a single plain-text line.
type TextCleaner interface {
	Clean(input string) string
}

// ReviewPlanner picks the next review time for a freshly added problem.
// A zero time means reviews are disabled.
type ReviewPlanner interface {
	NextReview(after time.Time) time.Time
}

// Previewer renders a markdown document for the terminal.
type Previewer interface {
	Render(ctx context.Context, markdown string) (string, error)
}

package markdown

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"

	"learnlog/internal/domain/ports"
)

// AutoStyle picks a dark or light theme from the terminal background.
const AutoStyle = "auto"

// Renderer implements ports.Previewer using glamour.
type Renderer struct {
	term *glamour.TermRenderer
}

var _ ports.Previewer = (*Renderer)(nil)

// NewRenderer builds a Renderer. style is AutoStyle or a glamour style name
// such as "dark", "light" or "notty".
func NewRenderer(style string, wordWrap int) (*Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	if style == "" || style == AutoStyle {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Renderer{term: term}, nil
}

// Render formats markdown for the terminal.
func (r *Renderer) Render(_ context.Context, markdown string) (string, error) {
	out, err := r.term.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

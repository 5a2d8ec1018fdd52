package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"learnlog/internal/domain/ports"
)

// Console implements ports.Prompter over a line reader and a writer.
// Colours are only emitted when out is a terminal.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	heading lipgloss.Style
	warning lipgloss.Style

	start sync.Once
	lines chan readResult
}

type readResult struct {
	line string
	err  error
}

var _ ports.Prompter = (*Console)(nil)

// New creates a Console.
func New(in io.Reader, out io.Writer) *Console {
	renderer := lipgloss.NewRenderer(out)
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		heading: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("9")),
		lines:   make(chan readResult),
	}
}

// readLines feeds lines to Ask until the input fails, then closes the channel.
func (c *Console) readLines() {
	defer close(c.lines)
	for {
		line, err := c.in.ReadString('\n')
		c.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Ask prints question and reads one line. io.EOF is returned only when the
// input ends before any character of the line was read. Cancelling ctx
// unblocks a pending read; the line, once typed, goes to the next Ask.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, question)
	c.start.Do(func() { go c.readLines() })

	var res readResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case r, ok := <-c.lines:
		res = r
		if !ok {
			res.err = io.EOF
		}
	}

	line, err := res.line, res.err
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", io.EOF
		}
		return "", fmt.Errorf("read input: %w: %w", ports.ErrInput, err)
	}
	return strings.TrimSpace(line), nil
}

// Say prints a status line.
func (c *Console) Say(_ context.Context, format string, args ...any) {
	fmt.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Heading prints a highlighted line.
func (c *Console) Heading(_ context.Context, text string) {
	fmt.Fprintln(c.out, c.heading.Render(text))
}

// Warn prints a problem the operator should notice.
func (c *Console) Warn(_ context.Context, format string, args ...any) {
	fmt.Fprintln(c.out, c.warning.Render(fmt.Sprintf(format, args...)))
}

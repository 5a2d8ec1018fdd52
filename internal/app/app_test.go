package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlog/internal/adapter/console"
	"learnlog/internal/adapter/filesystem"
	"learnlog/internal/adapter/htmltext"
	"learnlog/internal/adapter/markdown"
	"learnlog/internal/adapter/review"
	"learnlog/internal/domain/ports"
	"learnlog/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type recordingLogger struct {
	nopLogger
	errors []string
}

func (l *recordingLogger) Error(_ context.Context, msg string, _ ...any) {
	l.errors = append(l.errors, msg)
}

type session struct {
	root string
	out  *bytes.Buffer
	app  *App
}

func newSession(t *testing.T, input ...string) *session {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Learner", "Pre-algebra")
	out := &bytes.Buffer{}
	prompt := console.New(strings.NewReader(strings.Join(input, "\n")+"\n"), out)

	planner, err := review.New("0 9 * * 6")
	require.NoError(t, err)
	renderer, err := markdown.NewRenderer("notty", 80)
	require.NoError(t, err)

	scaffolder, err := usecase.NewScaffolder(
		filesystem.New(root),
		prompt,
		markdown.NewEditor(),
		htmltext.New(),
		planner,
		nopLogger{},
		usecase.ScaffolderConfig{
			SubjectTitle: "Pre-Algebra",
			IndexFile:    "index.md",
			SolutionFile: "solution.py",
			Now:          func() time.Time { return time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC) },
		},
	)
	require.NoError(t, err)

	return &session{root: root, out: out, app: New(scaffolder, prompt, renderer, nopLogger{})}
}

func (s *session) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestRunAddTopicAndProblem(t *testing.T) {
	s := newSession(t,
		"1", "Fractions", "Parts of a whole.", "",
		"2", "fractions", "Halves", "Split into two equal parts", "y",
		"2", "fractions", "", "", "Y",
		"q",
	)

	require.NoError(t, s.app.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Created main README: "+filepath.Join(s.root, "index.md"))
	assert.Contains(t, out, "Manage "+s.root)
	assert.Contains(t, out, "Added topic 'Fractions' to main README.")
	assert.Contains(t, out, "Updated topic README and main README with the new problem entry.")
	assert.True(t, strings.HasSuffix(out, "Goodbye.\n"))

	index := s.read(t, "index.md")
	assert.Contains(t, index, "| [Problem 01 – Halves](fractions/problem_01_halves/README.md) | Split into two equal parts |\n"+
		"| [Problem 02 – untitled problem](fractions/problem_02_untitled_problem/README.md) | No description provided. |\n")

	topic := s.read(t, "fractions/README.md")
	assert.Contains(t, topic, "| [Problem 01 – Halves](problem_01_halves/README.md) | Split into two equal parts |\n"+
		"| [Problem 02 – untitled problem](problem_02_untitled_problem/README.md) | No description provided. |\n")

	assert.FileExists(t, filepath.Join(s.root, "fractions", "problem_01_halves", "solution.py"))
}

func TestRunUnknownChoiceThenDone(t *testing.T) {
	s := newSession(t, "x", "n")

	require.NoError(t, s.app.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Unknown choice — try again.")
	assert.True(t, strings.HasSuffix(out, "Done.\n"))
}

func TestRunMissingTopicNameReturnsToMenu(t *testing.T) {
	s := newSession(t, "2", "", "", "q")

	require.NoError(t, s.app.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Topic name required.")
	assert.Equal(t, 2, strings.Count(out, "Choose an action:"))
}

func TestRunDecliningTopicCreationAborts(t *testing.T) {
	s := newSession(t, "2", "geometry", "n", "n")

	require.NoError(t, s.app.Run(context.Background()))

	assert.Contains(t, s.out.String(), "Aborting. Create the topic first or choose another topic.")
	assert.NoDirExists(t, filepath.Join(s.root, "geometry"))
	assert.NotContains(t, s.read(t, "index.md"), "Geometry")
}

func TestRunPreviewIndex(t *testing.T) {
	s := newSession(t, "1", "ratios", "", "", "3", "", "q")

	require.NoError(t, s.app.Run(context.Background()))

	out := s.out.String()
	assert.Contains(t, out, "Pre-Algebra Learning Hub")
	assert.Contains(t, out, "Ratios")
}

func TestRunEndOfInputEndsSession(t *testing.T) {
	s := newSession(t)
	s.app.prompt = console.New(strings.NewReader(""), s.out)

	assert.NoError(t, s.app.Run(context.Background()))
}

func TestRunCancelledContext(t *testing.T) {
	s := newSession(t, "1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.app.Run(ctx), context.Canceled)
}

func TestRunCancelWhileWaitingForInput(t *testing.T) {
	s := newSession(t)
	pr, pw := io.Pipe()
	defer pw.Close()
	s.app.prompt = console.New(pr, s.out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.app.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunLogsReadFailure(t *testing.T) {
	s := newSession(t)
	logger := &recordingLogger{}
	s.app.logger = logger
	s.app.prompt = console.New(iotest.ErrReader(errors.New("device gone")), s.out)

	err := s.app.Run(context.Background())

	assert.ErrorIs(t, err, ports.ErrInput)
	assert.Equal(t, []string{"session aborted"}, logger.errors)
}

func TestRunEndOfInputIsNotLogged(t *testing.T) {
	s := newSession(t)
	logger := &recordingLogger{}
	s.app.logger = logger
	s.app.prompt = console.New(strings.NewReader(""), s.out)

	require.NoError(t, s.app.Run(context.Background()))
	assert.Empty(t, logger.errors)
}

func TestReportCollision(t *testing.T) {
	s := newSession(t)

	s.app.report(context.Background(), fmt.Errorf("fractions/problem_01_a: %w", usecase.ErrProblemExists))

	assert.Contains(t, s.out.String(), "Problem folder already exists — aborting to avoid overwrite.")
}

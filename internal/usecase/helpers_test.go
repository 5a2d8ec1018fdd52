package usecase

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"learnlog/internal/adapter/filesystem"
	"learnlog/internal/adapter/htmltext"
	"learnlog/internal/adapter/markdown"
	"learnlog/internal/adapter/review"
)

// scriptedPrompter answers questions from a fixed list and records output.
type scriptedPrompter struct {
	answers   []string
	questions []string
	said      []string
	warned    []string
}

func (p *scriptedPrompter) Ask(_ context.Context, question string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Say(_ context.Context, format string, args ...any) {
	p.said = append(p.said, fmt.Sprintf(format, args...))
}

func (p *scriptedPrompter) Heading(_ context.Context, text string) {
	p.said = append(p.said, text)
}

func (p *scriptedPrompter) Warn(_ context.Context, format string, args ...any) {
	p.warned = append(p.warned, fmt.Sprintf(format, args...))
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

// fixedNow is a Monday.
var fixedNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

type fixture struct {
	root   string
	prompt *scriptedPrompter
	s      *Scaffolder
}

func newFixture(t *testing.T, mutate ...func(*ScaffolderConfig)) *fixture {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Learner", "Pre-algebra")
	prompt := &scriptedPrompter{}
	planner, err := review.New("0 9 * * 6")
	require.NoError(t, err)

	cfg := ScaffolderConfig{
		SubjectTitle: "Pre-Algebra",
		IndexFile:    "index.md",
		SolutionFile: "solution.py",
		Now:          func() time.Time { return fixedNow },
	}
	for _, m := range mutate {
		m(&cfg)
	}

	s, err := NewScaffolder(
		filesystem.New(root),
		prompt,
		markdown.NewEditor(),
		htmltext.New(),
		planner,
		nopLogger{},
		cfg,
	)
	require.NoError(t, err)
	return &fixture{root: root, prompt: prompt, s: s}
}

func (f *fixture) answer(answers ...string) {
	f.prompt.answers = append(f.prompt.answers, answers...)
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) mkdir(t *testing.T, rel string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(f.root, filepath.FromSlash(rel)), 0o755))
}

// snapshot maps every path under the root to its content ("/" for directories).
func (f *fixture) snapshot(t *testing.T) map[string]string {
	t.Helper()
	out := map[string]string{}
	if _, err := os.Stat(f.root); os.IsNotExist(err) {
		return out
	}
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(f.root, p)
		if d.IsDir() {
			out[rel] = "/"
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		out[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

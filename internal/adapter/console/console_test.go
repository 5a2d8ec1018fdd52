package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlog/internal/domain/ports"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("  fractions \r\nlast"), &out)
	ctx := context.Background()

	got, err := c.Ask(ctx, "Topic: ")
	require.NoError(t, err)
	assert.Equal(t, "fractions", got)

	got, err = c.Ask(ctx, "Again: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.Ask(ctx, "Gone: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Topic: Again: Gone: \n", out.String())
}

func TestAskCancelled(t *testing.T) {
	c := New(strings.NewReader("x\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Ask(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAskUnblocksOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := New(pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := c.Ask(ctx, "> ")
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(5 * time.Second):
		t.Fatal("Ask did not return after the context was cancelled")
	}

	go func() { _, _ = pw.Write([]byte("fractions\n")) }()
	got, err := c.Ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "fractions", got)
}

func TestAskAfterEndOfInput(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard)

	for range 2 {
		_, err := c.Ask(context.Background(), "> ")
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestAskReadFailure(t *testing.T) {
	c := New(iotest.ErrReader(errors.New("device gone")), io.Discard)

	_, err := c.Ask(context.Background(), "> ")
	assert.ErrorIs(t, err, ports.ErrInput)
}

func TestOutputIsPlainWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	ctx := context.Background()

	c.Heading(ctx, "Manage Learner/Pre-algebra")
	c.Say(ctx, "Created %s", "fractions")
	c.Warn(ctx, "Topic name required.")

	assert.Equal(t, "Manage Learner/Pre-algebra\nCreated fractions\nTopic name required.\n", out.String())
}

package app

import (
	"context"
	"errors"
	"io"
	"strings"

	"learnlog/internal/domain/ports"
	"learnlog/internal/usecase"
)

// App runs the interactive menu over the scaffolder.
type App struct {
	scaffolder *usecase.Scaffolder
	prompt     ports.Prompter
	preview    ports.Previewer
	logger     ports.Logger
}

// New constructs an App instance.
func New(scaffolder *usecase.Scaffolder, prompt ports.Prompter, preview ports.Previewer, logger ports.Logger) *App {
	return &App{
		scaffolder: scaffolder,
		prompt:     prompt,
		preview:    preview,
		logger:     logger,
	}
}

// Run repeats menu cycles until the operator quits, answers "n" to the
// continue prompt or closes the input. Failed actions are reported and the
// session goes on.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "session started", "root", a.scaffolder.RootPath())

	for {
		quit, err := a.cycle(ctx)
		if err != nil {
			return a.finish(ctx, err)
		}
		if quit {
			return nil
		}

		answer, err := a.prompt.Ask(ctx, "\nDo another action? (Y/n): ")
		if err != nil {
			return a.finish(ctx, err)
		}
		if strings.EqualFold(answer, "n") {
			a.prompt.Say(ctx, "Done.")
			return nil
		}
	}
}

func (a *App) cycle(ctx context.Context) (bool, error) {
	if err := a.scaffolder.EnsureBase(ctx); err != nil {
		a.report(ctx, err)
	}

	a.prompt.Say(ctx, "")
	a.prompt.Heading(ctx, "Manage "+a.scaffolder.RootPath())
	a.prompt.Say(ctx, "Choose an action:")
	a.prompt.Say(ctx, "1) Add a new topic")
	a.prompt.Say(ctx, "2) Add a new problem to an existing topic")
	a.prompt.Say(ctx, "3) Preview the main README")
	a.prompt.Say(ctx, "q) Quit")

	choice, err := a.prompt.Ask(ctx, "> ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(choice) {
	case "1":
		err = a.addTopic(ctx)
	case "2":
		err = a.addProblem(ctx)
	case "3":
		err = a.previewIndex(ctx)
	case "q":
		a.prompt.Say(ctx, "Goodbye.")
		return true, nil
	default:
		a.prompt.Warn(ctx, "Unknown choice — try again.")
	}

	if err != nil {
		if isInputFailure(ctx, err) {
			return false, err
		}
		a.report(ctx, err)
	}
	return false, nil
}

func (a *App) addTopic(ctx context.Context) error {
	name, err := a.prompt.Ask(ctx, "Enter topic name (e.g., fractions, equations): ")
	if err != nil {
		return err
	}
	description, err := a.prompt.Ask(ctx, "Enter topic description (optional — press Enter for placeholder): ")
	if err != nil {
		return err
	}

	_, err = a.scaffolder.AddTopic(ctx, name, description)
	return err
}

func (a *App) addProblem(ctx context.Context) error {
	name, err := a.prompt.Ask(ctx, "Enter topic name (existing topic): ")
	if err != nil {
		return err
	}
	topic, err := a.scaffolder.ResolveTopic(ctx, name)
	if err != nil {
		return err
	}

	title, err := a.prompt.Ask(ctx, "Enter short problem title (optional — press Enter for 'untitled problem'): ")
	if err != nil {
		return err
	}
	description, err := a.prompt.Ask(ctx, "Enter a one-line description for the table (optional): ")
	if err != nil {
		return err
	}

	_, err = a.scaffolder.AddProblem(ctx, topic.Slug, title, description)
	return err
}

func (a *App) previewIndex(ctx context.Context) error {
	doc, err := a.scaffolder.Index()
	if err != nil {
		return err
	}
	out, err := a.preview.Render(ctx, doc)
	if err != nil {
		return err
	}
	a.prompt.Say(ctx, "%s", strings.TrimRight(out, "\n"))
	return nil
}

func (a *App) report(ctx context.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTopicRequired):
		a.prompt.Warn(ctx, "Topic name required.")
	case errors.Is(err, usecase.ErrAborted):
		a.prompt.Warn(ctx, "Aborting. Create the topic first or choose another topic.")
	case errors.Is(err, usecase.ErrProblemExists):
		a.prompt.Warn(ctx, "Problem folder already exists — aborting to avoid overwrite.")
	default:
		a.prompt.Warn(ctx, "Error: %v", err)
	}
	a.logger.Warn(ctx, "action failed", "error", err)
}

func isInputFailure(ctx context.Context, err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, ports.ErrInput) || ctx.Err() != nil
}

// finish ends the session on an input failure. Closed input and
// cancellation are normal endings; anything else is logged.
func (a *App) finish(ctx context.Context, err error) error {
	err = endOfInput(err)
	if err != nil && ctx.Err() == nil {
		a.logger.Error(ctx, "session aborted", "error", err)
	}
	return err
}

// endOfInput treats a closed input stream as a normal end of session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

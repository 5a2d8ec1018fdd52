package usecase

import (
	"context"
	"errors"

	"learnlog/internal/domain/ports"
	"learnlog/internal/domain/weekday"
)

// WeekdayCalculator asks for a weekday and a day count and reports the
// weekday that many days later.
type WeekdayCalculator struct {
	prompt ports.Prompter
	logger ports.Logger
}

// NewWeekdayCalculator constructs a WeekdayCalculator.
func NewWeekdayCalculator(prompt ports.Prompter, logger ports.Logger) *WeekdayCalculator {
	return &WeekdayCalculator{prompt: prompt, logger: logger}
}

// Run re-prompts until both inputs are valid. It only fails when input can
// no longer be read.
func (w *WeekdayCalculator) Run(ctx context.Context) (string, error) {
	start, err := w.askStart(ctx)
	if err != nil {
		return "", err
	}
	days, err := w.askDays(ctx)
	if err != nil {
		return "", err
	}

	end := weekday.Add(start, days)
	w.prompt.Say(ctx, "The day after adding %d days to %s is %s.", days, weekday.Days[start], end)
	w.logger.Info(ctx, "weekday computed", "start", weekday.Days[start], "days", days, "end", end)
	return end, nil
}

func (w *WeekdayCalculator) askStart(ctx context.Context) (int, error) {
	for {
		answer, err := w.prompt.Ask(ctx, "Enter the starting day of the week (e.g., Monday): ")
		if err != nil {
			return 0, err
		}
		idx, err := weekday.Index(answer)
		if err == nil {
			return idx, nil
		}
		w.prompt.Warn(ctx, "Invalid day. Please try again.")
	}
}

func (w *WeekdayCalculator) askDays(ctx context.Context) (int, error) {
	for {
		answer, err := w.prompt.Ask(ctx, "Enter the number of days to add (non-negative integer): ")
		if err != nil {
			return 0, err
		}
		n, err := weekday.ParseOffset(answer)
		switch {
		case err == nil:
			return n, nil
		case errors.Is(err, weekday.ErrNegative):
			w.prompt.Warn(ctx, "Please enter a non-negative integer.")
		default:
			w.prompt.Warn(ctx, "Invalid input. Please enter a non-negative integer.")
		}
	}
}

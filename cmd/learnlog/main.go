package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"learnlog/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// After the first signal, restore default handling so a second one kills.
	context.AfterFunc(ctx, stop)

	if err := newRootCmd().ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("learnlog: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "learnlog",
		Short: "Scaffold topics and problems for a self-study log",
		Long: `learnlog manages a learning log on disk.

It keeps a main README with one table per topic, creates topic folders with
their own README, and numbers problem folders (problem_01_<title>, ...) that
hold a README and a solution placeholder. Everything is driven by prompts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := di.InitializeApp()
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
	root.AddCommand(newWeekdayCmd())
	return root
}

func newWeekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday",
		Short: "Compute the weekday a number of days after a given one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calculator, err := di.InitializeWeekday()
			if err != nil {
				return err
			}
			_, err = calculator.Run(cmd.Context())
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		},
	}
}

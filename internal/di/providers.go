package di

import (
	"log/slog"
	"os"

	"learnlog/internal/adapter/console"
	"learnlog/internal/adapter/filesystem"
	"learnlog/internal/adapter/logging"
	"learnlog/internal/adapter/markdown"
	"learnlog/internal/adapter/review"
	"learnlog/internal/config"
	"learnlog/internal/domain/ports"
	"learnlog/internal/usecase"
)

const previewWordWrap = 80

// Logs go to stderr so they never interleave with prompts.
func provideSlogLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	return slog.New(handler)
}

func provideConsole() ports.Prompter {
	return console.New(os.Stdin, os.Stdout)
}

func provideWorkspace(cfg *config.Config) ports.Workspace {
	return filesystem.New(cfg.BasePath())
}

func provideReviewPlanner(cfg *config.Config) (ports.ReviewPlanner, error) {
	return review.New(cfg.ReviewCron)
}

func providePreviewer(cfg *config.Config) (ports.Previewer, error) {
	return markdown.NewRenderer(cfg.PreviewStyle, previewWordWrap)
}

func provideScaffolderConfig(cfg *config.Config) usecase.ScaffolderConfig {
	return usecase.ScaffolderConfig{
		SubjectTitle: cfg.SubjectTitle,
		IndexFile:    cfg.IndexFile,
		SolutionFile: cfg.SolutionFile,
		Templates: usecase.TemplateSources{
			Index:    cfg.Templates.Index,
			Topic:    cfg.Templates.Topic,
			Problem:  cfg.Templates.Problem,
			Solution: cfg.Templates.Solution,
		},
	}
}

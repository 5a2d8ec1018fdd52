//go:build wireinject

package di

import (
	"github.com/google/wire"

	"learnlog/internal/adapter/htmltext"
	"learnlog/internal/adapter/logging"
	"learnlog/internal/adapter/markdown"
	"learnlog/internal/app"
	"learnlog/internal/config"
	"learnlog/internal/domain/ports"
	"learnlog/internal/usecase"
)

var baseSet = wire.NewSet(
	config.Load,
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideConsole,
)

// InitializeApp wires the interactive menu.
func InitializeApp() (*app.App, error) {
	wire.Build(
		baseSet,
		provideWorkspace,
		markdown.NewEditor,
		wire.Bind(new(ports.TableEditor), new(*markdown.Editor)),
		htmltext.New,
		wire.Bind(new(ports.TextCleaner), new(*htmltext.Cleaner)),
		provideReviewPlanner,
		providePreviewer,
		provideScaffolderConfig,
		usecase.NewScaffolder,
		app.New,
	)
	return nil, nil
}

// InitializeWeekday wires the day-of-week calculator.
func InitializeWeekday() (*usecase.WeekdayCalculator, error) {
	wire.Build(
		baseSet,
		usecase.NewWeekdayCalculator,
	)
	return nil, nil
}

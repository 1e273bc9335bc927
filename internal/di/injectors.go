//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"guildpreview/internal"
	"guildpreview/internal/controllers"
	"guildpreview/internal/presenter"
	"guildpreview/internal/providers"
	"guildpreview/internal/services"
	"guildpreview/internal/structures"
	"guildpreview/internal/upstream"
)

var templateSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,

	upstream.NewClient,
	services.NewTemplateService,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		templateSet,
		providers.NewInstrumentedThrottleProvider,

		presenter.NewHTMLPresenter,
		controllers.NewTemplateController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitRenderer(cfg *structures.CliFlags) (*internal.Renderer, error) {

	wire.Build(
		templateSet,

		presenter.NewTerminalPresenter,
		internal.NewRenderer,
	)

	return nil, nil
}

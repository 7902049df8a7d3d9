//go:build wireinject
// +build wireinject

package di

import (
	"insightd/internal"
	"insightd/internal/controllers"
	"insightd/internal/models"
	"insightd/internal/persistence"
	"insightd/internal/providers"
	"insightd/internal/services"
	"insightd/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewAnalyzerProvider,

		models.NewInsightStore,
		persistence.NewZstdCompressor,
		persistence.NewFileManager,
		persistence.NewBackupManager,
		persistence.NewScheduler,
		services.NewInsightService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/yieldx-network/yieldx-deploy/internal/adapters"
	"github.com/yieldx-network/yieldx-deploy/internal/config"
	"github.com/yieldx-network/yieldx-deploy/internal/logging"
	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,

		// App
		NewApp,
	)
	return nil, nil
}

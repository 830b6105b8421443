package app

import (
	"log/slog"

	"github.com/yieldx-network/yieldx-deploy/internal/adapters/blockchain"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config   *config.RuntimeConfig
	Log      *slog.Logger
	Progress usecase.ProgressSink

	// Use cases
	DeployContract *usecase.DeployContract

	// Adapters with resources to release
	Client *blockchain.Client
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	progress usecase.ProgressSink,
	deployContract *usecase.DeployContract,
	client *blockchain.Client,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		Progress:       progress,
		DeployContract: deployContract,
		Client:         client,
	}, nil
}

// Close releases the RPC connection
func (a *App) Close() {
	if a.Client != nil {
		a.Client.Close()
	}
}

package adapters

import (
	"github.com/google/wire"
	"github.com/yieldx-network/yieldx-deploy/internal/adapters/artifacts"
	"github.com/yieldx-network/yieldx-deploy/internal/adapters/blockchain"
	"github.com/yieldx-network/yieldx-deploy/internal/adapters/progress"
	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

// ArtifactSet provides filesystem artifact lookup
var ArtifactSet = wire.NewSet(
	artifacts.NewResolver,
	wire.Bind(new(usecase.ArtifactResolver), new(*artifacts.Resolver)),
)

// BlockchainSet provides go-ethereum backed deployment
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,
	blockchain.NewFactoryProvider,
	wire.Bind(new(usecase.ContractFactoryProvider), new(*blockchain.FactoryProvider)),
)

// ProgressSet provides stage reporting on stderr
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters is the complete adapter set
var AllAdapters = wire.NewSet(
	ArtifactSet,
	BlockchainSet,
	ProgressSet,
)

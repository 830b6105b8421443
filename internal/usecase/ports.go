package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
)

// ArtifactResolver looks up compiled contract artifacts by name
type ArtifactResolver interface {
	ResolveArtifact(ctx context.Context, name string) (*domain.Artifact, error)
}

// ContractFactoryProvider resolves a named artifact into a deployable factory
type ContractFactoryProvider interface {
	GetContractFactory(ctx context.Context, name string) (ContractFactory, error)
}

// ContractFactory deploys new instances of a single artifact
type ContractFactory interface {
	Artifact() *domain.Artifact
	// Deploy submits the creation transaction. It returns once the
	// transaction is accepted by the node, not once it is mined.
	Deploy(ctx context.Context, args ...any) (DeployedContract, error)
}

// DeployedContract is the handle of a submitted deployment
type DeployedContract interface {
	Address() common.Address
	TxHash() common.Hash
	// WaitForDeployment blocks until the creation transaction is mined and
	// the contract code is present.
	WaitForDeployment(ctx context.Context) (*types.Receipt, error)
}

// Progress tracking interfaces

// ExecutionStage represents a stage in the deployment process
type ExecutionStage string

const (
	StageResolving  ExecutionStage = "Resolving"
	StageDeploying  ExecutionStage = "Deploying"
	StageConfirming ExecutionStage = "Confirming"
	StageCompleted  ExecutionStage = "Completed"
	StageFailed     ExecutionStage = "Failed"
)

// ProgressSink receives progress updates
type ProgressSink interface {
	ReportStage(ctx context.Context, stage ExecutionStage)
	Info(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) ReportStage(context.Context, ExecutionStage) {}
func (NopProgress) Info(string)                                 {}

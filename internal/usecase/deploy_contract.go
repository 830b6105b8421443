package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yieldx-network/yieldx-deploy/internal/domain"
)

// DeployContract resolves, deploys and confirms a single contract instance.
// It never retries: a second creation transaction would produce a second
// contract.
type DeployContract struct {
	factories ContractFactoryProvider
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(factories ContractFactoryProvider, progress ProgressSink, log *slog.Logger) *DeployContract {
	if progress == nil {
		progress = NopProgress{}
	}
	return &DeployContract{
		factories: factories,
		progress:  progress,
		log:       log,
	}
}

// Run deploys the named contract with no constructor arguments
func (uc *DeployContract) Run(ctx context.Context, contractName string) (*domain.DeploymentResult, error) {
	result, err := uc.run(ctx, contractName)
	if err != nil {
		uc.progress.ReportStage(ctx, StageFailed)
		return nil, err
	}
	uc.progress.ReportStage(ctx, StageCompleted)
	return result, nil
}

func (uc *DeployContract) run(ctx context.Context, contractName string) (*domain.DeploymentResult, error) {
	uc.progress.ReportStage(ctx, StageResolving)
	factory, err := uc.factories.GetContractFactory(ctx, contractName)
	if err != nil {
		var resolutionErr *domain.ArtifactResolutionError
		if errors.As(err, &resolutionErr) {
			return nil, err
		}
		return nil, &domain.ArtifactResolutionError{Name: contractName, Err: err}
	}
	if artifact := factory.Artifact(); artifact != nil {
		uc.log.Debug("resolved contract factory", "contract", artifact.FullyQualifiedName(), "artifact", artifact.Path)
	}

	uc.progress.ReportStage(ctx, StageDeploying)
	contract, err := factory.Deploy(ctx)
	if err != nil {
		return nil, &domain.DeploymentError{Contract: contractName, Err: err}
	}
	uc.log.Debug("deployment submitted", "contract", contractName, "tx", contract.TxHash().Hex(), "address", contract.Address().Hex())

	uc.progress.ReportStage(ctx, StageConfirming)
	receipt, err := contract.WaitForDeployment(ctx)
	if err != nil {
		return nil, &domain.ConfirmationError{Contract: contractName, TxHash: contract.TxHash(), Err: err}
	}

	result := &domain.DeploymentResult{
		ContractName: contractName,
		Address:      contract.Address(),
		TxHash:       contract.TxHash(),
	}
	if receipt != nil && receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	uc.log.Debug("deployment confirmed", "contract", contractName, "address", result.Address.Hex(), "block", result.BlockNumber)

	return result, nil
}

package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

// FactoryProvider builds contract factories from resolved artifacts
type FactoryProvider struct {
	artifacts usecase.ArtifactResolver
	client    *Client
	log       *slog.Logger
}

// NewFactoryProvider creates a new factory provider
func NewFactoryProvider(artifacts usecase.ArtifactResolver, client *Client, log *slog.Logger) *FactoryProvider {
	return &FactoryProvider{
		artifacts: artifacts,
		client:    client,
		log:       log,
	}
}

// GetContractFactory resolves the named artifact. It does not touch the
// network; the connection is opened on Deploy.
func (p *FactoryProvider) GetContractFactory(ctx context.Context, name string) (usecase.ContractFactory, error) {
	artifact, err := p.artifacts.ResolveArtifact(ctx, name)
	if err != nil {
		return nil, err
	}
	return &ContractFactory{artifact: artifact, client: p.client, log: p.log}, nil
}

// ContractFactory deploys instances of one artifact
type ContractFactory struct {
	artifact *domain.Artifact
	client   *Client
	log      *slog.Logger
}

// Artifact returns the artifact backing this factory
func (f *ContractFactory) Artifact() *domain.Artifact {
	return f.artifact
}

// Deploy signs and submits the creation transaction. Gas limit and fees are
// estimated by go-ethereum.
func (f *ContractFactory) Deploy(ctx context.Context, args ...any) (usecase.DeployedContract, error) {
	backend, _, err := f.client.Connect(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := f.client.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, f.artifact.ABI, f.artifact.Bytecode, backend, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to submit creation transaction: %w", err)
	}

	f.log.Debug("creation transaction sent",
		"contract", f.artifact.Name,
		"tx", tx.Hash().Hex(),
		"nonce", tx.Nonce(),
		"gas", tx.Gas(),
	)

	return &DeployedContract{address: address, tx: tx, backend: backend}, nil
}

// DeployedContract is the handle of a submitted creation transaction
type DeployedContract struct {
	address common.Address
	tx      *types.Transaction
	backend bind.DeployBackend
}

// Address returns the address the contract is created at
func (d *DeployedContract) Address() common.Address {
	return d.address
}

// TxHash returns the creation transaction hash
func (d *DeployedContract) TxHash() common.Hash {
	return d.tx.Hash()
}

// WaitForDeployment waits for the creation transaction to be mined and checks
// that it succeeded and left code at the address
func (d *DeployedContract) WaitForDeployment(ctx context.Context) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, d.backend, d.tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for receipt: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w in block %s (gas used %d)", domain.ErrTransactionReverted, receipt.BlockNumber, receipt.GasUsed)
	}

	code, err := d.backend.CodeAt(ctx, d.address, nil)
	if err != nil {
		return receipt, fmt.Errorf("failed to read code at %s: %w", d.address.Hex(), err)
	}
	if len(code) == 0 {
		return receipt, fmt.Errorf("%w %s", domain.ErrNoCodeAtAddress, d.address.Hex())
	}

	return receipt, nil
}

// Ensure the adapters implement the ports
var (
	_ usecase.ContractFactoryProvider = (*FactoryProvider)(nil)
	_ usecase.ContractFactory         = (*ContractFactory)(nil)
	_ usecase.DeployedContract        = (*DeployedContract)(nil)
)

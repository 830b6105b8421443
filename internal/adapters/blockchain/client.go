package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
)

// Backend is the chain access needed to submit and confirm deployments.
// Both *ethclient.Client and the simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client connects lazily to the configured network and hands out signed
// transactors for it
type Client struct {
	network    *config.Network
	privateKey string
	log        *slog.Logger

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
	close   func()
}

// NewClient creates a client for the configured network
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		network:    cfg.Network,
		privateKey: cfg.PrivateKey,
		log:        log,
	}
}

// NewClientWithBackend creates a client over an already connected backend
func NewClientWithBackend(backend Backend, network *config.Network, privateKey string, log *slog.Logger) *Client {
	return &Client{
		network:    network,
		privateKey: privateKey,
		log:        log,
		backend:    backend,
	}
}

// Connect dials the RPC endpoint on first use and verifies the chain ID
func (c *Client) Connect(ctx context.Context) (Backend, *big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil && c.chainID != nil {
		return c.backend, c.chainID, nil
	}

	if c.network == nil {
		return nil, nil, fmt.Errorf("no network configured")
	}

	if c.backend == nil {
		c.log.Debug("connecting to network", "network", c.network.Name)
		client, err := ethclient.DialContext(ctx, c.network.RPCURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to network %s: %w", c.network.Name, err)
		}
		c.backend = client
		c.close = client.Close
	}

	chainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chain ID from %s: %w", c.network.Name, err)
	}

	if c.network.ChainID != 0 && chainID.Uint64() != c.network.ChainID {
		return nil, nil, fmt.Errorf("%w: network %s expects %d, endpoint reports %d",
			domain.ErrChainIDMismatch, c.network.Name, c.network.ChainID, chainID.Uint64())
	}

	c.chainID = chainID
	c.log.Debug("connected", "network", c.network.Name, "chainId", chainID.Uint64())
	return c.backend, c.chainID, nil
}

// TransactOpts returns a transactor for the configured signer bound to ctx
func (c *Client) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	_, chainID, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := NewTransactor(c.privateKey, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx

	c.log.Debug("using deployer account", "address", opts.From.Hex())
	return opts, nil
}

// Close releases the RPC connection if one was opened
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.close != nil {
		c.close()
		c.close = nil
	}
}

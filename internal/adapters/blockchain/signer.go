package blockchain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
)

// localChainID is the chain ID of Hardhat and Anvil development nodes
const localChainID = 31337

// devPrivateKey is account #0 of the default Hardhat/Anvil mnemonic. It is
// only ever used on chain 31337.
const devPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80" //nolint:gosec // public development key

// NewTransactor creates a keyed transactor for chainID. An empty key selects
// the development account on local chains and is an error elsewhere.
func NewTransactor(privateKey string, chainID *big.Int) (*bind.TransactOpts, error) {
	if chainID == nil {
		return nil, fmt.Errorf("chain ID is required")
	}

	key := strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	if key == "" {
		if chainID.Uint64() != localChainID {
			return nil, fmt.Errorf("%w for chain %d: set YIELDX_PRIVATE_KEY or PRIVATE_KEY", domain.ErrMissingPrivateKey, chainID.Uint64())
		}
		key = devPrivateKey
	}

	ecdsaKey, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(ecdsaKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	return opts, nil
}

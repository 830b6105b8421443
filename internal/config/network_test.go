package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
)

func TestNetworkResolver_Resolve(t *testing.T) {
	foundryConfig := &config.FoundryConfig{
		RpcEndpoints: map[string]string{
			"sepolia":   "https://sepolia.example.org",
			"localhost": "http://127.0.0.1:9545",
		},
	}
	resolver := NewNetworkResolver(foundryConfig)

	t.Run("foundry.toml endpoint", func(t *testing.T) {
		network, err := resolver.Resolve("sepolia")
		require.NoError(t, err)
		assert.Equal(t, "sepolia", network.Name)
		assert.Equal(t, "https://sepolia.example.org", network.RPCURL)
		assert.Zero(t, network.ChainID)
	})

	t.Run("foundry.toml overrides built-in", func(t *testing.T) {
		network, err := resolver.Resolve("localhost")
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:9545", network.RPCURL)
	})

	t.Run("environment endpoint", func(t *testing.T) {
		t.Setenv("YIELDX_TESTNET_RPC_URL", "https://testnet.example.org")

		network, err := resolver.Resolve("yieldx-testnet")
		require.NoError(t, err)
		assert.Equal(t, "https://testnet.example.org", network.RPCURL)
	})

	t.Run("built-in hardhat network", func(t *testing.T) {
		network, err := resolver.Resolve("hardhat")
		require.NoError(t, err)
		assert.Equal(t, LocalRPCURL, network.RPCURL)
		assert.Equal(t, LocalChainID, network.ChainID)
	})

	t.Run("empty name uses default network", func(t *testing.T) {
		network, err := NewNetworkResolver(nil).Resolve("")
		require.NoError(t, err)
		assert.Equal(t, DefaultNetwork, network.Name)
		assert.Equal(t, LocalRPCURL, network.RPCURL)
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := resolver.Resolve("mainnet")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
		assert.Contains(t, err.Error(), "sepolia")
	})
}

func TestNetworkResolver_KnownNetworks(t *testing.T) {
	resolver := NewNetworkResolver(&config.FoundryConfig{
		RpcEndpoints: map[string]string{
			"sepolia":   "https://sepolia.example.org",
			"localhost": "http://127.0.0.1:9545",
		},
	})

	assert.Equal(t, []string{"anvil", "hardhat", "localhost", "sepolia"}, resolver.KnownNetworks())
}

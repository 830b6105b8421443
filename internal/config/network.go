package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
)

// DefaultNetwork is used when neither flags nor environment select a network
const DefaultNetwork = "localhost"

// LocalRPCURL is the JSON-RPC endpoint of a local Hardhat or Anvil node
const LocalRPCURL = "http://127.0.0.1:8545"

// LocalChainID is the chain ID of Hardhat and Anvil development nodes
const LocalChainID uint64 = 31337

// builtinNetworks are resolvable without any project configuration
var builtinNetworks = map[string]config.Network{
	"localhost": {Name: "localhost", RPCURL: LocalRPCURL},
	"hardhat":   {Name: "hardhat", RPCURL: LocalRPCURL, ChainID: LocalChainID},
	"anvil":     {Name: "anvil", RPCURL: LocalRPCURL, ChainID: LocalChainID},
}

// NetworkResolver resolves network names to RPC endpoints
type NetworkResolver struct {
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	return &NetworkResolver{foundryConfig: foundryConfig}
}

// Resolve resolves a network name to its configuration. Lookup order is
// foundry.toml [rpc_endpoints], the <NAME>_RPC_URL environment variable,
// then the built-in local networks.
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if networkName == "" {
		networkName = DefaultNetwork
	}

	if r.foundryConfig != nil {
		if raw, ok := r.foundryConfig.RpcEndpoints[networkName]; ok {
			rpcURL, err := ExpandRPCURL(networkName, raw)
			if err != nil {
				return nil, err
			}
			return &config.Network{Name: networkName, RPCURL: rpcURL}, nil
		}
	}

	if rpcURL := os.Getenv(GenerateEnvVarName(networkName)); rpcURL != "" {
		return &config.Network{Name: networkName, RPCURL: rpcURL}, nil
	}

	if network, ok := builtinNetworks[networkName]; ok {
		return &network, nil
	}

	return nil, fmt.Errorf("%w: %s (known networks: %v)", domain.ErrNetworkNotFound, networkName, r.KnownNetworks())
}

// KnownNetworks lists configured and built-in network names
func (r *NetworkResolver) KnownNetworks() []string {
	names := lo.Keys(builtinNetworks)
	if r.foundryConfig != nil {
		names = append(names, lo.Keys(r.foundryConfig.RpcEndpoints)...)
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

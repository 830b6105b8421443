package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into adapters and use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Network is the resolved deployment target
	Network *Network

	// Artifact lookup, empty means the toolchain defaults (artifacts/ and out/)
	ArtifactsDir string

	// ContractSource selects the source unit when several define the contract,
	// e.g. "src/YieldXNetwork.sol"
	ContractSource string

	// Signer key as hex; may be empty for local development chains
	PrivateKey string //nolint:gosec // resolved from env, never logged

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig
}

// Network represents network configuration
type Network struct {
	Name   string `json:"name"`
	RPCURL string `json:"rpcUrl"`
	// ChainID is the expected chain ID; 0 accepts whatever the endpoint reports
	ChainID uint64 `json:"chainId,omitempty"`
}

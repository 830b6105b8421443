package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is a compiled contract ready for on-chain instantiation
type Artifact struct {
	// Name is the contract name, e.g. "YieldXNetwork"
	Name string
	// SourceName is the source unit defining the contract, e.g. "contracts/YieldXNetwork.sol"
	SourceName string
	// Path is the artifact file, relative to the project root when possible
	Path string
	// Format is the build toolchain that produced the artifact
	Format ArtifactFormat

	ABI      abi.ABI
	Bytecode []byte
}

// ArtifactFormat identifies the artifact layout on disk
type ArtifactFormat string

const (
	ArtifactFormatHardhat ArtifactFormat = "hardhat"
	ArtifactFormatFoundry ArtifactFormat = "foundry"
)

// FullyQualifiedName returns "source:Name"
func (a *Artifact) FullyQualifiedName() string {
	if a.SourceName == "" {
		return a.Name
	}
	return fmt.Sprintf("%s:%s", a.SourceName, a.Name)
}

package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrArtifactNotFound is returned when no compiled artifact exists for a contract name
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrAmbiguousArtifact is returned when more than one source defines the contract name
	ErrAmbiguousArtifact = errors.New("ambiguous artifact")

	// ErrEmptyBytecode is returned for interfaces and abstract contracts
	ErrEmptyBytecode = errors.New("artifact has no creation bytecode")

	// ErrUnlinkedLibrary is returned when the bytecode still carries library placeholders
	ErrUnlinkedLibrary = errors.New("artifact bytecode has unlinked libraries")

	// ErrTransactionReverted is returned when the deployment receipt has a failed status
	ErrTransactionReverted = errors.New("deployment transaction reverted")

	// ErrNoCodeAtAddress is returned when a mined deployment left no code behind
	ErrNoCodeAtAddress = errors.New("no contract code at address after deployment")

	// ErrMissingPrivateKey is returned when no signer key is configured for a non-local chain
	ErrMissingPrivateKey = errors.New("no private key configured")

	// ErrChainIDMismatch is returned when the RPC endpoint serves a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrNetworkNotFound is returned when a network name cannot be resolved to an RPC URL
	ErrNetworkNotFound = errors.New("network not found")
)

// ArtifactResolutionError reports that a contract factory could not be built
// for the named artifact.
type ArtifactResolutionError struct {
	Name        string
	Candidates  []string
	Suggestions []string
	Err         error
}

func (e *ArtifactResolutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to resolve artifact %s: %v", e.Name, e.Err)

	if len(e.Candidates) > 0 {
		candidates := make([]string, len(e.Candidates))
		copy(candidates, e.Candidates)
		sort.Strings(candidates)

		b.WriteString("\ncandidates:")
		for _, c := range candidates {
			b.WriteString("\n  - ")
			b.WriteString(c)
		}
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "\ndid you mean: %s?", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

func (e *ArtifactResolutionError) Unwrap() error {
	return e.Err
}

// DeploymentError reports that the deployment transaction could not be submitted.
type DeploymentError struct {
	Contract string
	Err      error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("failed to deploy %s: %v", e.Contract, e.Err)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

// ConfirmationError reports that a submitted deployment was never confirmed.
type ConfirmationError struct {
	Contract string
	TxHash   common.Hash
	Err      error
}

func (e *ConfirmationError) Error() string {
	if e.TxHash == (common.Hash{}) {
		return fmt.Sprintf("deployment of %s was not confirmed: %v", e.Contract, e.Err)
	}
	return fmt.Sprintf("deployment of %s (tx %s) was not confirmed: %v", e.Contract, e.TxHash.Hex(), e.Err)
}

func (e *ConfirmationError) Unwrap() error {
	return e.Err
}

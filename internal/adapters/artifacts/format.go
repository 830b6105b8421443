package artifacts

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
)

// artifactFile covers both Hardhat (hh-sol-artifact-1) and Foundry artifacts.
// Hardhat stores bytecode as a hex string, Foundry as {"object": "0x..."}.
type artifactFile struct {
	Format       string          `json:"_format"`
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     bytecodeField   `json:"bytecode"`
	Metadata     json.RawMessage `json:"metadata"`
}

type bytecodeField string

func (b *bytecodeField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = bytecodeField(s)
		return nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid bytecode field: %w", err)
	}
	*b = bytecodeField(obj.Object)
	return nil
}

// foundryMetadata is the part of Foundry's metadata naming the compiled contract
type foundryMetadata struct {
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// loadArtifact reads and decodes an artifact file. Bytecode is validated by
// the caller so that a readable artifact can still be reported as a candidate.
func loadArtifact(path string) (*domain.Artifact, string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from walking the artifacts dir
	if err != nil {
		return nil, "", fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	artifact := &domain.Artifact{
		Name:       file.ContractName,
		SourceName: file.SourceName,
		Path:       path,
		Format:     domain.ArtifactFormatHardhat,
	}

	if artifact.Name == "" {
		artifact.Format = domain.ArtifactFormatFoundry
		artifact.Name, artifact.SourceName = foundryTarget(path, file.Metadata)
	}

	if len(file.ABI) > 0 {
		parsed, err := abi.JSON(bytes.NewReader(file.ABI))
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse ABI in %s: %w", path, err)
		}
		artifact.ABI = parsed
	}

	return artifact, string(file.Bytecode), nil
}

// foundryTarget extracts contract and source name from Foundry metadata,
// falling back to the out/<Source>.sol/<Name>.json layout.
func foundryTarget(path string, raw json.RawMessage) (name, source string) {
	if len(raw) > 0 && raw[0] == '{' {
		var meta foundryMetadata
		if err := json.Unmarshal(raw, &meta); err == nil {
			for src, contract := range meta.Settings.CompilationTarget {
				return contract, src
			}
		}
	}

	name = strings.TrimSuffix(filepath.Base(path), ".json")
	source = filepath.Base(filepath.Dir(path))
	return name, source
}

// decodeBytecode validates and decodes creation bytecode
func decodeBytecode(code string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(code), "0x")
	if trimmed == "" {
		return nil, domain.ErrEmptyBytecode
	}

	// Hardhat and Foundry both mark unresolved library links as __$<hash>$__
	if strings.Contains(trimmed, "__") {
		return nil, domain.ErrUnlinkedLibrary
	}

	bytecode, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode hex: %w", err)
	}
	return bytecode, nil
}

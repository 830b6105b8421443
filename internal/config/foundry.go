package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
)

// loadEnvFiles loads .env files from the project root. Variables already set
// in the process environment take precedence.
func loadEnvFiles(projectRoot string) error {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return nil
}

// loadFoundryConfig parses foundry.toml if the project has one. A project
// without foundry.toml yields an empty config.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	cfg := &config.FoundryConfig{
		Profile:      make(map[string]config.ProfileConfig),
		RpcEndpoints: make(map[string]string),
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(foundryPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}
	if cfg.RpcEndpoints == nil {
		cfg.RpcEndpoints = make(map[string]string)
	}

	return cfg, nil
}

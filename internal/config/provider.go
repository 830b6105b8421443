package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
)

// projectMarkers identify the root of a contracts project
var projectMarkers = []string{
	"hardhat.config.js",
	"hardhat.config.ts",
	"hardhat.config.cjs",
	"foundry.toml",
}

// DataDir returns the directory holding local yieldx-deploy settings
func DataDir(projectRoot string) string {
	return filepath.Join(projectRoot, ".yieldx")
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	// .env must be loaded before any env-backed key is read
	if err := loadEnvFiles(projectRoot); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", v.GetString("timeout"), err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ContractSource: v.GetString("contract_source"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        timeout,
		PrivateKey:     v.GetString("private_key"),
	}

	// Hardhat projects conventionally keep the deployer key in PRIVATE_KEY
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = os.Getenv("PRIVATE_KEY")
	}

	if dir := v.GetString("artifacts"); dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(projectRoot, dir)
		}
		cfg.ArtifactsDir = dir
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	cfg.FoundryConfig = foundryConfig

	network, err := resolveNetwork(v, foundryConfig)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	return cfg, nil
}

// resolveNetwork applies the rpc_url and chain_id overrides on top of the
// named network.
func resolveNetwork(v *viper.Viper, foundryConfig *config.FoundryConfig) (*config.Network, error) {
	networkName := v.GetString("network")

	var network *config.Network
	if rpcURL := v.GetString("rpc_url"); rpcURL != "" {
		if networkName == "" {
			networkName = "custom"
		}
		network = &config.Network{Name: networkName, RPCURL: rpcURL}
	} else {
		resolved, err := NewNetworkResolver(foundryConfig).Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network: %w", err)
		}
		network = resolved
	}

	if chainID := v.GetUint64("chain_id"); chainID != 0 {
		network.ChainID = chainID
	}

	return network, nil
}

// FindProjectRoot walks up from the current directory to find a Hardhat or
// Foundry project root
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a contracts project (none of %s found)", strings.Join(projectMarkers, ", "))
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(DataDir(projectRoot))

	v.SetEnvPrefix("YIELDX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Config file is optional
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// flagKey maps a flag name to its viper key, e.g. rpc-url -> rpc_url
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yieldx-network/yieldx-deploy/internal/app"
	"github.com/yieldx-network/yieldx-deploy/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// appInitializer builds the application from resolved configuration
type appInitializer func(v *viper.Viper) (*app.App, error)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(app.InitApp)
}

func newRootCmd(initApp appInitializer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yieldx-deploy",
		Short: "Deploy the YieldXNetwork contract",
		Long: `yieldx-deploy deploys one new instance of the YieldXNetwork contract from the
project's compiled Hardhat or Foundry artifacts, waits for the creation
transaction to be mined and prints the contract address.

Network and signer come from the environment (YIELDX_* variables, .env) and
foundry.toml [rpc_endpoints]. Without configuration it targets a local node
at http://127.0.0.1:8545.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// Artifact lookup reports the missing build output
				projectRoot = "."
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := initApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
		RunE: runDeploy,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable progress output")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to deploy to (e.g., localhost, sepolia)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint, overrides the network's configured URL")
	rootCmd.PersistentFlags().String("artifacts", "", "Directory with compiled artifacts (default: artifacts/ and out/)")
	rootCmd.PersistentFlags().String("contract-source", "", "Source unit defining the contract when several do (e.g., src/YieldXNetwork.sol)")

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the command and maps the outcome to a process exit code
func Execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

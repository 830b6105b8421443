package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yieldx-network/yieldx-deploy/internal/cli/render"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
)

// runDeploy performs the single deployment of the root command
func runDeploy(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	if app.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.Config.Timeout)
		defer cancel()
	}

	if network := app.Config.Network; network != nil {
		app.Progress.Info(fmt.Sprintf("Deploying %s to %s", domain.ContractName, network.Name))
		app.Log.Debug("deploying", "contract", domain.ContractName, "network", network.Name, "chainId", network.ChainID)
	}

	result, err := app.DeployContract.Run(ctx, domain.ContractName)
	if err != nil {
		return err
	}

	return render.NewDeploymentRenderer(cmd.OutOrStdout()).Render(result)
}

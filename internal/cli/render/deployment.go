package render

import (
	"fmt"
	"io"

	"github.com/yieldx-network/yieldx-deploy/internal/domain"
)

// DeploymentRenderer writes the deployment result line
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// Render writes "<Contract> contract deployed to: <address>". This is the
// only line written to stdout and scripts parse it, so it carries no color.
func (r *DeploymentRenderer) Render(result *domain.DeploymentResult) error {
	_, err := fmt.Fprintf(r.out, "%s contract deployed to: %s\n", result.ContractName, result.Address.Hex())
	return err
}

var _ Renderer[*domain.DeploymentResult] = (*DeploymentRenderer)(nil)

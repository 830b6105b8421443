package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
)

func TestDeploymentRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	result := &domain.DeploymentResult{
		ContractName: domain.ContractName,
		Address:      common.HexToAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3"),
	}

	require.NoError(t, NewDeploymentRenderer(&buf).Render(result))
	assert.Equal(t, "YieldXNetwork contract deployed to: 0x5FbDB2315678afecb367f032d93F642f64180aa3\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestDeploymentRenderer_WriteError(t *testing.T) {
	err := NewDeploymentRenderer(failingWriter{}).Render(&domain.DeploymentResult{ContractName: domain.ContractName})
	assert.EqualError(t, err, "broken pipe")
}

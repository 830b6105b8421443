package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yieldx-network/yieldx-deploy/internal/app"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

var deployedAddress = common.HexToAddress("0xabcdef0123456789abcdef0123456789abcdef01")

type fakeFactoryProvider struct {
	factory usecase.ContractFactory
	err     error
	calls   int
}

func (f *fakeFactoryProvider) GetContractFactory(context.Context, string) (usecase.ContractFactory, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.factory, nil
}

type fakeFactory struct {
	contract usecase.DeployedContract
	err      error
	args     [][]any
}

func (f *fakeFactory) Artifact() *domain.Artifact {
	return &domain.Artifact{Name: domain.ContractName}
}

func (f *fakeFactory) Deploy(_ context.Context, args ...any) (usecase.DeployedContract, error) {
	f.args = append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return f.contract, nil
}

type fakeContract struct {
	waitErr error
	waits   int
}

func (f *fakeContract) Address() common.Address { return deployedAddress }
func (f *fakeContract) TxHash() common.Hash     { return common.HexToHash("0x01") }

func (f *fakeContract) WaitForDeployment(context.Context) (*types.Receipt, error) {
	f.waits++
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil
}

type harness struct {
	provider *fakeFactoryProvider
	factory  *fakeFactory
	contract *fakeContract
	progress *infoRecorder
	inits    int
	initErr  error
}

func newHarness() *harness {
	contract := &fakeContract{}
	factory := &fakeFactory{contract: contract}
	return &harness{
		provider: &fakeFactoryProvider{factory: factory},
		factory:  factory,
		contract: contract,
	}
}

// infoRecorder keeps Info messages and ignores stages
type infoRecorder struct {
	usecase.NopProgress
	messages []string
}

func (r *infoRecorder) Info(message string) {
	r.messages = append(r.messages, message)
}

func (h *harness) initApp(_ *viper.Viper) (*app.App, error) {
	h.inits++
	if h.initErr != nil {
		return nil, h.initErr
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h.progress = &infoRecorder{}
	return app.NewApp(
		&config.RuntimeConfig{Network: &config.Network{Name: "localhost"}},
		log,
		h.progress,
		usecase.NewDeployContract(h.provider, h.progress, log),
		nil,
	)
}

// run executes the root command and returns exit code, stdout and stderr
func (h *harness) run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(h.initApp)
	cmd.SetArgs(append([]string{"--non-interactive"}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	code := Execute(context.Background(), cmd, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRoot_Success(t *testing.T) {
	h := newHarness()

	code, stdout, stderr := h.run(t)

	assert.Equal(t, 0, code)
	assert.Equal(t, "YieldXNetwork contract deployed to: "+deployedAddress.Hex()+"\n", stdout)
	assert.Empty(t, stderr)

	assert.Equal(t, 1, h.provider.calls)
	require.Len(t, h.factory.args, 1)
	assert.Empty(t, h.factory.args[0], "deploy must not receive constructor arguments")
	assert.Equal(t, 1, h.contract.waits)
	assert.Equal(t, []string{"Deploying YieldXNetwork to localhost"}, h.progress.messages)
}

func TestRoot_ResolutionFailure(t *testing.T) {
	h := newHarness()
	h.provider.err = &domain.ArtifactResolutionError{
		Name:        domain.ContractName,
		Suggestions: []string{"YieldXNetworkV2"},
		Err:         domain.ErrArtifactNotFound,
	}

	code, stdout, stderr := h.run(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: failed to resolve artifact YieldXNetwork: artifact not found")
	assert.Contains(t, stderr, "did you mean: YieldXNetworkV2?")
	assert.Equal(t, 1, h.provider.calls)
	assert.Empty(t, h.factory.args, "no deployment may be attempted")
}

func TestRoot_SubmissionFailure(t *testing.T) {
	h := newHarness()
	h.factory.err = errors.New("nonce too low")

	code, stdout, stderr := h.run(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: failed to deploy YieldXNetwork: nonce too low")
	assert.Equal(t, 1, h.provider.calls)
	assert.Len(t, h.factory.args, 1)
	assert.Zero(t, h.contract.waits)
}

func TestRoot_ConfirmationFailure(t *testing.T) {
	h := newHarness()
	h.contract.waitErr = domain.ErrTransactionReverted

	code, stdout, stderr := h.run(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "was not confirmed: deployment transaction reverted")
	assert.Equal(t, 1, h.provider.calls)
	assert.Len(t, h.factory.args, 1)
	assert.Equal(t, 1, h.contract.waits)
}

func TestRoot_InitFailure(t *testing.T) {
	h := newHarness()
	h.initErr = domain.ErrNetworkNotFound

	code, stdout, stderr := h.run(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: failed to initialize app: network not found")
	assert.Zero(t, h.provider.calls)
}

func TestRoot_RejectsPositionalArguments(t *testing.T) {
	h := newHarness()

	code, stdout, stderr := h.run(t, "extra")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unknown command")
	assert.Zero(t, h.inits)
}

func TestRoot_Version(t *testing.T) {
	h := newHarness()

	code, stdout, _ := h.run(t, "version")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "yieldx-deploy version dev")
	assert.Zero(t, h.inits)
}

// writeMixedProject creates a project with the contract compiled by both
// Hardhat and Foundry
func writeMixedProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"foundry.toml": "[profile.default]\nsrc = \"src\"\n",
		"artifacts/contracts/YieldXNetwork.sol/YieldXNetwork.json": `{"_format":"hh-sol-artifact-1","contractName":"YieldXNetwork","sourceName":"contracts/YieldXNetwork.sol","abi":[],"bytecode":"0x6001600c60003960016000f300"}`,
		"out/YieldXNetwork.sol/YieldXNetwork.json":                 `{"abi":[],"bytecode":{"object":"0x6001600c60003960016000f300"},"metadata":{"settings":{"compilationTarget":{"src/YieldXNetwork.sol":"YieldXNetwork"}}}}`,
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// clearEnv unsets the YIELDX_* settings for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"YIELDX_NETWORK", "YIELDX_RPC_URL", "YIELDX_CHAIN_ID", "YIELDX_ARTIFACTS", "YIELDX_CONTRACT_SOURCE", "YIELDX_TIMEOUT", "YIELDX_PRIVATE_KEY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// runInProject executes the fully wired root command from root
func runInProject(t *testing.T, root string, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(root)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--non-interactive"}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	code := Execute(context.Background(), cmd, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRoot_AmbiguousArtifact(t *testing.T) {
	root := writeMixedProject(t)
	// nothing listens on port 1, so a selected artifact fails at submission
	unreachable := []string{"--rpc-url", "http://127.0.0.1:1"}

	t.Run("error points at the contract source setting", func(t *testing.T) {
		clearEnv(t)
		code, stdout, stderr := runInProject(t, root, unreachable...)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "ambiguous artifact")
		assert.Contains(t, stderr, "--contract-source")
		assert.Contains(t, stderr, "contracts/YieldXNetwork.sol:YieldXNetwork")
		assert.Contains(t, stderr, "src/YieldXNetwork.sol:YieldXNetwork")
	})

	t.Run("flag selects the source", func(t *testing.T) {
		clearEnv(t)
		args := append([]string{"--contract-source", "src/YieldXNetwork.sol"}, unreachable...)
		code, stdout, stderr := runInProject(t, root, args...)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.NotContains(t, stderr, "ambiguous artifact")
		assert.Contains(t, stderr, "Error: failed to deploy YieldXNetwork")
	})

	t.Run("environment selects the source", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("YIELDX_CONTRACT_SOURCE", "contracts/YieldXNetwork.sol")
		code, stdout, stderr := runInProject(t, root, unreachable...)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.NotContains(t, stderr, "ambiguous artifact")
		assert.Contains(t, stderr, "Error: failed to deploy YieldXNetwork")
	})
}

func TestRoot_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("YIELDX_TIMEOUT", "5 minutes")

	code, stdout, stderr := runInProject(t, writeMixedProject(t))

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `invalid timeout "5 minutes"`)
}

package stellar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

// fakeRunner records invocations and replays canned output.
func fakeRunner(calls *[]call, out string, err error) runFunc {
	return func(name string, args ...string) ([]byte, error) {
		*calls = append(*calls, call{name: name, args: args})
		return []byte(out), err
	}
}

func TestInvokeBuildsArgs(t *testing.T) {
	var calls []call
	cli := NewWithRunner("testnet", fakeRunner(&calls, "\"42\"\n", nil))

	got, err := cli.Invoke("CCONTRACT", "deployer", "balance", "--id", "GHOLDER")
	require.NoError(t, err)
	assert.Equal(t, `"42"`, got)

	require.Len(t, calls, 1)
	assert.Equal(t, "stellar", calls[0].name)
	assert.Equal(t, []string{
		"contract", "invoke",
		"--id", "CCONTRACT",
		"--source-account", "deployer",
		"--network", "testnet",
		"--", "balance", "--id", "GHOLDER",
	}, calls[0].args)
}

func TestInvokeKeepsLastLine(t *testing.T) {
	var calls []call
	out := "Simulating transaction...\nSigning transaction...\n5000000000\n"
	cli := NewWithRunner("testnet", fakeRunner(&calls, out, nil))

	got, err := cli.Invoke("C", "alice", "balance", "--id", "G")
	require.NoError(t, err)
	assert.Equal(t, "5000000000", got)
}

func TestInvokeFailureReturnsOutputAndError(t *testing.T) {
	// stderr is merged into the captured stream, so on failure the
	// last line is the tool's error text.
	var calls []call
	out := "Simulating transaction...\nerror: contract not found\n"
	cli := NewWithRunner("testnet", fakeRunner(&calls, out, fmt.Errorf("exit status 1")))

	got, err := cli.Invoke("C", "alice", "balance", "--id", "G")
	require.Error(t, err)
	assert.Equal(t, "error: contract not found", got)
}

func TestKeysAddress(t *testing.T) {
	var calls []call
	cli := NewWithRunner("testnet", fakeRunner(&calls, "GABC\n", nil))

	got, err := cli.KeysAddress("alice")
	require.NoError(t, err)
	assert.Equal(t, "GABC", got)

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"keys", "address", "alice"}, calls[0].args)
}

func TestKeysAddressFailure(t *testing.T) {
	var calls []call
	cli := NewWithRunner("testnet", fakeRunner(&calls, "error: no such identity\n", fmt.Errorf("exit status 1")))

	_, err := cli.KeysAddress("mallory")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mallory")
	assert.Contains(t, err.Error(), "no such identity")
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "c", LastLine("a\nb\nc"))
	assert.Equal(t, "b", LastLine("a\nb\n\n  \n"))
	assert.Equal(t, "only", LastLine("only"))
	assert.Equal(t, "", LastLine(""))
	assert.Equal(t, "", LastLine("\n\n"))
}

func TestNewDefaults(t *testing.T) {
	cli := New("futurenet")
	assert.Equal(t, "stellar", cli.Binary)
	assert.Equal(t, "futurenet", cli.Network)
	assert.NotNil(t, cli.run)
}

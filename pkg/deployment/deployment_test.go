package deployment

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjilabs/creditline/pkg/strkey"
)

func contractID(t *testing.T, fill byte) string {
	t.Helper()
	payload := make([]byte, 32)
	for i := range payload {
		payload[i] = fill
	}
	id, err := strkey.Encode(strkey.VersionContract, payload)
	require.NoError(t, err)
	return id
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	benji := contractID(t, 1)
	usdc := contractID(t, 2)
	creditLine := contractID(t, 3)

	path := writeEnv(t, fmt.Sprintf(
		"BENJI_TOKEN_ID=%s\nUSDC_TOKEN_ID=%s\nCREDIT_LINE_ID=%s\n",
		benji, usdc, creditLine,
	))

	addrs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, benji, addrs.BenjiTokenID)
	assert.Equal(t, usdc, addrs.UsdcTokenID)
	assert.Equal(t, creditLine, addrs.CreditLineID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.Error(t, err)
}

func TestLoadMissingVariable(t *testing.T) {
	path := writeEnv(t, fmt.Sprintf(
		"BENJI_TOKEN_ID=%s\nUSDC_TOKEN_ID=%s\n",
		contractID(t, 1), contractID(t, 2),
	))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CREDIT_LINE_ID")
}

func TestLoadRejectsMalformedContractID(t *testing.T) {
	path := writeEnv(t, fmt.Sprintf(
		"BENJI_TOKEN_ID=not-a-contract\nUSDC_TOKEN_ID=%s\nCREDIT_LINE_ID=%s\n",
		contractID(t, 2), contractID(t, 3),
	))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BENJI_TOKEN_ID")
}

func TestResolve(t *testing.T) {
	addrs := &Addresses{
		BenjiTokenID: "CBENJI",
		UsdcTokenID:  "CUSDC",
		CreditLineID: "CLINE",
	}

	assert.Equal(t, "CBENJI", addrs.Resolve("benji"))
	assert.Equal(t, "CUSDC", addrs.Resolve("usdc"))
	assert.Equal(t, "CLINE", addrs.Resolve("credit-line"))
	assert.Equal(t, "CLINE", addrs.Resolve("creditline"))
	assert.Equal(t, "CRAW", addrs.Resolve("CRAW"))
}

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjilabs/creditline/pkg/strkey"
)

// SEP-0005 test vector 2.
const testMnemonic = "illness spike retreat truth genius clock brain pass fit cave bargain toe"

func TestDeriveMatchesSEP0005Vector(t *testing.T) {
	kp, err := Derive(testMnemonic, 0)
	require.NoError(t, err)

	assert.Equal(t, "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUEUVX", kp.Address)
	assert.Equal(t, "SBGWSG6BTNCKCOB3DIFBGCVMUPQFYPA2G4O34RMTB343OYPXU5DJDVMN", kp.Seed)
	assert.Equal(t, 0, kp.AccountIndex)
}

func TestDeriveAccountsAreDistinct(t *testing.T) {
	kp0, err := Derive(testMnemonic, 0)
	require.NoError(t, err)
	kp1, err := Derive(testMnemonic, 1)
	require.NoError(t, err)

	assert.NotEqual(t, kp0.Address, kp1.Address)
	assert.NotEqual(t, kp0.Seed, kp1.Seed)
}

func TestDeriveIsDeterministic(t *testing.T) {
	first, err := Derive(testMnemonic, 3)
	require.NoError(t, err)
	second, err := Derive(testMnemonic, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDeriveRejectsInvalidMnemonic(t *testing.T) {
	_, err := Derive("definitely not a mnemonic", 0)
	assert.Error(t, err)
}

func TestNewMnemonicDerivesValidKeys(t *testing.T) {
	mnemonic, err := NewMnemonic()
	require.NoError(t, err)

	kp, err := Derive(mnemonic, 0)
	require.NoError(t, err)
	assert.True(t, strkey.IsValidAccountID(kp.Address))
	assert.True(t, strkey.IsValid(strkey.VersionSeed, kp.Seed))
}

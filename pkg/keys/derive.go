package keys

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/luxfi/go-bip39"

	"github.com/benjilabs/creditline/pkg/strkey"
)

// SEP-0005 derivation path for Stellar accounts: m/44'/148'/{account}'.
// All segments are hardened; ed25519 derivation (SLIP-0010) has no
// non-hardened form.
const (
	purposeIndex  = 44
	coinTypeIndex = 148
)

const slip10Key = "ed25519 seed"

// Keypair holds the strkey-encoded halves of a derived identity.
type Keypair struct {
	AccountIndex int    `json:"accountIndex"`
	Address      string `json:"address"`
	Seed         string `json:"seed,omitempty"`
}

// NewMnemonic generates a fresh 12-word BIP-39 mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", fmt.Errorf("error generating entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("error generating mnemonic: %w", err)
	}
	return mnemonic, nil
}

// Derive returns the keypair at m/44'/148'/{account}' for the given
// mnemonic, per SEP-0005.
func Derive(mnemonic string, account int) (*Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	seed := bip39.NewSeed(mnemonic, "")

	key, chainCode := masterKey(seed)
	for _, index := range []uint32{purposeIndex, coinTypeIndex, uint32(account)} {
		key, chainCode = deriveChild(key, chainCode, index)
	}

	priv := ed25519.NewKeyFromSeed(key)
	pub := priv.Public().(ed25519.PublicKey)

	address, err := strkey.Encode(strkey.VersionAccount, pub)
	if err != nil {
		return nil, fmt.Errorf("error encoding address: %w", err)
	}
	secret, err := strkey.Encode(strkey.VersionSeed, key)
	if err != nil {
		return nil, fmt.Errorf("error encoding seed: %w", err)
	}

	return &Keypair{
		AccountIndex: account,
		Address:      address,
		Seed:         secret,
	}, nil
}

// masterKey computes the SLIP-0010 ed25519 master key and chain code
// from a BIP-39 seed.
func masterKey(seed []byte) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, []byte(slip10Key))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// deriveChild computes the hardened child at index. SLIP-0010 ed25519
// only defines hardened derivation, so the high bit is always set.
func deriveChild(key, chainCode []byte, index uint32) (childKey, childChainCode []byte) {
	index |= 0x80000000

	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

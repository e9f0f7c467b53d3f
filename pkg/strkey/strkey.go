package strkey

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"

	"github.com/sigurn/crc16"
)

// VersionByte selects the strkey flavour. The value is the leading
// byte of the decoded payload and determines the first character of
// the encoded form.
type VersionByte byte

const (
	// VersionAccount is an ed25519 public key ("G...").
	VersionAccount VersionByte = 6 << 3
	// VersionSeed is an ed25519 private seed ("S...").
	VersionSeed VersionByte = 18 << 3
	// VersionContract is a contract instance ID ("C...").
	VersionContract VersionByte = 2 << 3
)

// EncodedLength is the length of a strkey over a 32-byte payload.
const EncodedLength = 56

var (
	encoding = base32.StdEncoding.WithPadding(base32.NoPadding)
	crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)
)

// Encode wraps a 32-byte payload into the strkey form for the given
// version byte: version || payload || CRC16-XMODEM(little-endian),
// base32 without padding.
func Encode(version VersionByte, payload []byte) (string, error) {
	if len(payload) != 32 {
		return "", fmt.Errorf("strkey payload must be 32 bytes, got %d", len(payload))
	}

	raw := make([]byte, 0, 35)
	raw = append(raw, byte(version))
	raw = append(raw, payload...)

	var checksum [2]byte
	binary.LittleEndian.PutUint16(checksum[:], crc16.Checksum(raw, crcTable))
	raw = append(raw, checksum[:]...)

	return encoding.EncodeToString(raw), nil
}

// Decode unwraps a strkey, verifying its length, version byte and
// checksum, and returns the 32-byte payload.
func Decode(version VersionByte, key string) ([]byte, error) {
	if len(key) != EncodedLength {
		return nil, fmt.Errorf("strkey must be %d characters, got %d", EncodedLength, len(key))
	}

	raw, err := encoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("invalid base32: %w", err)
	}
	if len(raw) != 35 {
		return nil, fmt.Errorf("decoded strkey must be 35 bytes, got %d", len(raw))
	}

	if VersionByte(raw[0]) != version {
		return nil, fmt.Errorf("unexpected version byte %#x", raw[0])
	}

	want := binary.LittleEndian.Uint16(raw[33:35])
	if got := crc16.Checksum(raw[:33], crcTable); got != want {
		return nil, fmt.Errorf("checksum mismatch: computed %#x, embedded %#x", got, want)
	}

	payload := make([]byte, 32)
	copy(payload, raw[1:33])
	return payload, nil
}

// IsValid reports whether key is a well-formed strkey of the given
// version.
func IsValid(version VersionByte, key string) bool {
	_, err := Decode(version, key)
	return err == nil
}

// IsValidContractID reports whether id is a well-formed "C..."
// contract identifier.
func IsValidContractID(id string) bool {
	return IsValid(VersionContract, id)
}

// IsValidAccountID reports whether id is a well-formed "G..." account
// identifier.
func IsValidAccountID(id string) bool {
	return IsValid(VersionAccount, id)
}

package types

import (
	"encoding/base64"
	"fmt"
)

// KeySize is the width in bytes of a P-224 scalar or coordinate.
const KeySize = 28

// P224Private is a big-endian P-224 private scalar.
type P224Private [KeySize]byte

// Slice returns the key as a []byte.
func (k P224Private) Slice() []byte { return k[:] }

// AdvertisementKey is the big-endian X coordinate of the public key. Trackers
// broadcast it so nearby relays can tag reports for them.
type AdvertisementKey [KeySize]byte

// Slice returns the key as a []byte.
func (k AdvertisementKey) Slice() []byte { return k[:] }

// Base64 returns the standard base64 form used in firmware and logs.
func (k AdvertisementKey) Base64() string { return base64.StdEncoding.EncodeToString(k[:]) }

// KeyMaterial is the fixed-width key pair used to fetch reports for one tracker.
type KeyMaterial struct {
	Private P224Private
	AdvKey  AdvertisementKey
}

// P224PrivateFromBytes copies b into a P224Private. b must be exactly KeySize bytes.
func P224PrivateFromBytes(b []byte) (P224Private, error) {
	var out P224Private
	if len(b) != KeySize {
		return out, fmt.Errorf("P-224 private: want %d bytes, got %d", KeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// AdvertisementKeyFromBytes copies b into an AdvertisementKey. b must be exactly KeySize bytes.
func AdvertisementKeyFromBytes(b []byte) (AdvertisementKey, error) {
	var out AdvertisementKey
	if len(b) != KeySize {
		return out, fmt.Errorf("advertisement key: want %d bytes, got %d", KeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

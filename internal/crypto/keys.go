package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tagfinder/internal/domain"
)

const pemTypePKCS8 = "PRIVATE KEY"

var (
	errNotPEM       = errors.New("not a PEM file")
	errEncryptedKey = errors.New("encrypted keys are not supported")
	errNotEC        = errors.New("not an EC private key")
	errWrongCurve   = errors.New("key is not on the P-224 curve")
)

// LoadKeyMaterial reads a PKCS8 PEM key from path and returns its fixed-width
// key material. Every failure is a *domain.ConfigError.
func LoadKeyMaterial(path string) (domain.KeyMaterial, error) {
	fail := func(err error) (domain.KeyMaterial, error) {
		return domain.KeyMaterial{}, &domain.ConfigError{Op: "load key", Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(fmt.Errorf("key file not found (run keygen first): %w", err))
		}
		return fail(err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return fail(errNotPEM)
	}
	switch block.Type {
	case pemTypePKCS8:
	case "ENCRYPTED PRIVATE KEY":
		return fail(errEncryptedKey)
	default:
		return fail(fmt.Errorf("unexpected PEM block %q", block.Type))
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return fail(err)
	}
	ec, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return fail(errNotEC)
	}
	km, err := KeyMaterialFromPrivate(ec)
	if err != nil {
		return fail(err)
	}
	return km, nil
}

// KeyMaterialFromPrivate extracts the big-endian private scalar and public X
// coordinate, each left-padded to 28 bytes.
func KeyMaterialFromPrivate(key *ecdsa.PrivateKey) (domain.KeyMaterial, error) {
	if key == nil || key.Curve == nil || key.Curve.Params().Name != elliptic.P224().Params().Name {
		return domain.KeyMaterial{}, errWrongCurve
	}
	if key.D.BitLen() > domain.KeySize*8 || key.X.BitLen() > domain.KeySize*8 {
		return domain.KeyMaterial{}, errWrongCurve
	}

	var km domain.KeyMaterial
	scratch := make([]byte, domain.KeySize)
	defer Wipe(scratch)

	key.D.FillBytes(scratch)
	priv, err := domain.P224PrivateFromBytes(scratch)
	if err != nil {
		return domain.KeyMaterial{}, err
	}
	km.Private = priv

	adv, err := domain.AdvertisementKeyFromBytes(key.X.FillBytes(make([]byte, domain.KeySize)))
	if err != nil {
		return domain.KeyMaterial{}, err
	}
	km.AdvKey = adv
	return km, nil
}

// GenerateKey creates a new P-224 key pair.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ecdsa.GenerateKey(elliptic.P224(), rand.Reader)
}

// EncodePrivateKeyPEM encodes key as unencrypted PKCS8 PEM.
func EncodePrivateKeyPEM(key *ecdsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}
	defer Wipe(der)
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePKCS8, Bytes: der}), nil
}

// WriteKeyFile writes key to path with 0600 permissions. An existing file is
// only replaced when overwrite is set.
func WriteKeyFile(path string, key *ecdsa.PrivateKey, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return &domain.ConfigError{Op: "write key", Path: path, Err: fs.ErrExist}
		}
	}
	data, err := EncodePrivateKeyPEM(key)
	if err != nil {
		return err
	}
	defer Wipe(data)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &domain.ConfigError{Op: "write key", Path: path, Err: err}
	}
	return os.WriteFile(path, data, 0o600)
}

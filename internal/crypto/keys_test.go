package crypto_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tagfinder/internal/crypto"
	"tagfinder/internal/domain"
)

// writeKey generates a fresh P-224 key and stores it as PKCS8 PEM under dir.
func writeKey(t *testing.T, dir string) (string, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	path := filepath.Join(dir, "private_key.pem")
	if err := crypto.WriteKeyFile(path, key, false); err != nil {
		t.Fatalf("WriteKeyFile: %v", err)
	}
	return path, key
}

func TestLoadKeyMaterial_FixedWidthAndStable(t *testing.T) {
	dir := t.TempDir()
	path, key := writeKey(t, dir)

	first, err := crypto.LoadKeyMaterial(path)
	if err != nil {
		t.Fatalf("LoadKeyMaterial: %v", err)
	}
	if len(first.Private.Slice()) != domain.KeySize || len(first.AdvKey.Slice()) != domain.KeySize {
		t.Fatalf("want %d-byte fields", domain.KeySize)
	}

	second, err := crypto.LoadKeyMaterial(path)
	if err != nil {
		t.Fatalf("second LoadKeyMaterial: %v", err)
	}
	if first != second {
		t.Fatal("repeated loads differ")
	}

	wantX := key.X.FillBytes(make([]byte, domain.KeySize))
	if !bytes.Equal(first.AdvKey.Slice(), wantX) {
		t.Fatalf("advertisement key mismatch: got %x want %x", first.AdvKey, wantX)
	}
	wantD := key.D.FillBytes(make([]byte, domain.KeySize))
	if !bytes.Equal(first.Private.Slice(), wantD) {
		t.Fatal("private scalar mismatch")
	}
}

func TestKeygenAndLoaderAgree(t *testing.T) {
	dir := t.TempDir()
	path, key := writeKey(t, dir)

	fromGen, err := crypto.KeyMaterialFromPrivate(key)
	if err != nil {
		t.Fatalf("KeyMaterialFromPrivate: %v", err)
	}
	fromFile, err := crypto.LoadKeyMaterial(path)
	if err != nil {
		t.Fatalf("LoadKeyMaterial: %v", err)
	}
	if fromGen.AdvKey != fromFile.AdvKey {
		t.Fatalf("adv key: keygen %s, loader %s", fromGen.AdvKey.Base64(), fromFile.AdvKey.Base64())
	}
}

func TestLoadKeyMaterial_ConfigErrors(t *testing.T) {
	dir := t.TempDir()

	p256, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("p256 key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(p256)
	if err != nil {
		t.Fatalf("marshal p256: %v", err)
	}
	p256Path := filepath.Join(dir, "p256.pem")
	if err := os.WriteFile(p256Path, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600); err != nil {
		t.Fatalf("write p256: %v", err)
	}

	garbagePath := filepath.Join(dir, "garbage.pem")
	if err := os.WriteFile(garbagePath, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	encPath := filepath.Join(dir, "enc.pem")
	if err := os.WriteFile(encPath, pem.EncodeToMemory(&pem.Block{Type: "ENCRYPTED PRIVATE KEY", Bytes: []byte{1}}), 0o600); err != nil {
		t.Fatalf("write encrypted: %v", err)
	}

	badDERPath := filepath.Join(dir, "bad.pem")
	if err := os.WriteFile(badDERPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}}), 0o600); err != nil {
		t.Fatalf("write bad der: %v", err)
	}

	cases := map[string]string{
		"missing":     filepath.Join(dir, "nope.pem"),
		"wrong curve": p256Path,
		"not pem":     garbagePath,
		"encrypted":   encPath,
		"bad der":     badDERPath,
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := crypto.LoadKeyMaterial(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !domain.IsConfigError(err) {
				t.Fatalf("want ConfigError, got %T %v", err, err)
			}
		})
	}
}

func TestWriteKeyFile_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeKey(t, dir)

	other, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if err := crypto.WriteKeyFile(path, other, false); !domain.IsConfigError(err) {
		t.Fatalf("want ConfigError on overwrite, got %v", err)
	}
	if err := crypto.WriteKeyFile(path, other, true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("want 0600, got %v", info.Mode().Perm())
	}
}

func TestCArray(t *testing.T) {
	key := make([]byte, domain.KeySize)
	key[0] = 0xab
	key[27] = 0x01

	out := crypto.CArray("public_keys", key)
	if !strings.HasPrefix(out, "static uint8_t public_keys[][28] = {\n    {0xab, 0x00,") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.HasSuffix(out, "0x00, 0x01},\n};") {
		t.Fatalf("unexpected tail: %q", out)
	}
	if got := strings.Count(out, "0x"); got != domain.KeySize {
		t.Fatalf("want %d bytes, got %d", domain.KeySize, got)
	}
}

package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tagfinder/internal/domain"
	"tagfinder/internal/store"
)

func sampleSession() domain.Session {
	return domain.Session{
		AccountName: "alice@example.com",
		Tokens:      []byte(`{"dsid":"123","search_party_token":"abc"}`),
		UpdatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSession_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var sessions domain.SessionStore = store.NewSessionFileStore(home)

	want := sampleSession()
	if err := sessions.SaveSession(want); err != nil {
		t.Fatalf("save session: %v", err)
	}
	got, err := sessions.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("mismatch after load: got %+v want %+v", got, want)
	}
}

func TestSession_Missing_IsNoSession(t *testing.T) {
	sessions := store.NewSessionFileStore(t.TempDir())

	_, err := sessions.LoadSession()
	if !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
	if domain.IsConfigError(err) {
		t.Fatal("a missing session must not be a ConfigError")
	}
}

func TestSession_Malformed_IsConfigError(t *testing.T) {
	home := t.TempDir()
	sessions := store.NewSessionFileStore(home)
	if err := os.WriteFile(sessions.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := sessions.LoadSession()
	if !domain.IsConfigError(err) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestSession_RepeatedSaves_LeaveNoTempFiles(t *testing.T) {
	home := t.TempDir()
	sessions := store.NewSessionFileStore(home)

	s := sampleSession()
	for i := 0; i < 5; i++ {
		s = s.WithTokens([]byte{byte(i), 1, 2}, time.Now())
		if err := sessions.SaveSession(s); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(sessions.Path()) {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("want only the session file, got %v", names)
	}
	got, err := sessions.LoadSession()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(s) {
		t.Fatal("last save did not win")
	}
}

func TestSession_Sealed_RoundTrip(t *testing.T) {
	home := t.TempDir()
	sealed := store.NewSessionFileStore(home, store.WithPassphrase("correct horse"))

	want := sampleSession()
	if err := sealed.SaveSession(want); err != nil {
		t.Fatalf("save sealed: %v", err)
	}

	raw, err := os.ReadFile(sealed.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "alice@example.com") {
		t.Fatal("sealed file leaks the account name")
	}

	got, err := sealed.LoadSession()
	if err != nil {
		t.Fatalf("load sealed: %v", err)
	}
	if !got.Equal(want) {
		t.Fatal("mismatch after sealed round trip")
	}
}

func TestSession_Sealed_WrongOrMissingPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	if err := store.NewSessionFileStore(home, store.WithPassphrase("correct")).SaveSession(sampleSession()); err != nil {
		t.Fatalf("save sealed: %v", err)
	}

	if _, err := store.NewSessionFileStore(home, store.WithPassphrase("wrong")).LoadSession(); !domain.IsConfigError(err) {
		t.Fatalf("wrong passphrase: want ConfigError, got %v", err)
	}
	if _, err := store.NewSessionFileStore(home).LoadSession(); !domain.IsConfigError(err) {
		t.Fatalf("no passphrase: want ConfigError, got %v", err)
	}
}

func TestSession_PlainFileReadableWithPassphrase(t *testing.T) {
	home := t.TempDir()
	if err := store.NewSessionFileStore(home).SaveSession(sampleSession()); err != nil {
		t.Fatalf("save plain: %v", err)
	}
	got, err := store.NewSessionFileStore(home, store.WithPassphrase("later")).LoadSession()
	if err != nil {
		t.Fatalf("load plain with passphrase: %v", err)
	}
	if got.AccountName != "alice@example.com" {
		t.Fatalf("account: got %q", got.AccountName)
	}
}

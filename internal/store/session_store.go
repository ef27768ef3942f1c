package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"

	"tagfinder/internal/crypto"
	"tagfinder/internal/domain"
)

const sessionFilename = "session.json"

// SessionFileStore persists the gateway session to disk.
type SessionFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// SessionOption configures a SessionFileStore.
type SessionOption func(*SessionFileStore)

// WithPassphrase seals the session file with passphrase. An empty passphrase
// leaves the file in plain JSON.
func WithPassphrase(passphrase string) SessionOption {
	return func(s *SessionFileStore) { s.passphrase = passphrase }
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string, opts ...SessionOption) *SessionFileStore {
	s := &SessionFileStore{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the session file location.
func (s *SessionFileStore) Path() string { return filepath.Join(s.dir, sessionFilename) }

// SaveSession atomically replaces the session file. It is safe to call after
// every gateway call, including failed ones.
func (s *SessionFileStore) SaveSession(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.passphrase == "" {
		return writeJSON(s.Path(), session, 0o600)
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	n, r, p := scryptParamsDefault()
	blob, err := seal(s.passphrase, raw, n, r, p)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), blob, 0o600)
}

// LoadSession reads the session file. It returns domain.ErrNoSession when the
// file does not exist and a *domain.ConfigError when it cannot be used.
func (s *SessionFileStore) LoadSession() (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path()
	fail := func(err error) (domain.Session, error) {
		return domain.Session{}, &domain.ConfigError{Op: "load session", Path: path, Err: err}
	}

	b, ok, err := readFile(path)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}

	if isSealed(b) {
		if s.passphrase == "" {
			return fail(errors.New("session is sealed; a passphrase is required"))
		}
		pt, err := unseal(s.passphrase, b)
		if err != nil {
			return fail(err)
		}
		defer crypto.Wipe(pt)
		b = pt
	}

	var session domain.Session
	if err := json.Unmarshal(b, &session); err != nil {
		return fail(err)
	}
	if session.IsZero() {
		return fail(errors.New("session carries no tokens"))
	}
	return session, nil
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)

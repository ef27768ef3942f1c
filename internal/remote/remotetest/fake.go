// Package remotetest provides an in-memory gateway for tests and for the
// development gateway binary.
package remotetest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tagfinder/internal/domain"
)

// Tokens issued by Fake.
var (
	PendingTokens  = []byte("pending-session")
	VerifiedTokens = []byte("verified-session")
)

// Fake is a scripted domain.RemoteClient. Set the exported fields before use;
// the recorded fields are safe to read after calls return.
type Fake struct {
	mu sync.Mutex

	Email       string
	Password    string
	AccountName string
	// Methods are offered when non-empty; otherwise login verifies at once.
	Methods []domain.AuthChallenge
	Code    string

	// Report is returned by FetchLocation; nil means no reports yet.
	Report   *domain.LocationReport
	FetchErr error
	// Rotate makes every fetch issue fresh tokens.
	Rotate bool

	Requested []string
	Fetches   int
	rotations int
}

// NewFake returns a fake accepting email/password with no second factor.
func NewFake(email, password string) *Fake {
	return &Fake{Email: email, Password: password, AccountName: email}
}

// Login checks the credentials.
func (f *Fake) Login(_ context.Context, email, password string) (domain.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if email != f.Email || password != f.Password {
		return domain.LoginResult{}, &domain.AuthError{Reason: "credentials rejected"}
	}
	now := time.Now()
	if len(f.Methods) == 0 {
		s := domain.Session{AccountName: f.AccountName}.WithTokens(VerifiedTokens, now)
		return domain.LoginResult{State: domain.LoginVerified, Session: s}, nil
	}
	s := domain.Session{AccountName: f.AccountName}.WithTokens(PendingTokens, now)
	return domain.LoginResult{State: domain.LoginRequires2FA, Session: s}, nil
}

// TwoFactorMethods returns a copy of Methods.
func (f *Fake) TwoFactorMethods(_ context.Context, pending domain.Session) ([]domain.AuthChallenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !bytes.Equal(pending.Tokens, PendingTokens) {
		return nil, &domain.AuthError{Reason: "no pending login"}
	}
	return append([]domain.AuthChallenge(nil), f.Methods...), nil
}

// RequestCode records the method ID.
func (f *Fake) RequestCode(_ context.Context, pending domain.Session, method domain.AuthChallenge) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !bytes.Equal(pending.Tokens, PendingTokens) {
		return &domain.AuthError{Reason: "no pending login"}
	}
	if _, ok := f.method(method.ID); !ok {
		return fmt.Errorf("unknown method %q", method.ID)
	}
	f.Requested = append(f.Requested, method.ID)
	return nil
}

// SubmitCode checks the code against Code.
func (f *Fake) SubmitCode(
	_ context.Context,
	pending domain.Session,
	method domain.AuthChallenge,
	code string,
) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !bytes.Equal(pending.Tokens, PendingTokens) {
		return domain.Session{}, &domain.AuthError{Reason: "no pending login"}
	}
	if _, ok := f.method(method.ID); !ok {
		return domain.Session{}, fmt.Errorf("unknown method %q", method.ID)
	}
	if code != f.Code {
		return domain.Session{}, &domain.AuthError{Reason: "verification code rejected"}
	}
	return domain.Session{AccountName: f.AccountName}.WithTokens(VerifiedTokens, time.Now()), nil
}

// FetchLocation returns Report, FetchErr, or domain.ErrNotFound.
func (f *Fake) FetchLocation(
	_ context.Context,
	session domain.Session,
	_ domain.KeyMaterial,
) (domain.LocationReport, domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Fetches++
	if session.IsZero() {
		return domain.LocationReport{}, session, &domain.AuthError{Reason: "no session"}
	}
	if f.Rotate {
		f.rotations++
		session = session.WithTokens([]byte(fmt.Sprintf("rotated-%d", f.rotations)), time.Now())
	}
	switch {
	case f.FetchErr != nil:
		return domain.LocationReport{}, session, f.FetchErr
	case f.Report == nil:
		return domain.LocationReport{}, session, domain.ErrNotFound
	default:
		return *f.Report, session, nil
	}
}

// SetReport replaces the report returned by later fetches.
func (f *Fake) SetReport(r *domain.LocationReport) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Report = r
}

func (f *Fake) method(id string) (domain.AuthChallenge, bool) {
	for _, m := range f.Methods {
		if m.ID == id {
			return m, true
		}
	}
	return domain.AuthChallenge{}, false
}

// ErrUnavailable is a ready-made transport-style failure for FetchErr.
var ErrUnavailable = errors.New("gateway unavailable")

var _ domain.RemoteClient = (*Fake)(nil)

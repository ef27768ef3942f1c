package auth

import (
	"context"
	"errors"
	"fmt"

	"tagfinder/internal/domain"
	"tagfinder/internal/logging"
)

// State is the position of a Machine in the login flow.
type State int

const (
	Unauthenticated State = iota
	Submitted
	Requires2FA
	Verified
	Failed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Submitted:
		return "submitted"
	case Requires2FA:
		return "requires_2fa"
	case Verified:
		return "verified"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ChallengeResponder supplies the answers a login needs.
type ChallengeResponder interface {
	Credentials(ctx context.Context) (email, password string, err error)
	// ChooseMethod returns an index into methods, which are in gateway order.
	ChooseMethod(ctx context.Context, methods []domain.AuthChallenge) (int, error)
	// Code is called after any required code request has been sent.
	Code(ctx context.Context, method domain.AuthChallenge) (string, error)
}

// Machine is a single login attempt. It is not safe for concurrent use.
type Machine struct {
	client   domain.RemoteClient
	sessions domain.SessionStore

	state     State
	pending   domain.Session
	session   domain.Session
	methods   []domain.AuthChallenge
	selected  int
	requested bool
}

// New returns a Machine in the Unauthenticated state.
func New(client domain.RemoteClient, sessions domain.SessionStore) *Machine {
	return &Machine{client: client, sessions: sessions, selected: -1}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Session returns the verified session, or the zero Session before Verified.
func (m *Machine) Session() domain.Session {
	if m.state != Verified {
		return domain.Session{}
	}
	return m.session
}

// Submit sends credentials. It may be called from any state and discards
// whatever attempt was in progress.
func (m *Machine) Submit(ctx context.Context, email, password string) error {
	m.reset()
	m.state = Submitted
	logging.Debugf("auth: submitting credentials for %s", email)

	res, err := m.client.Login(ctx, email, password)
	if err != nil {
		m.state = Failed
		if domain.IsAuthError(err) {
			return err
		}
		return &domain.AuthError{Reason: "login request failed", Err: err}
	}

	switch res.State {
	case domain.LoginVerified:
		return m.verify(res.Session)
	case domain.LoginRequires2FA:
		methods, err := m.client.TwoFactorMethods(ctx, res.Session)
		if err != nil {
			m.state = Failed
			return &domain.AuthError{Reason: "listing 2FA methods", Err: err}
		}
		if len(methods) == 0 {
			m.state = Failed
			return &domain.AuthError{Reason: "2FA required but no methods offered"}
		}
		m.pending = res.Session
		m.methods = methods
		m.state = Requires2FA
		logging.Debugf("auth: 2FA required, %d method(s) offered", len(methods))
		return nil
	default:
		m.state = Failed
		return &domain.AuthError{Reason: fmt.Sprintf("unexpected login state %d", res.State)}
	}
}

// Methods returns the offered second-factor methods in gateway order.
func (m *Machine) Methods() ([]domain.AuthChallenge, error) {
	if m.state != Requires2FA {
		return nil, m.outOfOrder("list methods")
	}
	return append([]domain.AuthChallenge(nil), m.methods...), nil
}

// Select picks the method at index i. An out-of-range index is an AuthError
// and leaves the machine untouched.
func (m *Machine) Select(i int) error {
	if m.state != Requires2FA {
		return m.outOfOrder("select method")
	}
	if i < 0 || i >= len(m.methods) {
		return &domain.AuthError{Reason: fmt.Sprintf("method index %d out of range [0, %d)", i, len(m.methods))}
	}
	m.selected = i
	m.requested = false
	return nil
}

// RequestCode asks the gateway to deliver a code for the selected method.
// SMS methods need it; trusted devices are prompted without it.
func (m *Machine) RequestCode(ctx context.Context) error {
	method, err := m.current("request code")
	if err != nil {
		return err
	}
	if err := m.client.RequestCode(ctx, m.pending, method); err != nil {
		if domain.IsAuthError(err) {
			return err
		}
		return &domain.AuthError{Reason: "requesting code", Err: err}
	}
	m.requested = true
	logging.Debugf("auth: code requested via %s", method.Kind)
	return nil
}

// SubmitCode answers the selected challenge. Rejection moves to Failed;
// a transport failure leaves the machine in Requires2FA so the code can be
// resent.
func (m *Machine) SubmitCode(ctx context.Context, code string) error {
	method, err := m.current("submit code")
	if err != nil {
		return err
	}
	if method.NeedsRequest() && !m.requested {
		return &domain.AuthError{Reason: "request a code before submitting one for an SMS method"}
	}

	session, err := m.client.SubmitCode(ctx, m.pending, method, code)
	if err != nil {
		var ae *domain.AuthError
		if errors.As(err, &ae) {
			m.state = Failed
			m.methods = nil
			return err
		}
		return &domain.AuthError{Reason: "submitting code", Err: err}
	}
	return m.verify(session)
}

// Login runs the full flow with r supplying answers and returns the
// persisted session.
func (m *Machine) Login(ctx context.Context, r ChallengeResponder) (domain.Session, error) {
	email, password, err := r.Credentials(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	if err := m.Submit(ctx, email, password); err != nil {
		return domain.Session{}, err
	}
	if m.state == Verified {
		return m.session, nil
	}

	methods, err := m.Methods()
	if err != nil {
		return domain.Session{}, err
	}
	i, err := r.ChooseMethod(ctx, methods)
	if err != nil {
		return domain.Session{}, err
	}
	if err := m.Select(i); err != nil {
		return domain.Session{}, err
	}
	method := methods[i]
	if method.NeedsRequest() {
		if err := m.RequestCode(ctx); err != nil {
			return domain.Session{}, err
		}
	}
	code, err := r.Code(ctx, method)
	if err != nil {
		return domain.Session{}, err
	}
	if err := m.SubmitCode(ctx, code); err != nil {
		return domain.Session{}, err
	}
	return m.session, nil
}

// verify enters Verified and persists s. A save failure is returned but the
// machine stays Verified so the caller can retry the save.
func (m *Machine) verify(s domain.Session) error {
	m.session = s
	m.state = Verified
	m.pending = domain.Session{}
	m.methods = nil
	m.selected = -1
	logging.Infof("auth: logged in as %s", s.AccountName)
	return m.sessions.SaveSession(s)
}

func (m *Machine) current(op string) (domain.AuthChallenge, error) {
	if m.state != Requires2FA {
		return domain.AuthChallenge{}, m.outOfOrder(op)
	}
	if m.selected < 0 {
		return domain.AuthChallenge{}, &domain.AuthError{Reason: op + ": no method selected"}
	}
	return m.methods[m.selected], nil
}

func (m *Machine) outOfOrder(op string) error {
	return &domain.AuthError{Reason: fmt.Sprintf("%s: not valid in state %s", op, m.state)}
}

func (m *Machine) reset() {
	m.state = Unauthenticated
	m.pending = domain.Session{}
	m.session = domain.Session{}
	m.methods = nil
	m.selected = -1
	m.requested = false
}

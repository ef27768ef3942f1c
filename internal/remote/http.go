package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tagfinder/internal/crypto"
	"tagfinder/internal/domain"
)

// HTTP is a JSON-over-HTTP gateway client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the gateway at base. A nil client means
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Login submits credentials.
func (c *HTTP) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	var out LoginResponse
	res, err := c.do(ctx, http.MethodPost, PathLogin, nil, LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if res.status == http.StatusUnauthorized {
		return domain.LoginResult{}, &domain.AuthError{Reason: "credentials rejected"}
	}
	if err := res.check(); err != nil {
		return domain.LoginResult{}, err
	}

	session := domain.Session{AccountName: out.AccountName}.WithTokens(out.Session, time.Now())
	switch out.State {
	case StateVerified:
		return domain.LoginResult{State: domain.LoginVerified, Session: session}, nil
	case StateRequires2FA:
		return domain.LoginResult{State: domain.LoginRequires2FA, Session: session}, nil
	default:
		return domain.LoginResult{}, fmt.Errorf("gateway login: unknown state %q", out.State)
	}
}

// TwoFactorMethods lists the second-factor methods in gateway order.
func (c *HTTP) TwoFactorMethods(ctx context.Context, pending domain.Session) ([]domain.AuthChallenge, error) {
	var wire []Method
	res, err := c.do(ctx, http.MethodGet, PathMethods, &pending, nil, &wire)
	if err != nil {
		return nil, err
	}
	if err := res.check(); err != nil {
		return nil, err
	}
	out := make([]domain.AuthChallenge, 0, len(wire))
	for _, m := range wire {
		ch, err := DecodeMethod(m)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

// RequestCode asks the gateway to deliver a code for method.
func (c *HTTP) RequestCode(ctx context.Context, pending domain.Session, method domain.AuthChallenge) error {
	res, err := c.do(ctx, http.MethodPost, RequestCodePath(method.ID), &pending, nil, nil)
	if err != nil {
		return err
	}
	return res.check()
}

// SubmitCode answers the challenge and returns the verified session.
func (c *HTTP) SubmitCode(
	ctx context.Context,
	pending domain.Session,
	method domain.AuthChallenge,
	code string,
) (domain.Session, error) {
	var out LoginResponse
	res, err := c.do(ctx, http.MethodPost, SubmitCodePath(method.ID), &pending, CodeRequest{Code: code}, &out)
	if err != nil {
		return domain.Session{}, err
	}
	if res.status == http.StatusUnauthorized {
		return domain.Session{}, &domain.AuthError{Reason: "verification code rejected"}
	}
	if err := res.check(); err != nil {
		return domain.Session{}, err
	}
	name := out.AccountName
	if name == "" {
		name = pending.AccountName
	}
	return domain.Session{AccountName: name}.WithTokens(out.Session, time.Now()), nil
}

// FetchLocation asks for the latest report for key. The returned session is
// always usable: it is the rotated one when the gateway sent one, and the
// input otherwise.
func (c *HTTP) FetchLocation(
	ctx context.Context,
	session domain.Session,
	key domain.KeyMaterial,
) (domain.LocationReport, domain.Session, error) {
	body := LocationRequest{AdvKey: key.AdvKey.Slice(), PrivateKey: key.Private.Slice()}

	var out LocationResponse
	res, err := c.do(ctx, http.MethodPost, PathLocation, &session, body, &out)
	if res.rotated != nil {
		session = session.WithTokens(res.rotated, time.Now())
	}
	if err != nil {
		return domain.LocationReport{}, session, err
	}
	if res.status == http.StatusNotFound {
		return domain.LocationReport{}, session, domain.ErrNotFound
	}
	if res.status == http.StatusUnauthorized {
		return domain.LocationReport{}, session, &domain.AuthError{Reason: "session expired; log in again"}
	}
	if err := res.check(); err != nil {
		return domain.LocationReport{}, session, err
	}
	return domain.LocationReport{
		Latitude:  out.Latitude,
		Longitude: out.Longitude,
		Timestamp: out.Timestamp,
	}, session, nil
}

// result describes a completed round trip.
type result struct {
	method  string
	path    string
	status  int
	text    string
	rotated []byte
}

// check turns a non-2xx status into an error.
func (r result) check() error {
	if r.status/100 == 2 {
		return nil
	}
	if r.text != "" {
		return fmt.Errorf("gateway %s %s: %d %s: %s", r.method, r.path, r.status, http.StatusText(r.status), r.text)
	}
	return fmt.Errorf("gateway %s %s: %d %s", r.method, r.path, r.status, http.StatusText(r.status))
}

// do performs one request. out is decoded only on 2xx. A non-nil error means
// the round trip itself failed; the status is left to the caller.
func (c *HTTP) do(
	ctx context.Context,
	method, path string,
	session *domain.Session,
	in, out any,
) (result, error) {
	res := result{method: method, path: path}

	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return res, err
		}
		// The location body carries the private scalar.
		defer crypto.Wipe(buf.Bytes())
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return res, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if session != nil && !session.IsZero() {
		req.Header.Set(SessionHeader, base64.StdEncoding.EncodeToString(session.Tokens))
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()

	res.status = resp.StatusCode
	if h := resp.Header.Get(SessionHeader); h != "" {
		if tokens, err := base64.StdEncoding.DecodeString(h); err == nil {
			res.rotated = tokens
		}
	}

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		res.text = strings.TrimSpace(string(msg))
		return res, nil
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return res, fmt.Errorf("gateway %s %s: decoding response: %w", method, path, err)
		}
	}
	return res, nil
}

// Compile-time assertion that HTTP implements domain.RemoteClient.
var _ domain.RemoteClient = (*HTTP)(nil)

package remote

import (
	"fmt"

	"tagfinder/internal/domain"
)

// SessionHeader carries the base64 session token bundle in both directions.
const SessionHeader = "X-Session"

// Gateway API paths.
const (
	PathLogin      = "/v1/auth/login"
	PathMethods    = "/v1/auth/2fa/methods"
	PathLocation   = "/v1/location"
	methodPathBase = "/v1/auth/2fa/"
)

// RequestCodePath is the path that asks the gateway to send a code for method id.
func RequestCodePath(id string) string { return methodPathBase + id + "/request" }

// SubmitCodePath is the path that answers the challenge for method id.
func SubmitCodePath(id string) string { return methodPathBase + id + "/submit" }

// Wire state names.
const (
	StateVerified    = "verified"
	StateRequires2FA = "requires_2fa"
)

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by login and by a successful code submission.
// Session is the token bundle, base64 in JSON.
type LoginResponse struct {
	State       string `json:"state,omitempty"`
	AccountName string `json:"account_name"`
	Session     []byte `json:"session"`
}

// Method is one second-factor method on the wire.
type Method struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Phone string `json:"phone,omitempty"`
}

// CodeRequest is the body of a code submission.
type CodeRequest struct {
	Code string `json:"code"`
}

// LocationRequest is the body of POST /v1/location. Keys are base64 in JSON.
type LocationRequest struct {
	AdvKey     []byte `json:"adv_key"`
	PrivateKey []byte `json:"private_key"`
}

// LocationResponse is a decrypted report.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// EncodeMethod converts a challenge to its wire form.
func EncodeMethod(c domain.AuthChallenge) Method {
	return Method{ID: c.ID, Type: c.Kind.String(), Phone: c.Phone}
}

// DecodeMethod converts a wire method to a challenge.
func DecodeMethod(m Method) (domain.AuthChallenge, error) {
	switch m.Type {
	case domain.MethodTrustedDevice.String():
		return domain.AuthChallenge{ID: m.ID, Kind: domain.MethodTrustedDevice}, nil
	case domain.MethodSMS.String():
		return domain.AuthChallenge{ID: m.ID, Kind: domain.MethodSMS, Phone: m.Phone}, nil
	default:
		return domain.AuthChallenge{}, fmt.Errorf("unknown 2FA method type %q", m.Type)
	}
}

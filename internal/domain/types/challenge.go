package types

// LoginState is returned by the gateway after credentials are submitted.
type LoginState int

const (
	// LoginVerified means no further steps are required.
	LoginVerified LoginState = iota + 1
	// LoginRequires2FA means a second factor must be completed.
	LoginRequires2FA
)

// LoginResult carries the gateway's answer to a credential submission. During
// 2FA, Session holds the pending (not yet verified) tokens.
type LoginResult struct {
	State   LoginState
	Session Session
}

// MethodKind tags the variant of an AuthChallenge.
type MethodKind int

const (
	// MethodTrustedDevice pushes a code to a trusted device.
	MethodTrustedDevice MethodKind = iota + 1
	// MethodSMS texts a code to a phone number.
	MethodSMS
)

// String returns a short lowercase name for k.
func (k MethodKind) String() string {
	switch k {
	case MethodTrustedDevice:
		return "trusted_device"
	case MethodSMS:
		return "sms"
	default:
		return "unknown"
	}
}

// AuthChallenge is one second-factor method offered during login.
// Phone is set only for MethodSMS.
type AuthChallenge struct {
	ID    string
	Kind  MethodKind
	Phone string
}

// NeedsRequest reports whether a code must be requested before one can be submitted.
func (c AuthChallenge) NeedsRequest() bool { return c.Kind == MethodSMS }

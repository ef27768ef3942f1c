package interfaces

import (
	"context"

	domaintypes "tagfinder/internal/domain/types"
)

// RemoteClient is how we talk to the location gateway, all with context. The
// gateway owns device attestation and report decryption.
//
// Every call that takes a session returns the session to use next; the
// gateway may rotate tokens even when the call fails.
type RemoteClient interface {
	Login(ctx context.Context, email, password string) (domaintypes.LoginResult, error)
	TwoFactorMethods(
		ctx context.Context,
		pending domaintypes.Session,
	) ([]domaintypes.AuthChallenge, error)
	RequestCode(
		ctx context.Context,
		pending domaintypes.Session,
		method domaintypes.AuthChallenge,
	) error
	SubmitCode(
		ctx context.Context,
		pending domaintypes.Session,
		method domaintypes.AuthChallenge,
		code string,
	) (domaintypes.Session, error)
	FetchLocation(
		ctx context.Context,
		session domaintypes.Session,
		key domaintypes.KeyMaterial,
	) (domaintypes.LocationReport, domaintypes.Session, error)
}

package interfaces

import (
	"context"

	domaintypes "tagfinder/internal/domain/types"
)

// LocationFetcher performs one location lookup. It returns the session to use
// next; err is non-nil only when local persistence failed.
type LocationFetcher interface {
	Fetch(
		ctx context.Context,
		session domaintypes.Session,
		key domaintypes.KeyMaterial,
	) (domaintypes.FetchOutcome, domaintypes.Session, error)
}

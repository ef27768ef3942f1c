// Package remote provides an HTTP implementation of the domain.RemoteClient
// interface used by tagfinder.
//
// The gateway it talks to owns everything protocol-specific about the
// location network: device attestation, account authentication against the
// upstream service, and decryption of location reports. This package only
// moves JSON and the opaque session token bundle.
//
// Supported operations include:
//   - Submitting account credentials.
//   - Listing, requesting and answering second-factor challenges.
//   - Fetching the latest report for a key pair.
//
// The session travels base64-encoded in the X-Session header. When the
// gateway rotates it, the new bundle comes back in the same response header,
// on success and failure alike. All requests accept a context for
// cancellation and deadlines. Non-2xx statuses are returned as errors with
// the HTTP method, path and status text to aid diagnostics; 401 maps to
// *domain.AuthError and 404 on a location fetch maps to domain.ErrNotFound.
package remote

// Package crypto handles the tracker's P-224 key material.
//
// Contents
//
//   - Loading an unencrypted PKCS8 PEM key and extracting the 28-byte private
//     scalar and advertisement key (LoadKeyMaterial, KeyMaterialFromPrivate)
//   - Generating and writing new keys (GenerateKey, EncodePrivateKeyPEM,
//     WriteKeyFile)
//   - Formatting the advertisement key for firmware and display (CArray, B64)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// The loader and the generator derive the advertisement key the same way
// (left-padded big-endian X coordinate), so firmware built from keygen output
// and the fetch tooling always agree on the identifier.
package crypto

// Package main runs a scripted location gateway for local development and
// manual testing of tagfinder. It speaks the same HTTP contract as the real
// gateway, backed by an in-memory fake.
//
// HTTP API
//
//	POST /v1/auth/login {"email", "password"}
//	    Returns {"state", "account_name", "session"}. state is "verified"
//	    when --2fa is none, "requires_2fa" otherwise. 401 on bad credentials.
//
//	GET /v1/auth/2fa/methods
//	    Returns the offered methods as [{"id", "type", "phone"}].
//
//	POST /v1/auth/2fa/{id}/request
//	    Pretends to send a code. 204.
//
//	POST /v1/auth/2fa/{id}/submit {"code"}
//	    Returns {"account_name", "session"}; 401 when the code differs from --code.
//
//	POST /v1/location {"adv_key", "private_key"}
//	    Returns {"latitude", "longitude", "timestamp"}, or 404 when --found=false.
//
// Behaviour
//
//   - The session travels base64-encoded in the X-Session header.
//   - With --rotate, every location call answers with fresh tokens in
//     X-Session, including failed ones.
//   - All state is held in memory and lost on process exit.
//   - The default listen address is 127.0.0.1:6969.
package main

// Package auth drives gateway login to a verified session.
//
// Machine walks Unauthenticated → Submitted → Verified, Requires2FA or
// Failed, and Requires2FA → Verified or Failed. Failed is terminal until the
// next Submit. The verified session is written to the SessionStore the moment
// it is obtained. Login runs the whole flow against a ChallengeResponder so
// the terminal prompts can be swapped for scripted answers in tests.
package auth

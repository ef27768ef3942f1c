// Package server serves the local tracker dashboard.
//
// Two routes matter: GET / returns the embedded map page, and
// GET /api/location runs one fetch and answers with JSON. The location route
// always answers 200; failures come back as {"error": "..."} so the page can
// render them. Handler state lives in a Deps value rather than package
// globals, and location requests are serialized.
package server

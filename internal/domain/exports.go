package domain

import (
	interfaces "tagfinder/internal/domain/interfaces"
	types "tagfinder/internal/domain/types"
)

// KeySize is the width in bytes of P-224 key material.
const KeySize = types.KeySize

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	P224Private      = types.P224Private
	AdvertisementKey = types.AdvertisementKey
	KeyMaterial      = types.KeyMaterial
	Session          = types.Session
	LoginState       = types.LoginState
	LoginResult      = types.LoginResult
	MethodKind       = types.MethodKind
	AuthChallenge    = types.AuthChallenge
	LocationReport   = types.LocationReport
	OutcomeKind      = types.OutcomeKind
	FetchOutcome     = types.FetchOutcome
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RemoteClient    = interfaces.RemoteClient
	SessionStore    = interfaces.SessionStore
	ReportStore     = interfaces.ReportStore
	HistoryStore    = interfaces.HistoryStore
	LocationFetcher = interfaces.LocationFetcher
)

// Re-exported enum values.
const (
	LoginVerified    = types.LoginVerified
	LoginRequires2FA = types.LoginRequires2FA

	MethodTrustedDevice = types.MethodTrustedDevice
	MethodSMS           = types.MethodSMS

	OutcomeFound            = types.OutcomeFound
	OutcomeNotFound         = types.OutcomeNotFound
	OutcomeTransientFailure = types.OutcomeTransientFailure
)

// Re-exported constructors.
var (
	P224PrivateFromBytes      = types.P224PrivateFromBytes
	AdvertisementKeyFromBytes = types.AdvertisementKeyFromBytes
	Found                     = types.Found
	NotFound                  = types.NotFound
	TransientFailure          = types.TransientFailure
)

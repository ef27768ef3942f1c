package types

import (
	"fmt"
	"strconv"
	"time"
)

// LocationReport is one decrypted position of the tracker. Timestamp is the
// report time as issued by the network; FetchedAt is when we retrieved it.
type LocationReport struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp string    `json:"timestamp"`
	FetchedAt time.Time `json:"fetched_at"`
}

// MapsURL returns a Google Maps link centred on the report.
func (r LocationReport) MapsURL() string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s",
		strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		strconv.FormatFloat(r.Longitude, 'f', -1, 64))
}

// OutcomeKind tags the variant of a FetchOutcome.
type OutcomeKind int

const (
	// OutcomeFound means a report was retrieved.
	OutcomeFound OutcomeKind = iota + 1
	// OutcomeNotFound means the tracker has not been observed yet. Not an error.
	OutcomeNotFound
	// OutcomeTransientFailure means the attempt failed and may be retried later.
	OutcomeTransientFailure
)

// String returns a short lowercase name for k.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeTransientFailure:
		return "transient_failure"
	default:
		return "unknown"
	}
}

// FetchOutcome is the result of a single fetch attempt. Report is set for
// OutcomeFound; Detail and Err are set for OutcomeTransientFailure.
type FetchOutcome struct {
	Kind   OutcomeKind
	Report LocationReport
	Detail string
	Err    error
}

// Found wraps a retrieved report.
func Found(r LocationReport) FetchOutcome {
	return FetchOutcome{Kind: OutcomeFound, Report: r}
}

// NotFound is the outcome for a tracker with no reports yet.
func NotFound() FetchOutcome {
	return FetchOutcome{Kind: OutcomeNotFound}
}

// TransientFailure wraps a failed attempt.
func TransientFailure(detail string, err error) FetchOutcome {
	return FetchOutcome{Kind: OutcomeTransientFailure, Detail: detail, Err: err}
}

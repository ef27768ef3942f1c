package interfaces

import (
	"context"

	domaintypes "tagfinder/internal/domain/types"
)

// SessionStore persists the single authenticated session.
type SessionStore interface {
	SaveSession(session domaintypes.Session) error
	LoadSession() (domaintypes.Session, error)
}

// ReportStore caches the most recent location report.
type ReportStore interface {
	SaveReport(report domaintypes.LocationReport) error
	LoadReport() (domaintypes.LocationReport, bool, error)
}

// HistoryStore keeps every report retrieved so far.
type HistoryStore interface {
	AppendReport(ctx context.Context, report domaintypes.LocationReport) error
	ListReports(ctx context.Context, limit int) ([]domaintypes.LocationReport, error)
}

// Package history keeps every retrieved location report in a local SQLite
// database, so past positions survive after last_location.json is replaced.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tagfinder/internal/domain"
)

// Filename is the default database name under the home directory.
const Filename = "history.db"

// reportModel maps one row of location_reports.
type reportModel struct {
	bun.BaseModel `bun:"table:location_reports"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Latitude      float64   `bun:"latitude,notnull"`
	Longitude     float64   `bun:"longitude,notnull"`
	Timestamp     string    `bun:"timestamp,notnull"`
	FetchedAt     time.Time `bun:"fetched_at,notnull"`
}

// Store is a bun-backed domain.HistoryStore.
type Store struct {
	db *bun.DB
}

// Open opens (creating if needed) the SQLite database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*reportModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history table: %w", err)
	}
	return &Store{db: db}, nil
}

// AppendReport stores report as a new row.
func (s *Store) AppendReport(ctx context.Context, report domain.LocationReport) error {
	row := &reportModel{
		Latitude:  report.Latitude,
		Longitude: report.Longitude,
		Timestamp: report.Timestamp,
		FetchedAt: report.FetchedAt.UTC(),
	}
	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

// ListReports returns up to limit reports, newest first. A limit of zero or
// less returns every report.
func (s *Store) ListReports(ctx context.Context, limit int) ([]domain.LocationReport, error) {
	var rows []reportModel
	q := s.db.NewSelect().Model(&rows).OrderExpr("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.LocationReport, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.LocationReport{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Timestamp: r.Timestamp,
			FetchedAt: r.FetchedAt,
		})
	}
	return out, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Compile-time assertion that Store implements domain.HistoryStore.
var _ domain.HistoryStore = (*Store)(nil)

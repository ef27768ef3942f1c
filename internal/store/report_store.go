package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"tagfinder/internal/domain"
)

const reportFilename = "last_location.json"

// ReportFileStore caches the most recent location report on disk.
type ReportFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewReportFileStore returns a ReportFileStore rooted at dir.
func NewReportFileStore(dir string) *ReportFileStore {
	return &ReportFileStore{dir: dir}
}

// Path returns the report cache location.
func (s *ReportFileStore) Path() string { return filepath.Join(s.dir, reportFilename) }

// SaveReport atomically replaces the cached report.
func (s *ReportFileStore) SaveReport(report domain.LocationReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.Path(), report, 0o600)
}

// LoadReport returns the cached report and whether one was present.
func (s *ReportFileStore) LoadReport() (domain.LocationReport, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok, err := readFile(s.Path())
	if err != nil || !ok {
		return domain.LocationReport{}, false, err
	}
	var report domain.LocationReport
	if err := json.Unmarshal(b, &report); err != nil {
		return domain.LocationReport{}, false, &domain.ConfigError{Op: "load report", Path: s.Path(), Err: err}
	}
	return report, true, nil
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)

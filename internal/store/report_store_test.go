package store_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"tagfinder/internal/domain"
	"tagfinder/internal/store"
)

func TestReport_SaveLoad_OK(t *testing.T) {
	reports := store.NewReportFileStore(t.TempDir())

	if _, ok, err := reports.LoadReport(); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	want := domain.LocationReport{
		Latitude:  37.7749,
		Longitude: -122.4194,
		Timestamp: "2024-01-01T00:00:00Z",
		FetchedAt: time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC),
	}
	if err := reports.SaveReport(want); err != nil {
		t.Fatalf("save report: %v", err)
	}
	got, ok, err := reports.LoadReport()
	if err != nil || !ok {
		t.Fatalf("load report: ok=%v err=%v", ok, err)
	}
	if got.Latitude != want.Latitude || got.Longitude != want.Longitude ||
		got.Timestamp != want.Timestamp || !got.FetchedAt.Equal(want.FetchedAt) {
		t.Fatalf("mismatch: got %+v want %+v", got, want)
	}
}

func TestReport_FileFields(t *testing.T) {
	reports := store.NewReportFileStore(t.TempDir())
	if err := reports.SaveReport(domain.LocationReport{Latitude: 1, Longitude: 2, Timestamp: "t", FetchedAt: time.Now()}); err != nil {
		t.Fatalf("save report: %v", err)
	}
	raw, err := os.ReadFile(reports.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"latitude", "longitude", "timestamp", "fetched_at"} {
		if _, ok := fields[k]; !ok {
			t.Fatalf("missing field %q in %s", k, raw)
		}
	}
	if len(fields) != 4 {
		t.Fatalf("want exactly 4 fields, got %d", len(fields))
	}
}

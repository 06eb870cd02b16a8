package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun() []Record {
	return []Record{
		{Query: "start is clear", Kind: "any", Value: "false", Matched: false, Passed: true},
		{Query: "push into crate", Kind: "all", Value: "[crate]", Matched: true, Passed: true},
		{Query: "wrong guess", Kind: "check", Value: "true", Matched: true, Passed: false},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun("corridor", "c0ffee", sampleRun())
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if runID <= 0 {
		t.Errorf("Expected positive run ID, got %d", runID)
	}

	records, err := store.RunResults(runID)
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	// Saved order is kept
	if records[1].Query != "push into crate" || records[1].Value != "[crate]" {
		t.Errorf("Unexpected second record: %+v", records[1])
	}
	for _, r := range records {
		if r.RunID != runID || r.SceneID != "corridor" {
			t.Errorf("Record not linked to run: %+v", r)
		}
	}
	if records[2].Passed || !records[2].Matched {
		t.Errorf("Booleans not round-tripped: %+v", records[2])
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun("arena", fmt.Sprint(i), sampleRun()[:i%3+1]); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("geometry", "", sampleRun())

	runs, err := store.RecentRuns("arena", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].ID <= runs[1].ID || runs[1].ID <= runs[2].ID {
		t.Errorf("Runs not ordered newest first: %+v", runs)
	}
	// The fifth run saved (i=4) has 2 records, both passing
	if runs[0].Digest != "4" || runs[0].Total != 2 || runs[0].Passed != 2 || runs[0].Failed() != 0 {
		t.Errorf("Unexpected newest run: %+v", runs[0])
	}
	// The fourth run saved (i=3) has 1 record
	if runs[1].Total != 1 {
		t.Errorf("Unexpected second run: %+v", runs[1])
	}

	none, err := store.RecentRuns("missing", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no runs for unknown scene, got %d", len(none))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	total, passed, err := store.Stats("corridor")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if total != 0 || passed != 0 {
		t.Errorf("Expected empty stats, got %d/%d", passed, total)
	}

	store.SaveRun("corridor", "", sampleRun())
	if _, err := store.SaveResult(Record{SceneID: "corridor", Query: "probe", Kind: "point", Value: "true", Matched: true, Passed: true}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	total, passed, err = store.Stats("corridor")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if total != 4 || passed != 3 {
		t.Errorf("Expected 3/4 passed, got %d/%d", passed, total)
	}

	all, err := store.AllSceneStats()
	if err != nil {
		t.Fatalf("AllSceneStats() failed: %v", err)
	}
	st, ok := all["corridor"]
	if !ok {
		t.Fatal("Expected stats for corridor")
	}
	// Single results are not part of a run
	if st.Runs != 1 || st.Queries != 3 || st.Passed != 2 {
		t.Errorf("Unexpected run stats: %+v", st)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("corridor", "", sampleRun())
	store.SaveRun("arena", "", sampleRun())

	if err := store.ClearRuns("corridor"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("corridor", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 corridor runs after clear, got %d", len(runs))
	}
	if total, _, _ := store.Stats("corridor"); total != 0 {
		t.Errorf("Expected 0 corridor results after clear, got %d", total)
	}

	runs, _ = store.RecentRuns("arena", 10)
	if len(runs) != 1 {
		t.Errorf("Arena runs should not be affected by clearing corridor")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestRunEntryShortDigest(t *testing.T) {
	tests := []struct {
		digest string
		want   string
	}{
		{"", "-"},
		{"abc", "abc"},
		{"0123456789abcdef", "01234567"},
	}

	for _, tt := range tests {
		if got := (RunEntry{Digest: tt.digest}).ShortDigest(); got != tt.want {
			t.Errorf("ShortDigest(%q) = %q, expected %q", tt.digest, got, tt.want)
		}
	}
}

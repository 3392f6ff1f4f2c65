package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/knight-run/internal/core"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestPrefsBufferedUntilFlush(t *testing.T) {
	store := openTestStore(t)

	p, err := store.Prefs("alice")
	if err != nil {
		t.Fatalf("Prefs() failed: %v", err)
	}
	if p.GetInt("coinCount", 7) != 7 || p.Contains("coinCount") {
		t.Fatal("empty profile should return defaults")
	}

	p.PutInt("coinCount", 120)
	p.PutInt("xp", 45)
	if p.GetInt("coinCount", 0) != 120 {
		t.Error("buffered value should be readable")
	}
	if p.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", p.Pending())
	}

	unflushed, err := store.Prefs("alice")
	if err != nil {
		t.Fatal(err)
	}
	if unflushed.Contains("coinCount") {
		t.Error("value reached the database before Flush")
	}

	if err := p.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if p.Pending() != 0 {
		t.Error("Flush should empty the buffer")
	}

	reopened, err := store.Prefs("alice")
	if err != nil {
		t.Fatal(err)
	}
	if reopened.GetInt("coinCount", 0) != 120 || reopened.GetInt("xp", 0) != 45 {
		t.Error("flushed values should survive a reopen")
	}
}

func TestPrefsOverwrite(t *testing.T) {
	store := openTestStore(t)
	p, _ := store.Prefs("bob")

	for _, v := range []int{1, 2, 3} {
		p.PutInt("upgrade_level_Jump Count", v)
		if err := p.Flush(); err != nil {
			t.Fatalf("Flush() failed: %v", err)
		}
	}

	reopened, _ := store.Prefs("bob")
	if got := reopened.GetInt("upgrade_level_Jump Count", 0); got != 3 {
		t.Errorf("level = %d, want 3", got)
	}
}

func TestPrefsProfilesAreIsolated(t *testing.T) {
	store := openTestStore(t)

	a, _ := store.Prefs("alice")
	b, _ := store.Prefs("bob")
	a.PutInt("coinCount", 10)
	b.PutInt("coinCount", 20)
	a.Flush()
	b.Flush()

	a2, _ := store.Prefs("alice")
	b2, _ := store.Prefs("bob")
	if a2.GetInt("coinCount", 0) != 10 || b2.GetInt("coinCount", 0) != 20 {
		t.Error("profiles should not share values")
	}

	def, _ := store.Prefs("")
	if def.Profile() != DefaultProfile {
		t.Errorf("empty profile = %q, want %q", def.Profile(), DefaultProfile)
	}
}

func TestRunsTopAndBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestDistance("alice")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for no runs, got %d", best)
	}

	for _, d := range []int{1200, 300, 5400, 800} {
		if _, err := store.SaveRun("alice", core.RunRecord{Distance: d, Coins: d / 100, DurationMs: 1000}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("bob", core.RunRecord{Distance: 9000})

	runs, err := store.TopRuns("alice", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Distance != 5400 || runs[1].Distance != 1200 || runs[2].Distance != 800 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Coins != 54 || runs[0].Profile != "alice" {
		t.Errorf("unexpected entry %+v", runs[0])
	}

	best, _ = store.BestDistance("alice")
	if best != 5400 {
		t.Errorf("BestDistance = %d, want 5400", best)
	}

	recent, _ := store.RecentRuns("alice", 2)
	if len(recent) != 2 || recent[0].Distance != 800 {
		t.Errorf("RecentRuns = %v, want newest first", recent)
	}
}

func TestRunStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetRunStats("nobody")
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty profile: %+v", empty)
	}

	store.SaveRun("alice", core.RunRecord{Distance: 100, Coins: 5})
	store.SaveRun("alice", core.RunRecord{Distance: 300, Coins: 7})

	st, err := store.GetRunStats("alice")
	if err != nil {
		t.Fatal(err)
	}
	if st.Runs != 2 || st.Best != 300 || st.AvgDistance != 200 || st.TotalCoins != 12 {
		t.Errorf("stats = %+v", st)
	}
}

func TestRecorderAndClearProfile(t *testing.T) {
	store := openTestStore(t)

	rec := store.Recorder("alice")
	if err := rec.RecordRun(core.RunRecord{Distance: 500}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	p, _ := store.Prefs("alice")
	p.PutInt("coinCount", 99)
	p.Flush()
	store.SaveRun("bob", core.RunRecord{Distance: 10})

	profiles, err := store.Profiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 2 || profiles[0] != "alice" || profiles[1] != "bob" {
		t.Errorf("Profiles = %v", profiles)
	}

	if err := store.ClearProfile("alice"); err != nil {
		t.Fatalf("ClearProfile() failed: %v", err)
	}
	if runs, _ := store.TopRuns("alice", 10); len(runs) != 0 {
		t.Error("alice runs should be gone")
	}
	if p2, _ := store.Prefs("alice"); p2.Contains("coinCount") {
		t.Error("alice prefs should be gone")
	}
	if runs, _ := store.TopRuns("bob", 10); len(runs) != 1 {
		t.Error("bob should not be affected")
	}
}

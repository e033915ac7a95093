package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newJSONManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "petboard.json")
	if err := os.WriteFile(storePath, []byte(`{"petName":"Pimpa"}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(storePath), storePath
}

func seedBackup(t *testing.T, m *Manager, stamp string) string {
	t.Helper()
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(m.BackupDir(), BackupFilePrefix+stamp+".json")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestManager_CreateSnapshotsJSONFile(t *testing.T) {
	m, storePath := newJSONManager(t)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := os.ReadFile(storePath)
	if string(got) != string(want) {
		t.Errorf("snapshot content = %q, want %q", got, want)
	}

	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected snapshot name %q", name)
	}
}

func TestManager_CreateFailsWithoutStoreFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.Create(); err == nil {
		t.Error("expected error for missing storage file")
	}
}

func TestManager_ListReturnsNewestFirst(t *testing.T) {
	m, _ := newJSONManager(t)
	seedBackup(t, m, "20260110-0900")
	seedBackup(t, m, "20260301-1830")
	seedBackup(t, m, "20260215-120000")

	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups out of order at %d: %v before %v", i, backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}
	if filepath.Base(backups[0].Path) != BackupFilePrefix+"20260301-1830.json" {
		t.Errorf("newest backup is %s", backups[0].Path)
	}
}

func TestManager_ListIgnoresForeignFiles(t *testing.T) {
	m, _ := newJSONManager(t)
	seedBackup(t, m, "20260110-0900")
	for _, name := range []string{"notes.txt", BackupFilePrefix + "20260111-0900.db", BackupFilePrefix + "garbage.json"} {
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestManager_ListWithoutBackupDirIsEmpty(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "petboard.json"))
	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestManager_CreateRotatesOldBackups(t *testing.T) {
	m, _ := newJSONManager(t)
	oldest := seedBackup(t, m, "20250101-0800")
	for i := 0; i < MaxBackups; i++ {
		seedBackup(t, m, fmt.Sprintf("20250102-%02d00", i))
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	if _, err := os.Stat(oldest); !os.IsNotExist(err) {
		t.Error("oldest backup should have been rotated out")
	}
}

func TestManager_RestoreReplacesStoreFile(t *testing.T) {
	m, storePath := newJSONManager(t)
	backupPath, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(storePath, []byte(`{"petName":"Rex"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	got, _ := os.ReadFile(storePath)
	if !strings.Contains(string(got), "Pimpa") {
		t.Errorf("restored content = %s", got)
	}

	// The pre-restore state must survive as a safety snapshot.
	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, b := range backups {
		data, _ := os.ReadFile(b.Path)
		if strings.Contains(string(data), "Rex") {
			found = true
		}
	}
	if !found {
		t.Error("expected a safety snapshot of the pre-restore file")
	}
}

func TestManager_RestoreFailsForMissingBackup(t *testing.T) {
	m, _ := newJSONManager(t)
	if err := m.Restore(filepath.Join(m.BackupDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

package admins

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with missing file returned error: %v", err)
	}
	if r.Size() != 0 {
		t.Errorf("Expected empty registry, got %d records", r.Size())
	}
}

func TestSetAdminAndIsAuthorized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")
	r := New(path)

	if err := r.SetAdmin("guild1", "user1", "Test Server"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}

	if !r.IsAuthorized("guild1", "user1") {
		t.Error("Expected user1 to be authorized in guild1")
	}
	if r.IsAuthorized("guild1", "user2") {
		t.Error("Expected user2 to not be authorized in guild1")
	}
	if r.IsAuthorized("guild2", "user1") {
		t.Error("Expected no authorization in a guild with no record")
	}
}

func TestSetAdminOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")
	r := New(path)

	if err := r.SetAdmin("guild1", "user1", "Test Server"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}
	if err := r.SetAdmin("guild1", "user2", "Test Server"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}

	if r.IsAuthorized("guild1", "user1") {
		t.Error("Expected previous admin to lose authorization")
	}
	if !r.IsAuthorized("guild1", "user2") {
		t.Error("Expected new admin to be authorized")
	}
	if r.Size() != 1 {
		t.Errorf("Expected 1 record after overwrite, got %d", r.Size())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")
	r := New(path)

	if err := r.SetAdmin("guild1", "user1", "Server One"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}
	if err := r.SetAdmin("guild2", "user2", "Server Two"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if loaded.Size() != 2 {
		t.Fatalf("Expected 2 records after reload, got %d", loaded.Size())
	}
	if !loaded.IsAuthorized("guild1", "user1") {
		t.Error("Expected user1 authorized in guild1 after reload")
	}

	record, ok := loaded.Admin("guild2")
	if !ok {
		t.Fatal("Expected a record for guild2 after reload")
	}
	if record.Admin != "user2" || record.ServerName != "Server Two" {
		t.Errorf("Unexpected record for guild2: %+v", record)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error loading a corrupt file")
	}
	if !errors.Is(err, ErrStorageCorrupt) {
		t.Errorf("Expected ErrStorageCorrupt, got: %v", err)
	}

	// The corrupt file must be left in place for inspection
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("Failed to re-read file: %v", readErr)
	}
	if string(data) != "{not json" {
		t.Error("Corrupt file was modified on failed load")
	}
}

func TestSaveFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")
	r := New(path)

	if err := r.SetAdmin("guild1", "user1", "Test Server"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() returned error: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Errorf("file mode = %o, want 644", got)
	}

	// A second save must not tighten the mode either
	if err := r.SetAdmin("guild2", "user2", "Other Server"); err != nil {
		t.Fatalf("SetAdmin() returned error: %v", err)
	}
	info, err = os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() returned error: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Errorf("file mode after rewrite = %o, want 644", got)
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")
	content := `{"guild1": {"admin": "user1", "server_name": "Test", "extra_field": 42}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !r.IsAuthorized("guild1", "user1") {
		t.Error("Expected user1 authorized despite unknown keys in record")
	}
}

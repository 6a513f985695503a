// Package admins provides the file-backed per-guild admin registry.
// Each guild has at most one designated admin; assignments overwrite and
// are flushed to disk immediately.
package admins

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/world-compute/LinuxBotGo/pkg/logger"
	"github.com/world-compute/LinuxBotGo/pkg/models"
)

// ErrStorageCorrupt is returned by Load when the admin file exists but
// cannot be parsed. The file on disk is left untouched so an operator
// can inspect it; it is never silently overwritten with an empty map.
var ErrStorageCorrupt = errors.New("admin storage corrupt")

// Registry holds the guild -> admin mapping and the path of the file
// that backs it.
type Registry struct {
	path    string
	mu      sync.RWMutex
	records map[string]models.AdminRecord
}

// New creates an empty registry backed by the given file path.
func New(path string) *Registry {
	return &Registry{
		path:    path,
		records: make(map[string]models.AdminRecord),
	}
}

// Load reads the admin file from disk. A missing file is not an error
// and leaves the registry empty. Unknown keys inside a record are
// ignored without error.
func Load(path string) (*Registry, error) {
	r := New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info(fmt.Sprintf("Admin file %s not found, starting with an empty registry", path), "Admins")
			return r, nil
		}
		return nil, fmt.Errorf("reading admin file %s: %w", path, err)
	}

	records := make(map[string]models.AdminRecord)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStorageCorrupt, path, err)
	}

	r.records = records
	logger.Info(fmt.Sprintf("Loaded %d admin record(s) from %s", len(records), path), "Admins")
	return r, nil
}

// SetAdmin inserts or overwrites the admin for a guild and persists the
// whole registry. The owner-only restriction is enforced at the command
// layer, not here.
func (r *Registry) SetAdmin(guildID, userID, guildName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[guildID] = models.AdminRecord{
		Admin:      userID,
		ServerName: guildName,
	}

	return r.save()
}

// IsAuthorized reports whether userID is the designated admin of the
// guild. A guild with no record yields false, never an error.
func (r *Registry) IsAuthorized(guildID, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[guildID]
	if !ok {
		return false
	}
	return record.Admin == userID
}

// Admin returns the admin record for a guild, if one exists.
func (r *Registry) Admin(guildID string) (models.AdminRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[guildID]
	return record, ok
}

// Size returns the number of guilds with an assigned admin.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Save persists the full registry to disk.
func (r *Registry) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save()
}

// save writes the registry to a temp file in the same directory and
// renames it over the target, so a failed write never destroys the
// previous valid state. Callers must hold the write lock, which also
// serializes writes to the file.
func (r *Registry) save() error {
	data, err := json.MarshalIndent(r.records, "", "    ")
	if err != nil {
		return fmt.Errorf("serializing admin registry: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp admin file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp admin file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp admin file: %w", err)
	}

	// CreateTemp defaults to 0600; the registry stays world-readable
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("setting admin file mode: %w", err)
	}

	if err = os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing admin file: %w", err)
	}

	return nil
}

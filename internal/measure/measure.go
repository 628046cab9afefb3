// Package measure persists a small cache of the host's memory
// envelope from which a caller can pick kdf_m as a percentage of
// usable memory without re-probing the operating system every time.
// internal/kdf.Calibrate does not read it. It follows the teacher's
// internal/cache.FileStorage save/load/corrupt-recovery shape: a
// missing or unreadable file is never fatal, it just yields a
// zero-value Measurement.
package measure

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sbk-go/sbk/internal/fileutil"
)

const (
	fileName = "sys_info_measurements.json"
	filePerm = 0o640
	dirPerm  = 0o750
)

// ErrCorrupt indicates the measurement file is malformed JSON.
var ErrCorrupt = errors.New("measure: cache file is corrupted")

// Measurement is the persisted memory envelope, in megabytes.
type Measurement struct {
	TotalMB  int `json:"total_mb"`
	UsableMB int `json:"usable_mb"`
}

// Store reads and writes a Measurement at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store rooted at dir/sys_info_measurements.json.
// Callers typically pass $XDG_CONFIG_HOME/sbk as dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Path returns the measurement file's path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted Measurement, or a zero-value Measurement
// if the file is absent or corrupt. A corrupt file is moved aside
// rather than overwritten, mirroring FileStorage.Load's behavior.
func (s *Store) Load() (Measurement, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return Measurement{}, nil
	}

	data, err := os.ReadFile(s.path) // #nosec G304 -- path is built from a configured directory, not request input
	if err != nil {
		return Measurement{}, nil
	}

	var m Measurement
	if err := json.Unmarshal(data, &m); err != nil {
		corruptPath := fmt.Sprintf("%s.corrupt.%d", s.path, time.Now().UTC().UnixNano())
		_ = os.Rename(s.path, corruptPath)
		return Measurement{}, nil
	}

	return m, nil
}

// Save writes m to the filesystem atomically via fileutil.WriteAtomic,
// so a crash mid-write never leaves a half-written measurement file
// behind. Writing is best-effort — spec.md §6 states persistence
// failures are non-fatal — but the error is still returned so callers
// may log it.
func (s *Store) Save(m Measurement) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating measurement directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling measurement: %w", err)
	}

	return fileutil.WriteAtomic(s.path, data, filePerm)
}

// PercentOfUsable returns pct% of the stored usable memory, in
// megabytes, clamped to at least 1. A zero-value Measurement (never
// persisted, or persistence disabled) yields 0, letting callers fall
// back to a fixed default instead.
func (m Measurement) PercentOfUsable(pct int) int {
	if m.UsableMB <= 0 || pct <= 0 {
		return 0
	}
	mb := m.UsableMB * pct / 100
	if mb < 1 {
		mb = 1
	}
	return mb
}

package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DirName is the per-project directory holding the audit log. Runs
// against trees without it are simply not recorded.
const DirName = ".logshift"

// Entry represents a single recorded run.
type Entry struct {
	RunID     string `json:"run_id"` // UUID identifying this invocation.
	Timestamp string `json:"ts"`     // RFC3339 with microseconds.
	Operation string `json:"op"`     // Operation name (currently only rewrite).

	Extension     string   `json:"extension,omitempty"`      // Target extension used.
	FilesFound    int      `json:"files_found"`              // Matching files discovered.
	FilesModified int      `json:"files_modified"`           // Files actually rewritten.
	Modified      []string `json:"modified_files,omitempty"` // Paths of rewritten files.
}

// NewEntry creates an entry for the given operation with a fresh run ID.
func NewEntry(op string) Entry {
	return Entry{
		RunID:     uuid.NewString(),
		Operation: op,
	}
}

// Log appends an entry to the audit log under the given root.
// Logging is best-effort: a run must never fail because its audit
// record could not be written.
func Log(root string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	auditDir := filepath.Join(root, DirName)
	if info, err := os.Stat(auditDir); err != nil || !info.IsDir() {
		// No .logshift directory, skip recording.
		return
	}

	// #nosec G306 -- the audit log is shared project history.
	f, err := os.OpenFile(LogPath(root), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path of the audit log file under the given root.
func LogPath(root string) string {
	return filepath.Join(root, DirName, "audit.jsonl")
}

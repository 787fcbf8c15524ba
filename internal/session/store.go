// internal/session/store.go
//
// The snapshot is the sole unit of persistence: the full session state is
// rewritten after every user action. Writes go through a temp file and an
// atomic rename so a crash mid-write can never leave a truncated snapshot.

package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/askelund/tjanseauktion/internal/auction"
	"github.com/askelund/tjanseauktion/internal/msglog"
	"github.com/askelund/tjanseauktion/internal/team"
)

// ErrSnapshotNotFound is returned when no usable snapshot exists for the
// store's run date.
var ErrSnapshotNotFound = errors.New("session: snapshot not found")

// Snapshot is the persisted wire shape. Auctions holds the pending queue
// with the current auction excluded; Completed is most-recent-last.
type Snapshot struct {
	Teams     []*team.Team       `json:"teams"`
	Auctions  []*auction.Auction `json:"auctions"`
	Completed []*auction.Auction `json:"completed_auctions"`
	Current   *auction.Auction   `json:"cur_auction"`
}

// StoreConfig fixes the store's directory and run date at construction.
// There is deliberately no package-level state; two stores with different
// dates can coexist (the export command reads old snapshots this way).
type StoreConfig struct {
	Dir  string
	Date time.Time
}

// Store reads and writes the snapshot file state-log-<date>.json.
type Store struct {
	path string
}

// NewStore creates a store for the configured directory and date, creating
// the directory if needed.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: ensure state dir: %w", err)
	}
	name := fmt.Sprintf("state-log-%s.json", cfg.Date.Format(msglog.DateFormat))
	return &Store{path: filepath.Join(cfg.Dir, name)}, nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string {
	return s.path
}

// Save rewrites the snapshot in full. Nil slices are normalized to empty
// ones first so the wire document always carries all four keys with array
// values.
func (s *Store) Save(snap Snapshot) error {
	if snap.Teams == nil {
		snap.Teams = []*team.Team{}
	}
	if snap.Auctions == nil {
		snap.Auctions = []*auction.Auction{}
	}
	if snap.Completed == nil {
		snap.Completed = []*auction.Auction{}
	}

	encoded, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("session: write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot. Bidder teams inside auctions come back as
// detached copies; Restore resolves them against the roster.
func (s *Store) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, ErrSnapshotNotFound
		}
		return Snapshot{}, fmt.Errorf("session: read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("session: parse snapshot %s: %w", s.path, err)
	}
	return snap, nil
}

// Present reports whether a usable snapshot exists: teams, auctions and
// cur_auction all non-empty/non-null, and the completed_auctions key present
// (an empty completed list is legitimate).
func (s *Store) Present() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return false
	}
	if _, ok := raw["completed_auctions"]; !ok {
		return false
	}
	for _, key := range []string{"teams", "auctions"} {
		var list []json.RawMessage
		if err := json.Unmarshal(raw[key], &list); err != nil || len(list) == 0 {
			return false
		}
	}
	cur := bytes.TrimSpace(raw["cur_auction"])
	if len(cur) == 0 || bytes.Equal(cur, []byte("null")) || bytes.Equal(cur, []byte("{}")) {
		return false
	}
	return true
}

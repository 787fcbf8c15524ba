// internal/chore/chore.go
//
// Chores are the things being auctioned off. They are loaded once from the
// catalog file at startup and never change afterwards.

package chore

import (
	"encoding/json"
	"fmt"
	"os"
)

// Chore describes a single household task up for auction. Chores are plain
// values: two chores are the same chore when all three fields match.
type Chore struct {
	Desc string `json:"desc"`
	Day  string `json:"day"`
	Time string `json:"time"`
}

// New constructs a chore value.
func New(desc, day, time string) Chore {
	return Chore{Desc: desc, Day: day, Time: time}
}

// String renders the chore the way it appears in the auction header.
func (c Chore) String() string {
	return fmt.Sprintf("%s - %s at %s", c.Desc, c.Day, c.Time)
}

// LoadCatalog reads the chore catalog from path. The catalog is a JSON array
// of {desc, day, time} records. A missing or malformed catalog is fatal for
// the caller; there is nothing to auction without it.
func LoadCatalog(path string) ([]Chore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chore: read catalog: %w", err)
	}
	var chores []Chore
	if err := json.Unmarshal(data, &chores); err != nil {
		return nil, fmt.Errorf("chore: parse catalog %s: %w", path, err)
	}
	return chores, nil
}

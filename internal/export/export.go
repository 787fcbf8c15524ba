// internal/export/export.go
//
// Once the last auction closes, the night's result is written as a markdown
// document: one section per team listing the chores it won. The same writer
// backs the `export` subcommand for re-generating the document from an old
// snapshot.

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/askelund/tjanseauktion/internal/msglog"
	"github.com/askelund/tjanseauktion/internal/team"
)

// Writer renders team results to tjanseauktion-<date>.md in Dir.
type Writer struct {
	Dir  string
	Date time.Time
}

// Write renders the results document and returns its path.
func (w Writer) Write(teams []*team.Team) (string, error) {
	name := fmt.Sprintf("tjanseauktion-%s.md", w.Date.Format(msglog.DateFormat))
	path := filepath.Join(w.Dir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "# Tjanseauktion %d\n\n", w.Date.Year())
	for _, t := range teams {
		fmt.Fprintf(&b, "## Team %d\n\n", t.ID)
		for _, c := range t.Chores {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("export: write results: %w", err)
	}
	return path, nil
}

// internal/msglog/msglog.go
//
// The message log is the human-readable record of the auction night: one
// line per notification, appended as it happens. It is diagnostic only; the
// session snapshot is the source of truth.

package msglog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/askelund/tjanseauktion/internal/message"
)

// DateFormat stamps log file names with the run date, "30-08-2026".
const DateFormat = "02-01-2006"

// Log appends notifications to message-log-<date>.txt in the log directory.
// One log file per run date, shared by every session started that day.
type Log struct {
	path string
	mu   sync.Mutex
}

// New creates (or reuses) the message log for the given run date.
func New(dir string, date time.Time) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("msglog: ensure log dir: %w", err)
	}
	name := fmt.Sprintf("message-log-%s.txt", date.Format(DateFormat))
	return &Log{path: filepath.Join(dir, name)}, nil
}

// Path returns the file backing this log.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes one newline-terminated notification line. Failures are
// swallowed; a lost log line must never abort the session.
func (l *Log) Append(msg message.Message) {
	if l == nil || msg.IsZero() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(msg.Text + "\n")
}

// Tail returns up to maxLines of the most recent log lines, oldest first.
// Used by the UI's output log panel.
func (l *Log) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}

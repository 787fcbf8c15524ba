// internal/message/message.go
//
// Every user action produces exactly one notification: a short line shown
// in the UI, appended to the message log, and then forgotten. The level only
// drives styling.

package message

import "fmt"

// Level classifies a message for display purposes.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Message is a single user-facing notification.
type Message struct {
	Text  string
	Level Level
}

// Successf formats a success notification.
func Successf(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...), Level: LevelSuccess}
}

// Errorf formats an error notification. The "Error: " prefix is part of the
// message contract; the log and the UI show the text verbatim.
func Errorf(format string, args ...any) Message {
	return Message{Text: "Error: " + fmt.Sprintf(format, args...), Level: LevelError}
}

// FromError wraps a domain error into an error notification.
func FromError(err error) Message {
	return Message{Text: "Error: " + err.Error(), Level: LevelError}
}

// IsZero reports whether the message carries no text, i.e. the action was a
// no-op turn (such as a cancelled edit).
func (m Message) IsZero() bool {
	return m.Text == ""
}

package session

import (
	"errors"
	"fmt"
)

// Errors for action preconditions the session checks before touching the
// auction or team state. All are user-recoverable: they surface as a red
// notification and the turn is discarded.
var (
	ErrNoCompletedAuctions = errors.New("no auctions have been completed")
	ErrFreebieNotReady     = errors.New("more than 1 team still needs chores - freebie can't be used yet")
	ErrNoCurrentAuction    = errors.New("no auction in progress")
)

// UnknownTeamError rejects a team id outside the configured range.
type UnknownTeamError struct {
	TeamID int
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("team%d does not exist", e.TeamID)
}

// InstantWinUsedError rejects an instant-win claim from a team that already
// spent its right.
type InstantWinUsedError struct {
	TeamID int
}

func (e *InstantWinUsedError) Error() string {
	return fmt.Sprintf("team%d has already used their instant win", e.TeamID)
}

// MalformedInputError rejects input that matches no recognized shape.
type MalformedInputError struct {
	Input string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("input not valid (%s). Check command menu for syntax.", e.Input)
}

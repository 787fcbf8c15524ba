// internal/team/team.go
//
// Teams own the money. One Team per configured seat, created at session
// start or restored from the snapshot, never destroyed mid-session. A team's
// balance can never go negative: every debit goes through CanAfford first.

package team

import (
	"fmt"

	"github.com/askelund/tjanseauktion/internal/chore"
)

// StartCoins is every team's opening balance.
const StartCoins = 5000

// Team is one bidding party. The JSON field names are the snapshot wire
// format and must not change.
type Team struct {
	Coins      int           `json:"coins"`
	Chores     []chore.Chore `json:"chores"`
	ID         int           `json:"id"`
	HasFreeWin bool          `json:"has_free_win"`
}

// New creates a team with the opening balance and an unused instant win.
func New(id int) *Team {
	return &Team{
		Coins:      StartCoins,
		Chores:     []chore.Chore{},
		ID:         id,
		HasFreeWin: true,
	}
}

// String is the team's display name, "team0".
func (t *Team) String() string {
	return fmt.Sprintf("team%d", t.ID)
}

// Equal compares teams by id only; balances and chore lists are live state,
// not identity.
func (t *Team) Equal(other *Team) bool {
	if other == nil {
		return false
	}
	return t.ID == other.ID
}

// CanAfford reports whether the team can pay price without going negative.
func (t *Team) CanAfford(price int) bool {
	return t.Coins >= price
}

// Buy debits price and records the chore as won. An unaffordable purchase
// mutates nothing and returns false.
func (t *Team) Buy(c chore.Chore, price int) bool {
	if !t.CanAfford(price) {
		return false
	}
	t.Coins -= price
	t.AddChore(c)
	return true
}

// InstantWin records the chore as won at no cost and burns the team's
// one-time instant-win right. The caller is responsible for checking
// HasFreeWin first; InstantWin itself does not.
func (t *Team) InstantWin(c chore.Chore) {
	t.HasFreeWin = false
	t.AddChore(c)
}

// AddChore appends a won chore.
func (t *Team) AddChore(c chore.Chore) {
	t.Chores = append(t.Chores, c)
}

package auction

import (
	"errors"
	"fmt"
)

// ErrNoBids is returned when completing an auction nobody has bid on.
var ErrNoBids = errors.New("no bids have been made on auction")

// BidTooLowError rejects a bid that does not clear the current bid (plus the
// configured minimum overbid, when one is set).
type BidTooLowError struct {
	Bid        int
	CurrentBid int
	BidStr     string
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid is too low (%d / %d) (%s)", e.Bid, e.CurrentBid, e.BidStr)
}

// DuplicateBidderError rejects a bid from the team already in the lead.
type DuplicateBidderError struct {
	TeamID int
}

func (e *DuplicateBidderError) Error() string {
	return fmt.Sprintf("bidder already has the lead (team%d)", e.TeamID)
}

// InsufficientFundsError rejects a bid the team cannot pay.
type InsufficientFundsError struct {
	Coins  int
	Bid    int
	BidStr string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("bidder can't afford (%d / %d) (%s)", e.Coins, e.Bid, e.BidStr)
}

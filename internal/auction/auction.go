// internal/auction/auction.go
//
// One Auction tracks one chore's live sale. It starts open with no bids,
// collects strictly increasing bids, and ends in exactly one of three ways:
// sold to the highest bidder, claimed with an instant win, or handed out as
// a freebie. The session layer may later revert a completed auction back to
// open; the auction itself never un-completes.

package auction

import (
	"fmt"

	"github.com/askelund/tjanseauktion/internal/chore"
	"github.com/askelund/tjanseauktion/internal/message"
	"github.com/askelund/tjanseauktion/internal/team"
)

// InstantWinBid is the sentinel stored in CurrentBid when an auction was
// resolved by instant win. Real bids are always >= 1, so the sentinel can
// never collide with one. Revert keys off it to know whether to refund
// coins or restore the instant-win right.
const InstantWinBid = -1

// Auction is the sale state for a single chore. The JSON field names are the
// snapshot wire format. Bidder is serialized inline as a full team document,
// but on load it is only a lookup key: the session re-points it at the
// canonical roster entry by id.
type Auction struct {
	Chore         chore.Chore `json:"chore"`
	CurrentBid    int         `json:"current_bid"`
	CurrentBidStr string      `json:"current_bid_str"`
	Bidder        *team.Team  `json:"bidder"`
	IsCompleted   bool        `json:"is_completed"`
	IsSecret      bool        `json:"is_secret"`
}

// New opens an auction for the given chore.
func New(c chore.Chore) *Auction {
	return &Auction{Chore: c}
}

// String renders the auction header line. Secret auctions hide the chore.
func (a *Auction) String() string {
	if a.IsSecret {
		return fmt.Sprintf("[SECRET] - %s", a.Chore)
	}
	return a.Chore.String()
}

// Equal compares auctions by chore only. Bid state is deliberately ignored;
// equality answers "is this the same sale", not "is it in the same state".
func (a *Auction) Equal(other *Auction) bool {
	if other == nil {
		return false
	}
	return a.Chore == other.Chore
}

// IsBidValid reports whether bid clears the current bid. minOverbidFactor
// scales the bar: with factor 1.0 any strictly higher bid qualifies, with
// e.g. 1.1 a new bid must beat the current one by ten percent.
func (a *Auction) IsBidValid(bid int, minOverbidFactor float64) bool {
	return float64(bid) > float64(a.CurrentBid)*minOverbidFactor
}

// IsBidderValid reports whether bidder may bid right now. The team already
// in the lead cannot outbid itself.
func (a *Auction) IsBidderValid(bidder *team.Team) bool {
	return !bidder.Equal(a.Bidder)
}

// TryBid attempts to place a bid. On success the bid, its canonical raw
// text, and the bidder replace the previous ones atomically and the returned
// message names all three. On failure the auction is untouched and the error
// is one of *BidTooLowError, *DuplicateBidderError, *InsufficientFundsError.
func (a *Auction) TryBid(bid int, bidder *team.Team, bidStr string, minOverbidFactor float64) (message.Message, error) {
	if !a.IsBidValid(bid, minOverbidFactor) {
		return message.Message{}, &BidTooLowError{Bid: bid, CurrentBid: a.CurrentBid, BidStr: bidStr}
	}
	if !a.IsBidderValid(bidder) {
		return message.Message{}, &DuplicateBidderError{TeamID: bidder.ID}
	}
	if !bidder.CanAfford(bid) {
		return message.Message{}, &InsufficientFundsError{Coins: bidder.Coins, Bid: bid, BidStr: bidStr}
	}

	a.CurrentBid = bid
	a.CurrentBidStr = bidStr
	a.Bidder = bidder

	return message.Successf("team%d bid %d coins (%s)", bidder.ID, bid, bidStr), nil
}

// InstantWin resolves the auction with buyer's one-time instant win. It
// always succeeds; the caller must have verified the team still holds the
// right. The sentinel bid marks the resolution for revert.
func (a *Auction) InstantWin(buyer *team.Team) message.Message {
	a.CurrentBid = InstantWinBid
	a.CurrentBidStr = fmt.Sprintf("%d win", buyer.ID)
	a.Bidder = buyer
	a.IsCompleted = true
	buyer.InstantWin(a.Chore)

	return message.Successf("team%d used instant win, it's super effective!", buyer.ID)
}

// Freebie hands the chore to t at no cost and completes the auction. The
// caller must have verified that only one team still needs chores; Freebie
// itself does not check.
func (a *Auction) Freebie(t *team.Team) message.Message {
	a.CurrentBid = 0
	a.CurrentBidStr = fmt.Sprintf("%d free", t.ID)
	a.Bidder = t
	a.IsCompleted = true
	t.AddChore(a.Chore)

	return message.Successf("team%d got %s for free", t.ID, a.Chore.Desc)
}

// Complete sells the chore to the current highest bidder: the bidder pays
// the current bid and records the chore, and the auction closes. Completing
// an auction with no bidder returns ErrNoBids and changes nothing.
func (a *Auction) Complete() (message.Message, error) {
	if a.Bidder == nil {
		return message.Message{}, ErrNoBids
	}

	a.Bidder.Buy(a.Chore, a.CurrentBid)
	a.IsCompleted = true

	return message.Successf("Chore %s sold to team%d", a.Chore.Desc, a.Bidder.ID), nil
}

// ResetBids clears the bid state back to a fresh auction. The completed flag
// is untouched; revert handles that separately.
func (a *Auction) ResetBids() {
	a.Bidder = nil
	a.CurrentBid = 0
	a.CurrentBidStr = ""
}

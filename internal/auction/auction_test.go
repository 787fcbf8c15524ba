package auction

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/askelund/tjanseauktion/internal/chore"
	"github.com/askelund/tjanseauktion/internal/team"
)

func newTestAuction() *Auction {
	return New(chore.New("some chore", "yesterday", "25:00"))
}

func TestString(t *testing.T) {
	a := newTestAuction()
	if got := a.String(); got != "some chore - yesterday at 25:00" {
		t.Fatalf("String() = %q", got)
	}

	a.IsSecret = true
	if got := a.String(); got != "[SECRET] - some chore - yesterday at 25:00" {
		t.Fatalf("secret String() = %q", got)
	}
}

func TestIsBidValid(t *testing.T) {
	a := newTestAuction()
	if !a.IsBidValid(10, 1.0) {
		t.Fatal("first bid should be valid")
	}

	a.CurrentBid = 500
	if a.IsBidValid(400, 1.0) {
		t.Fatal("lower bid should be invalid")
	}
	if a.IsBidValid(500, 1.0) {
		t.Fatal("tie should be invalid")
	}
	if !a.IsBidValid(501, 1.0) {
		t.Fatal("strictly higher bid should be valid with identity factor")
	}

	// A 10% minimum increment raises the bar to 550.
	if a.IsBidValid(550, 1.1) {
		t.Fatal("bid at the raised bar should be invalid")
	}
	if !a.IsBidValid(551, 1.1) {
		t.Fatal("bid above the raised bar should be valid")
	}
}

func TestIsBidderValid(t *testing.T) {
	a := newTestAuction()
	bidder0 := team.New(0)
	bidder1 := team.New(1)

	if !a.IsBidderValid(bidder0) {
		t.Fatal("any bidder is valid on a fresh auction")
	}
	a.Bidder = bidder0
	if a.IsBidderValid(bidder0) {
		t.Fatal("leading bidder cannot outbid itself")
	}
	if !a.IsBidderValid(bidder1) {
		t.Fatal("other teams can outbid the leader")
	}
}

func TestTryBidTooLow(t *testing.T) {
	a := newTestAuction()
	a.CurrentBid = 2000

	_, err := a.TryBid(500, team.New(0), "1::7", 1.0)
	var tooLow *BidTooLowError
	if !errors.As(err, &tooLow) {
		t.Fatalf("err = %v, want BidTooLowError", err)
	}
	if err.Error() != "bid is too low (500 / 2000) (1::7)" {
		t.Fatalf("err text = %q", err.Error())
	}
	if a.Bidder != nil || a.CurrentBid != 2000 {
		t.Fatal("failed bid mutated the auction")
	}
}

func TestTryBidDuplicateBidder(t *testing.T) {
	a := newTestAuction()
	bidder := team.New(0)
	a.Bidder = bidder
	a.CurrentBid = 100

	_, err := a.TryBid(500, bidder, "1::7", 1.0)
	var dup *DuplicateBidderError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateBidderError", err)
	}
	if err.Error() != "bidder already has the lead (team0)" {
		t.Fatalf("err text = %q", err.Error())
	}
}

func TestTryBidInsufficientFunds(t *testing.T) {
	a := newTestAuction()
	bidder := team.New(0)
	bidder.Coins = 200

	_, err := a.TryBid(500, bidder, "1::7", 1.0)
	var funds *InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("err = %v, want InsufficientFundsError", err)
	}
	if err.Error() != "bidder can't afford (200 / 500) (1::7)" {
		t.Fatalf("err text = %q", err.Error())
	}
}

func TestTryBidSuccess(t *testing.T) {
	a := New(chore.New("yeet the rich", "now", "now"))
	bidder := team.New(0)

	msg, err := a.TryBid(493, bidder, "1:0:0", 1.0)
	if err != nil {
		t.Fatalf("TryBid: %v", err)
	}
	if msg.Text != "team0 bid 493 coins (1:0:0)" {
		t.Fatalf("msg = %q", msg.Text)
	}
	if a.CurrentBid != 493 || a.CurrentBidStr != "1:0:0" || !bidder.Equal(a.Bidder) {
		t.Fatalf("bid state not set: %+v", a)
	}
	if bidder.Coins != team.StartCoins {
		t.Fatal("placing a bid must not debit coins")
	}
}

func TestTryBidReplacesLeader(t *testing.T) {
	a := newTestAuction()
	first := team.New(0)
	second := team.New(1)

	if _, err := a.TryBid(100, first, "::100", 1.0); err != nil {
		t.Fatalf("first bid: %v", err)
	}
	if _, err := a.TryBid(200, second, "::200", 1.0); err != nil {
		t.Fatalf("second bid: %v", err)
	}
	if a.CurrentBid != 200 || !second.Equal(a.Bidder) {
		t.Fatalf("second bid did not take the lead: %+v", a)
	}
}

func TestInstantWin(t *testing.T) {
	a := newTestAuction()
	buyer := team.New(0)

	msg := a.InstantWin(buyer)

	if msg.Text != "team0 used instant win, it's super effective!" {
		t.Fatalf("msg = %q", msg.Text)
	}
	if a.CurrentBid != InstantWinBid {
		t.Fatalf("CurrentBid = %d, want sentinel %d", a.CurrentBid, InstantWinBid)
	}
	if a.CurrentBidStr != "0 win" || !buyer.Equal(a.Bidder) || !a.IsCompleted {
		t.Fatalf("instant win state wrong: %+v", a)
	}
	if buyer.HasFreeWin {
		t.Fatal("buyer should have burned its instant win")
	}
	if len(buyer.Chores) != 1 {
		t.Fatal("buyer should own the chore")
	}
}

func TestFreebie(t *testing.T) {
	a := newTestAuction()
	tm := team.New(2)

	a.Freebie(tm)

	if a.CurrentBid != 0 || a.CurrentBidStr != "2 free" || !a.IsCompleted {
		t.Fatalf("freebie state wrong: %+v", a)
	}
	if tm.Coins != team.StartCoins || !tm.HasFreeWin {
		t.Fatal("freebie must cost neither coins nor the instant win")
	}
	if len(tm.Chores) != 1 {
		t.Fatal("team should own the chore")
	}
}

func TestComplete(t *testing.T) {
	a := newTestAuction()
	bidder := team.New(0)
	a.Bidder = bidder
	a.CurrentBid = 500

	msg, err := a.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if msg.Text != "Chore some chore sold to team0" {
		t.Fatalf("msg = %q", msg.Text)
	}
	if !a.IsCompleted {
		t.Fatal("auction should be completed")
	}
	if bidder.Coins != team.StartCoins-500 {
		t.Fatalf("bidder coins = %d, want %d", bidder.Coins, team.StartCoins-500)
	}
	if len(bidder.Chores) != 1 || bidder.Chores[0] != a.Chore {
		t.Fatal("winning team should own the chore")
	}
}

func TestCompleteWithoutBids(t *testing.T) {
	a := newTestAuction()
	if _, err := a.Complete(); !errors.Is(err, ErrNoBids) {
		t.Fatalf("err = %v, want ErrNoBids", err)
	}
	if a.IsCompleted {
		t.Fatal("failed completion must not close the auction")
	}
}

func TestResetBids(t *testing.T) {
	a := newTestAuction()
	a.Bidder = team.New(0)
	a.CurrentBid = 500
	a.CurrentBidStr = "yeet"
	a.IsCompleted = true

	a.ResetBids()

	if a.Bidder != nil || a.CurrentBid != 0 || a.CurrentBidStr != "" {
		t.Fatalf("bid state not cleared: %+v", a)
	}
	if !a.IsCompleted {
		t.Fatal("ResetBids must not touch the completed flag")
	}
}

func TestEqualComparesByChore(t *testing.T) {
	a := newTestAuction()
	b := newTestAuction()
	b.CurrentBid = 900
	b.IsCompleted = true

	if !a.Equal(b) {
		t.Fatal("auctions for the same chore should be equal regardless of bid state")
	}
	if a.Equal(New(chore.New("other", "", ""))) {
		t.Fatal("auctions for different chores should not be equal")
	}
	if a.Equal(nil) {
		t.Fatal("nil is never equal")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	a := newTestAuction()
	a.IsSecret = true
	bidder := team.New(1)
	if _, err := a.TryBid(300, bidder, "::300", 1.0); err != nil {
		t.Fatalf("TryBid: %v", err)
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Auction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(a) {
		t.Fatalf("round trip changed identity: %+v", got)
	}
	if got.CurrentBid != 300 || got.CurrentBidStr != "::300" || !got.IsSecret {
		t.Fatalf("round trip lost bid state: %+v", got)
	}
	if got.Bidder == nil || got.Bidder.ID != 1 {
		t.Fatalf("round trip lost bidder: %+v", got.Bidder)
	}
}

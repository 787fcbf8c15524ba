// internal/session/session.go
//
// Session is the aggregate the UI drives: the team roster, the pending
// auction queue, the completed stack, and the auction currently on the
// block. Every user action runs to completion here, produces exactly one
// notification, and is then committed (message log append + full snapshot
// rewrite) via Record.

package session

import (
	"fmt"
	"strings"

	"github.com/askelund/tjanseauktion/internal/auction"
	"github.com/askelund/tjanseauktion/internal/currency"
	"github.com/askelund/tjanseauktion/internal/input"
	"github.com/askelund/tjanseauktion/internal/message"
	"github.com/askelund/tjanseauktion/internal/msglog"
	"github.com/askelund/tjanseauktion/internal/team"
)

// Config carries the auction rules the session enforces.
type Config struct {
	// MinOverbidFactor scales the bar a new bid must clear; 1.0 means any
	// strictly higher bid. Instant wins and freebies bypass it entirely.
	MinOverbidFactor float64
	// ChoresPerTeam is each team's quota, ceil(catalog / teams). Gates the
	// freebie and drives the quota highlight in the team table.
	ChoresPerTeam int
}

// Exporter writes the final results document once every auction is done.
type Exporter interface {
	Write(teams []*team.Team) (string, error)
}

// Session holds the full mutable state of one auction night.
type Session struct {
	teams     []*team.Team
	pending   []*auction.Auction
	completed []*auction.Auction
	current   *auction.Auction

	cfg      Config
	store    *Store
	log      *msglog.Log
	exporter Exporter
}

// New starts a fresh session: the first queued auction immediately goes on
// the block.
func New(teams []*team.Team, queue []*auction.Auction, cfg Config, store *Store, log *msglog.Log, exporter Exporter) *Session {
	s := &Session{
		teams:    teams,
		pending:  queue,
		cfg:      cfg,
		store:    store,
		log:      log,
		exporter: exporter,
	}
	if len(s.pending) > 0 {
		s.current = s.pending[0]
		s.pending = s.pending[1:]
	}
	return s
}

// Restore rebuilds a session from the store's snapshot. Bidder references
// inside auctions are resolved against the canonical roster by team id; the
// inline team documents in the snapshot are only lookup keys.
func Restore(cfg Config, store *Store, log *msglog.Log, exporter Exporter) (*Session, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, err
	}

	s := &Session{
		teams:     snap.Teams,
		pending:   snap.Auctions,
		completed: snap.Completed,
		current:   snap.Current,
		cfg:       cfg,
		store:     store,
		log:       log,
		exporter:  exporter,
	}

	for _, a := range s.pending {
		s.resolveBidder(a)
	}
	for _, a := range s.completed {
		s.resolveBidder(a)
	}
	s.resolveBidder(s.current)

	return s, nil
}

func (s *Session) resolveBidder(a *auction.Auction) {
	if a == nil || a.Bidder == nil {
		return
	}
	for _, t := range s.teams {
		if t.ID == a.Bidder.ID {
			a.Bidder = t
			return
		}
	}
}

// Teams returns the roster in id order.
func (s *Session) Teams() []*team.Team {
	return s.teams
}

// Current returns the auction on the block, or nil once every auction is
// done.
func (s *Session) Current() *auction.Auction {
	return s.current
}

// PendingCount returns how many auctions are still queued.
func (s *Session) PendingCount() int {
	return len(s.pending)
}

// CompletedCount returns how many auctions have been resolved.
func (s *Session) CompletedCount() int {
	return len(s.completed)
}

// Done reports whether every auction has been resolved.
func (s *Session) Done() bool {
	return s.current == nil
}

// ChoresPerTeam returns each team's chore quota.
func (s *Session) ChoresPerTeam() int {
	return s.cfg.ChoresPerTeam
}

// LogTail returns the most recent message log lines for the UI panel.
func (s *Session) LogTail(n int) []string {
	return s.log.Tail(n)
}

// HandleBidInput dispatches one line from the bid box: a bid, an instant-win
// claim, or a freebie claim. Anything else is malformed.
func (s *Session) HandleBidInput(raw string) message.Message {
	if s.current == nil {
		return message.FromError(ErrNoCurrentAuction)
	}

	switch input.Classify(raw) {
	case input.KindInstantWin:
		return s.instantWin(input.ParseTeamID(raw))
	case input.KindBid:
		return s.bid(raw)
	case input.KindFreebie:
		return s.freebie(input.ParseTeamID(raw))
	default:
		return message.FromError(&MalformedInputError{Input: strings.TrimSpace(raw)})
	}
}

func (s *Session) bid(raw string) message.Message {
	teamID, amount := input.ParseBid(raw)
	bidder, err := s.teamByID(teamID)
	if err != nil {
		return message.FromError(err)
	}

	msg, err := s.current.TryBid(amount, bidder, input.NormalizeBid(raw), s.cfg.MinOverbidFactor)
	if err != nil {
		return message.FromError(err)
	}
	return msg
}

func (s *Session) instantWin(teamID int) message.Message {
	buyer, err := s.teamByID(teamID)
	if err != nil {
		return message.FromError(err)
	}
	if !buyer.HasFreeWin {
		return message.FromError(&InstantWinUsedError{TeamID: buyer.ID})
	}

	msg := s.current.InstantWin(buyer)
	if over := s.advance(); !over.IsZero() {
		msg = over
	}
	return msg
}

func (s *Session) freebie(teamID int) message.Message {
	short := 0
	for _, t := range s.teams {
		if len(t.Chores) != s.cfg.ChoresPerTeam {
			short++
		}
	}
	if short > 1 {
		return message.FromError(ErrFreebieNotReady)
	}

	t, err := s.teamByID(teamID)
	if err != nil {
		return message.FromError(err)
	}

	msg := s.current.Freebie(t)
	if over := s.advance(); !over.IsZero() {
		msg = over
	}
	return msg
}

// HandleConversion answers one line from the conversion box with the coin
// value of the given currency string.
func (s *Session) HandleConversion(raw string) message.Message {
	if !input.ValidateConversion(raw) {
		return message.FromError(&MalformedInputError{Input: strings.TrimSpace(raw)})
	}
	value := input.ParseConversion(raw)
	return message.Successf("%q is %d coins", currency.Normalize(raw), value)
}

// Sell closes the current auction in favor of the highest bidder and puts
// the next auction on the block.
func (s *Session) Sell() message.Message {
	if s.current == nil {
		return message.FromError(ErrNoCurrentAuction)
	}

	msg, err := s.current.Complete()
	if err != nil {
		return message.FromError(err)
	}
	if over := s.advance(); !over.IsZero() {
		msg = over
	}
	return msg
}

// Reset clears the current auction's bid state.
func (s *Session) Reset() message.Message {
	if s.current == nil {
		return message.FromError(ErrNoCurrentAuction)
	}
	s.current.ResetBids()
	return message.Successf("Reset current auction state")
}

// RevertLast pulls the most recently completed auction back onto the block
// and exactly inverts its resolution: an instant win gets the team's right
// back, a normal sale refunds the bid, a freebie refunds nothing; in every
// case the won chore leaves the team again.
func (s *Session) RevertLast() message.Message {
	if len(s.completed) == 0 {
		return message.FromError(ErrNoCompletedAuctions)
	}

	if s.current != nil {
		s.pending = append([]*auction.Auction{s.current}, s.pending...)
	}
	last := s.completed[len(s.completed)-1]
	s.completed = s.completed[:len(s.completed)-1]
	s.current = last

	if last.CurrentBid == auction.InstantWinBid {
		last.Bidder.HasFreeWin = true
	} else {
		last.Bidder.Coins += last.CurrentBid
	}
	last.Bidder.Chores = last.Bidder.Chores[:len(last.Bidder.Chores)-1]

	last.ResetBids()
	last.IsCompleted = false

	return message.Successf("Reverted last auction")
}

// advance moves the resolved current auction onto the completed stack and
// dequeues the next one. When the queue is empty the session is done, the
// results document is written, and the returned message replaces the
// action's own one.
func (s *Session) advance() message.Message {
	s.completed = append(s.completed, s.current)

	if len(s.pending) == 0 {
		s.current = nil
		if s.exporter == nil {
			return message.Successf("All chores have been sold.")
		}
		path, err := s.exporter.Write(s.teams)
		if err != nil {
			return message.Errorf("all chores sold, but writing results failed: %v", err)
		}
		return message.Successf("All chores have been sold. Results saved to %s", path)
	}

	s.current = s.pending[0]
	s.pending = s.pending[1:]
	return message.Message{}
}

// Record commits one finished action: the notification is appended to the
// message log and the full snapshot is rewritten. A zero message still
// persists state, so every turn ends with a fresh snapshot.
func (s *Session) Record(msg message.Message) error {
	s.log.Append(msg)
	if err := s.store.Save(s.Snapshot()); err != nil {
		return fmt.Errorf("session: persist state: %w", err)
	}
	return nil
}

// Snapshot captures the full session state in the wire shape.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Teams:     s.teams,
		Auctions:  s.pending,
		Completed: s.completed,
		Current:   s.current,
	}
}

func (s *Session) teamByID(id int) (*team.Team, error) {
	if id < 0 || id >= len(s.teams) {
		return nil, &UnknownTeamError{TeamID: id}
	}
	return s.teams[id], nil
}

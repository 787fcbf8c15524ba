// internal/auction/generate.go
//
// The auction queue is generated exactly once, on the session's first run,
// and then lives in the snapshot.

package auction

import (
	"math/rand"

	"github.com/askelund/tjanseauktion/internal/chore"
)

const (
	// priorityDay chores are auctioned first so the week can start even if
	// the auction night runs long.
	priorityDay = "Mandag"
	// fillerChoreDesc is the placeholder chore wrapped by filler auctions.
	fillerChoreDesc = "Fritjans"
)

// CreateAuctions builds the full auction queue from the chore catalog.
//
// nSecrets distinct auctions are drawn uniformly at random and marked
// secret. Then filler auctions are appended: with chores split evenly across
// nTeams, each team needs ceil(len(chores)/nTeams) chores, and the leftover
// slots become free "Fritjans" auctions, all secret. Depending on catalog
// size versus team count the formula can legitimately yield zero fillers.
// Finally the queue is shuffled, with priority-day chores stable-partitioned
// to the front.
func CreateAuctions(chores []chore.Chore, nSecrets, nTeams int) []*Auction {
	if len(chores) == 0 {
		return nil
	}

	auctions := make([]*Auction, 0, len(chores))
	for _, c := range chores {
		auctions = append(auctions, New(c))
	}

	// Sample without replacement: re-draw on collision.
	for i := 0; i < nSecrets && i < len(auctions); i++ {
		selection := auctions[rand.Intn(len(auctions))]
		for selection.IsSecret {
			selection = auctions[rand.Intn(len(auctions))]
		}
		selection.IsSecret = true
	}

	choresPerTeam := (len(chores) + nTeams - 1) / nTeams
	nFillers := (choresPerTeam * nTeams) % len(chores)

	for i := 0; i < nFillers; i++ {
		a := New(chore.New(fillerChoreDesc, "", ""))
		a.IsSecret = true
		auctions = append(auctions, a)
	}

	rand.Shuffle(len(auctions), func(i, j int) {
		auctions[i], auctions[j] = auctions[j], auctions[i]
	})

	ordered := make([]*Auction, 0, len(auctions))
	for _, a := range auctions {
		if a.Chore.Day == priorityDay {
			ordered = append(ordered, a)
		}
	}
	for _, a := range auctions {
		if a.Chore.Day != priorityDay {
			ordered = append(ordered, a)
		}
	}

	return ordered
}

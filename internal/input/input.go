// internal/input/input.go
//
// Raw text from the bid and conversion boxes is classified against exact
// patterns before anything is parsed. Validation and parsing are separate
// steps on purpose: the Parse* functions assume their shape already matched
// and do no error checking of their own.

package input

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/askelund/tjanseauktion/internal/currency"
)

// Kind is the recognized shape of one line of user input.
type Kind int

const (
	KindInvalid Kind = iota
	// KindBid is "<team> H:M:L", e.g. "2 3:2:0".
	KindBid
	// KindInstantWin is "<team> win".
	KindInstantWin
	// KindFreebie is "<team> free".
	KindFreebie
	// KindConversion is a bare currency string, e.g. "6::9".
	KindConversion
)

var (
	bidPattern        = regexp.MustCompile(`^\d+ \d*:\d*:\d*$`)
	instantWinPattern = regexp.MustCompile(`^\d+ win$`)
	freebiePattern    = regexp.MustCompile(`^\d+ free$`)
	conversionPattern = regexp.MustCompile(`^\d*:\d*:\d*$`)
)

// Syntax hints shown in the command menu.
const (
	BidSyntax        = "<team> <high>:<mid>:<low>"
	InstantWinSyntax = "<team> win"
	FreebieSyntax    = "<team> free"
	ConversionSyntax = "<high>:<mid>:<low>"
)

// ValidateBid reports whether raw is a well-formed bid, e.g. "2 3:2:0" or
// "5 :10:". Leading and trailing whitespace is tolerated.
func ValidateBid(raw string) bool {
	return bidPattern.MatchString(strings.TrimSpace(raw))
}

// ValidateInstantWin reports whether raw is an instant-win claim, e.g. "4 win".
func ValidateInstantWin(raw string) bool {
	return instantWinPattern.MatchString(strings.TrimSpace(raw))
}

// ValidateFreebie reports whether raw is a freebie claim, e.g. "7 free".
func ValidateFreebie(raw string) bool {
	return freebiePattern.MatchString(strings.TrimSpace(raw))
}

// ValidateConversion reports whether raw is a bare currency string,
// e.g. "6::9" or "4:20:".
func ValidateConversion(raw string) bool {
	return conversionPattern.MatchString(strings.TrimSpace(raw))
}

// Classify matches raw against every recognized shape and returns the one
// that matched, or KindInvalid. The shapes are mutually exclusive, so at
// most one can match.
func Classify(raw string) Kind {
	switch {
	case ValidateInstantWin(raw):
		return KindInstantWin
	case ValidateFreebie(raw):
		return KindFreebie
	case ValidateBid(raw):
		return KindBid
	case ValidateConversion(raw):
		return KindConversion
	default:
		return KindInvalid
	}
}

// ParseBid splits a validated bid into the bidding team's id and the bid
// amount in coins. Call only after ValidateBid succeeded.
func ParseBid(raw string) (teamID, amount int) {
	parts := strings.SplitN(strings.TrimSpace(raw), " ", 2)
	teamID, _ = strconv.Atoi(parts[0])
	return teamID, currency.Amount(parts[1])
}

// ParseTeamID extracts the leading team id from a validated instant-win or
// freebie claim. Call only after the matching validator succeeded.
func ParseTeamID(raw string) int {
	id, _ := strconv.Atoi(strings.Fields(raw)[0])
	return id
}

// ParseConversion computes the coin value of a validated currency string.
// Call only after ValidateConversion succeeded.
func ParseConversion(raw string) int {
	return currency.Amount(raw)
}

// NormalizeBid rewrites the currency half of a validated bid with explicit
// zeroes, "1 ::" -> "1:0:0". The team id is dropped; the result is the
// canonical bid text stored on the auction.
func NormalizeBid(raw string) string {
	parts := strings.SplitN(strings.TrimSpace(raw), " ", 2)
	return currency.Normalize(parts[1])
}

// internal/currency/currency.go
//
// The auction runs on a three-tier coin currency. Every amount is stored as
// a single integer coin count; the tiers only exist at the input/display
// boundary. A currency string always has exactly three colon-separated
// fields, "high:mid:low", where an empty field counts as zero.

package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// Exchange rates in coins. The tiers divide unevenly on purpose; converting
// in your head is part of the game.
const (
	HighRate = 493
	MidRate  = 29
	LowRate  = 1
)

// Amount converts a validated "H:M:L" string into its total coin value.
// Amount assumes the input already passed input.ValidateConversion (or the
// currency half of a bid); it must not be handed raw user text.
func Amount(s string) int {
	fields := strings.Split(strings.TrimSpace(s), ":")
	rates := [...]int{HighRate, MidRate, LowRate}

	total := 0
	for i, field := range fields {
		if i >= len(rates) || field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		total += n * rates[i]
	}
	return total
}

// Decompose splits a total coin count back into its tiers, largest first.
func Decompose(total int) (high, mid, low int) {
	high = total / HighRate
	mid = total % HighRate / MidRate
	low = total % HighRate % MidRate
	return high, mid, low
}

// Normalize fills the empty fields of a currency string with explicit
// zeroes, so "1::" becomes "1:0:0". Used before echoing a bid back to the
// user or persisting its raw text.
func Normalize(s string) string {
	fields := strings.Split(strings.TrimSpace(s), ":")
	for i, field := range fields {
		if field == "" {
			fields[i] = "0"
		}
	}
	return strings.Join(fields, ":")
}

// CoinString renders a team's balance for the team table:
// "10.2.12 | 5000 | ★". The trailing rune marks whether the team still
// holds its instant win.
func CoinString(total int, hasFreeWin bool) string {
	high, mid, low := Decompose(total)
	mark := "★"
	if !hasFreeWin {
		mark = "☠"
	}
	return fmt.Sprintf("%d.%d.%d | %d | %s", high, mid, low, total, mark)
}

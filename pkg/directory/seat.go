package directory

import "strconv"

// Seat is one row in the external player directory.
// Every field is a string on the wire: hit is an integer-encoded counter
// that only ever grows within a round, and stand is "0" or "1".
type Seat struct {
	UUID  string `json:"uuid"`
	Team  string `json:"team"`
	Hit   string `json:"hit"`
	Stand string `json:"stand"`
}

// HitCount returns the decoded hit counter. Malformed values count as zero.
func (s Seat) HitCount() int {
	n, err := strconv.Atoi(s.Hit)
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// Standing returns true if the seat has declared it wants no more cards
func (s Seat) Standing() bool {
	return s.Stand == "1"
}

// IntentWriter pushes engine-observed facts back into the player directory.
// Both writes are best-effort: the engine's own state is the source of truth
// whether or not they land.
type IntentWriter interface {
	// MarkStood marks a busted seat as stood so future polls reflect it
	MarkStood(seat Seat) error

	// ClearIntent zeroes the seat's hit and stand counters between rounds
	ClearIntent(seat Seat) error
}

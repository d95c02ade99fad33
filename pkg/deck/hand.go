package deck

// Hand represents an ordered collection of cards held by a seat or the dealer.
// A hand is append-only during a round; it is discarded wholesale on reset.
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Reveal flips every hidden card in the hand face-up.
// Revealing an already-visible hand is a no-op. Returns the number of cards flipped.
func (h Hand) Reveal() int {
	flipped := 0
	for _, c := range h {
		if c.Hidden {
			c.Hidden = false
			flipped++
		}
	}

	return flipped
}

// HiddenCount returns the number of face-down cards in the hand
func (h Hand) HiddenCount() int {
	n := 0
	for _, c := range h {
		if c.Hidden {
			n++
		}
	}

	return n
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

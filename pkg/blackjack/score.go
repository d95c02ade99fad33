package blackjack

import "blackjack-table-server/pkg/deck"

const bustOver = 21

// cardValue is the value a non-ace card contributes to a hand
func cardValue(c *deck.Card) int {
	if c.Rank >= deck.Jack && c.Rank <= deck.King {
		return 10
	}

	return c.Rank
}

// Score computes the blackjack score of a hand.
// Hidden cards contribute nothing. Non-ace cards sum first; each ace then
// counts 11 if that keeps the running total at or below 21, otherwise 1.
// Aces are applied in hand order, so each ace sees the total left by the
// aces before it.
func Score(hand deck.Hand) int {
	total := 0
	for _, c := range hand {
		if c.Hidden || c.Rank == deck.Ace {
			continue
		}

		total += cardValue(c)
	}

	for _, c := range hand {
		if c.Hidden || c.Rank != deck.Ace {
			continue
		}

		if total+11 > bustOver {
			total++
		} else {
			total += 11
		}
	}

	return total
}

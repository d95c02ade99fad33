package blackjack

// dealerStand is the score at which the dealer stops drawing
const dealerStand = 17

// dealerShouldDraw is the house rule: draw while under 17, stand otherwise.
// There is no soft/hard distinction beyond the ace rule in Score.
func dealerShouldDraw(score int) bool {
	return score < dealerStand
}

// advanceDealer plays out the dealer's hand and finishes the round.
// The caller must have revealed the hole card and entered PhaseDealerTurn.
func (r *Round) advanceDealer() error {
	for dealerShouldDraw(r.dealerScore) {
		if err := r.dealToDealer(false); err != nil {
			return err
		}
	}

	r.finishRound()
	return nil
}

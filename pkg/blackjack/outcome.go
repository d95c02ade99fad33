package blackjack

// Outcome is a seat's result for a round
type Outcome string

// outcome constants
const (
	OutcomeBust Outcome = "bust"
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeTie  Outcome = "tie"
)

// resolveOutcome compares a finished seat score against the dealer.
// A busted seat loses regardless of the dealer's score.
func resolveOutcome(seatScore, dealerScore int) Outcome {
	switch {
	case seatScore > bustOver:
		return OutcomeBust
	case dealerScore > bustOver:
		return OutcomeWin
	case seatScore > dealerScore:
		return OutcomeWin
	case dealerScore > seatScore:
		return OutcomeLose
	default:
		return OutcomeTie
	}
}

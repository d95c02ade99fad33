package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name        string
		seatScore   int
		dealerScore int
		expected    Outcome
	}{
		{"seat busts", 22, 17, OutcomeBust},
		{"seat busts even if dealer busts", 25, 24, OutcomeBust},
		{"dealer busts", 18, 22, OutcomeWin},
		{"seat higher", 20, 18, OutcomeWin},
		{"dealer higher", 17, 19, OutcomeLose},
		{"equal scores", 19, 19, OutcomeTie},
		{"both at 21", 21, 21, OutcomeTie},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, resolveOutcome(test.seatScore, test.dealerScore))
		})
	}
}

// ties only happen when the scores match and neither side busted
func TestResolveOutcome_tieSymmetry(t *testing.T) {
	for seat := 2; seat <= 30; seat++ {
		for dealer := 2; dealer <= 30; dealer++ {
			outcome := resolveOutcome(seat, dealer)
			if outcome == OutcomeTie {
				assert.Equal(t, seat, dealer)
				assert.LessOrEqual(t, seat, 21)
			}

			if seat > 21 {
				assert.Equal(t, OutcomeBust, outcome)
			}
		}
	}
}

func TestDealerShouldDraw(t *testing.T) {
	assert.True(t, dealerShouldDraw(0))
	assert.True(t, dealerShouldDraw(16))
	assert.False(t, dealerShouldDraw(17))
	assert.False(t, dealerShouldDraw(21))
	assert.False(t, dealerShouldDraw(22))
}

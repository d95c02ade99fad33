package blackjack

import (
	"encoding/json"
	"testing"
	"time"

	"blackjack-table-server/pkg/directory"

	"github.com/stretchr/testify/assert"
)

func TestRound_State(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "2c,10h,7h,9s,5d", &fakeIntents{}, time.Second)
	a.NoError(r.HandleDirectory([]directory.Seat{
		dirSeat("p1", "green", 0, false),
		dirSeat("p2", "blue", 0, true),
	}))

	state := r.State()
	a.Equal("playerTurn", state.Phase)
	a.NotEmpty(state.RoundID)
	a.Equal(0, state.CardsLeft)
	a.Nil(state.Results)

	// seats come back in join order
	a.Len(state.Seats, 2)
	a.Equal("p1", state.Seats[0].UUID)
	a.Equal("green", state.Seats[0].Team)
	a.Equal(17, state.Seats[0].Score)
	a.False(state.Seats[0].Standing)
	a.True(state.Seats[1].Standing)

	// the hole card is redacted: no rank, no suit
	a.Len(state.DealerCards, 1)
	a.True(state.DealerCards[0].Hidden)
	a.Zero(state.DealerCards[0].Rank)
	a.Empty(state.DealerCards[0].Suit)
	a.Equal(0, state.DealerScore)
}

func TestRound_State_redactionOnTheWire(t *testing.T) {
	r := newTestRound(t, "as,10h,7h", &fakeIntents{}, time.Second)

	b, err := json.Marshal(r.State().DealerCards)
	assert.NoError(t, err)
	assert.Equal(t, `[{"hidden":true}]`, string(b))
}

func TestRound_State_results(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "2c,10h,7h,4h,6h,5h", &fakeIntents{}, time.Second)
	a.NoError(r.HandleDirectory([]directory.Seat{dirSeat("p1", "green", 0, true)}))

	_, err := r.Tick()
	a.NoError(err)

	state := r.State()
	a.Equal("roundEnd", state.Phase)
	a.Equal(OutcomeTie, state.Results["p1"])
	a.Equal(OutcomeTie, state.Seats[0].Result)

	// the dealer hand is fully visible after the reveal
	for _, c := range state.DealerCards {
		a.False(c.Hidden)
		a.NotZero(c.Rank)
	}
}

func TestRound_Interval(t *testing.T) {
	r := newTestRound(t, "2c", &fakeIntents{}, time.Second)
	assert.Equal(t, time.Second, r.Interval())
}

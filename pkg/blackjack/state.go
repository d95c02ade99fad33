package blackjack

import (
	"blackjack-table-server/pkg/deck"
)

// StateCard is a card as exposed to the presentation layer.
// Hidden cards are redacted: rank and suit are omitted entirely.
type StateCard struct {
	Rank   int       `json:"rank,omitempty"`
	Suit   deck.Suit `json:"suit,omitempty"`
	Hidden bool      `json:"hidden,omitempty"`
}

// SeatState is the visible state of one seat
type SeatState struct {
	UUID     string       `json:"uuid"`
	Team     string       `json:"team"`
	Cards    []*StateCard `json:"cards"`
	Score    int          `json:"score"`
	Standing bool         `json:"standing"`
	Busted   bool         `json:"busted"`
	Result   Outcome      `json:"result,omitempty"`
}

// State is the read-only snapshot consumed by the presentation layer
type State struct {
	RoundID     string             `json:"roundId"`
	Phase       string             `json:"phase"`
	Seats       []*SeatState       `json:"seats"`
	DealerCards []*StateCard       `json:"dealerCards"`
	DealerScore int                `json:"dealerScore"`
	CardsLeft   int                `json:"cardsLeft"`
	Results     map[string]Outcome `json:"results,omitempty"`
}

func stateCards(hand deck.Hand) []*StateCard {
	cards := make([]*StateCard, len(hand))
	for i, c := range hand {
		if c.Hidden {
			cards[i] = &StateCard{Hidden: true}
			continue
		}

		cards[i] = &StateCard{Rank: c.Rank, Suit: c.Suit}
	}

	return cards
}

// State returns a snapshot of the round for the presentation layer.
// The snapshot shares nothing with the engine's own state.
func (r *Round) State() *State {
	seats := make([]*SeatState, len(r.order))
	for i, id := range r.order {
		seat := r.seats[id]
		seats[i] = &SeatState{
			UUID:     seat.record.UUID,
			Team:     seat.record.Team,
			Cards:    stateCards(seat.hand),
			Score:    seat.score,
			Standing: seat.record.Standing(),
			Busted:   seat.busted,
			Result:   r.results[id],
		}
	}

	state := &State{
		RoundID:     r.id.String(),
		Phase:       r.phase.String(),
		Seats:       seats,
		DealerCards: stateCards(r.dealerHand),
		DealerScore: r.dealerScore,
		CardsLeft:   r.supply.CardsLeft(),
	}

	if len(r.results) > 0 {
		state.Results = make(map[string]Outcome, len(r.results))
		for id, outcome := range r.results {
			state.Results[id] = outcome
		}
	}

	return state
}

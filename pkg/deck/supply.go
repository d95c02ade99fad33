package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"blackjack-table-server/internal/rng"
)

// ErrSupplyEmpty is an error when Draw() is attempted and there are no more cards
var ErrSupplyEmpty = errors.New("card supply exhausted")

// Supply owns the undealt cards for a table.
// Draws are uniform-random without replacement; Reset() restores a fresh copy
// of the reference set.
type Supply struct {
	reference []*Card
	cards     []*Card
	rng       rng.Generator
}

// NewSupply returns a supply stocked with a fresh copy of the reference set
func NewSupply(reference []*Card, generator rng.Generator) *Supply {
	s := &Supply{
		reference: reference,
		rng:       generator,
	}

	s.Reset()
	return s
}

// Reset replaces the remaining cards with a fresh copy of the reference set
func (s *Supply) Reset() {
	cards := make([]*Card, len(s.reference))
	for i, c := range s.reference {
		cards[i] = c.Clone()
	}

	s.cards = cards
}

// Draw removes and returns a uniformly chosen card from the remaining supply.
// If there are no more cards, an ErrSupplyEmpty is returned along with a nil card.
func (s *Supply) Draw() (*Card, error) {
	n := len(s.cards)
	if n == 0 {
		return nil, ErrSupplyEmpty
	}

	i := s.rng.Intn(n)
	card := s.cards[i]

	// swap-remove; the supply is unordered
	s.cards[i] = s.cards[n-1]
	s.cards = s.cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the supply
func (s *Supply) CanDraw(want int) bool {
	return len(s.cards) >= want
}

// CardsLeft returns the number of cards left in the supply
func (s *Supply) CardsLeft() int {
	return len(s.cards)
}

// StandardReference returns the standard 52-card reference set
func StandardReference() []*Card {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

type cardFile struct {
	Cards []struct {
		Value string `json:"value"`
		Suit  string `json:"suit"`
	} `json:"cards"`
}

// ReferenceFromReader parses a JSON card file into a reference set.
// The expected format is {"cards":[{"value":"A","suit":"spades"},...]} where
// value is 2-10 or one of J, Q, K, A.
func ReferenceFromReader(r io.Reader) ([]*Card, error) {
	var file cardFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}

	if len(file.Cards) == 0 {
		return nil, errors.New("card file defines no cards")
	}

	cards := make([]*Card, len(file.Cards))
	for i, fc := range file.Cards {
		card, err := cardFromFileEntry(fc.Value, fc.Suit)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// ReferenceFromFile loads a reference set from the JSON file at path
func ReferenceFromFile(path string) ([]*Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReferenceFromReader(file)
}

func cardFromFileEntry(value, suit string) (*Card, error) {
	var s Suit
	switch Suit(suit) {
	case Clubs, Diamonds, Hearts, Spades:
		s = Suit(suit)
	default:
		return nil, fmt.Errorf("unknown suit: %s", suit)
	}

	var rank int
	switch value {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	case "2", "3", "4", "5", "6", "7", "8", "9", "10":
		// already validated by the case expression
		rank, _ = strconv.Atoi(value)
	default:
		return nil, fmt.Errorf("unknown card value: %s", value)
	}

	return &Card{Rank: rank, Suit: s}, nil
}

package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lastIndex always picks the highest index. Combined with swap-remove that
// pops the reference set back-to-front, which keeps tests deterministic.
type lastIndex struct{}

func (lastIndex) Intn(n int) int { return n - 1 }

// recorder captures the bounds passed to Intn
type recorder struct {
	bounds []int
}

func (r *recorder) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	return 0
}

func TestStandardReference(t *testing.T) {
	ref := StandardReference()
	assert.Len(t, ref, 52)
	assert.Equal(t, "2c", CardToString(ref[0]))
	assert.Equal(t, "as", CardToString(ref[51]))

	seen := make(map[string]bool)
	for _, c := range ref {
		assert.False(t, seen[CardToString(c)])
		seen[CardToString(c)] = true
	}
}

func TestSupply_Draw(t *testing.T) {
	a := assert.New(t)

	s := NewSupply(CardsFromString("2c,3c,4c"), lastIndex{})
	a.Equal(3, s.CardsLeft())
	a.True(s.CanDraw(3))
	a.False(s.CanDraw(4))

	card, err := s.Draw()
	a.NoError(err)
	a.Equal("4c", CardToString(card))

	card, err = s.Draw()
	a.NoError(err)
	a.Equal("3c", CardToString(card))

	card, err = s.Draw()
	a.NoError(err)
	a.Equal("2c", CardToString(card))

	card, err = s.Draw()
	a.Nil(card)
	a.Equal(ErrSupplyEmpty, err)
}

func TestSupply_Draw_uniformBounds(t *testing.T) {
	rec := &recorder{}
	s := NewSupply(StandardReference(), rec)

	for i := 0; i < 52; i++ {
		_, err := s.Draw()
		assert.NoError(t, err)
	}

	// each draw must sample over exactly the remaining collection
	assert.Len(t, rec.bounds, 52)
	for i, n := range rec.bounds {
		assert.Equal(t, 52-i, n)
	}
}

func TestSupply_conservation(t *testing.T) {
	s := NewSupply(StandardReference(), lastIndex{})

	drawn := make([]*Card, 0, 52)
	for s.CardsLeft() > 0 {
		card, err := s.Draw()
		assert.NoError(t, err)
		drawn = append(drawn, card)

		assert.Equal(t, 52, s.CardsLeft()+len(drawn))
	}

	seen := make(map[string]bool)
	for _, c := range drawn {
		assert.False(t, seen[CardToString(c)], "duplicate card drawn: %s", c)
		seen[CardToString(c)] = true
	}
}

func TestSupply_Reset(t *testing.T) {
	a := assert.New(t)

	s := NewSupply(StandardReference(), lastIndex{})
	card, _ := s.Draw()
	card.Hidden = true
	a.Equal(51, s.CardsLeft())

	s.Reset()
	a.Equal(52, s.CardsLeft())

	// mutations on dealt cards must not leak into the fresh copy
	for s.CardsLeft() > 0 {
		c, err := s.Draw()
		a.NoError(err)
		a.False(c.Hidden)
	}
}

func TestReferenceFromReader(t *testing.T) {
	a := assert.New(t)

	ref, err := ReferenceFromReader(strings.NewReader(`{"cards":[
		{"value":"A","suit":"spades"},
		{"value":"10","suit":"hearts"},
		{"value":"2","suit":"clubs"}
	]}`))
	a.NoError(err)
	a.Equal("as,10h,2c", CardsToString(ref))

	_, err = ReferenceFromReader(strings.NewReader(`{"cards":[]}`))
	a.EqualError(err, "card file defines no cards")

	_, err = ReferenceFromReader(strings.NewReader(`{"cards":[{"value":"1","suit":"clubs"}]}`))
	a.EqualError(err, "unknown card value: 1")

	_, err = ReferenceFromReader(strings.NewReader(`{"cards":[{"value":"2","suit":"stars"}]}`))
	a.EqualError(err, "unknown suit: stars")

	_, err = ReferenceFromReader(strings.NewReader(`not json`))
	a.Error(err)
}

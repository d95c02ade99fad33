package blackjack

import (
	"time"

	"blackjack-table-server/pkg/deck"
	"blackjack-table-server/pkg/directory"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Phase is the stage a round is in.
// Transitions are one-directional; the only way back to PhaseInit is the
// end-of-round reset.
type Phase int

// phase constants
const (
	PhaseInit Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseRoundEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhasePlayerTurn:
		return "playerTurn"
	case PhaseDealerTurn:
		return "dealerTurn"
	case PhaseRoundEnd:
		return "roundEnd"
	default:
		return "unknown"
	}
}

// Seat is one externally tracked player position at the table.
// The directory record is read-only input; the round reacts to observed
// deltas and never writes intent fields itself.
type Seat struct {
	record          directory.Seat
	hand            deck.Hand
	score           int
	lastObservedHit int
	busted          bool
}

// Round is the engine for one table. It owns the card supply, every hand,
// and the phase state machine. All methods must be called from a single
// goroutine; the room run loop provides that serialization.
type Round struct {
	logger   logrus.FieldLogger
	supply   *deck.Supply
	intents  directory.IntentWriter
	cooldown time.Duration

	id           uuid.UUID
	phase        Phase
	seats        map[string]*Seat
	order        []string
	dealerHand   deck.Hand
	dealerScore  int
	results      map[string]Outcome
	pendingReset *pendingReset
}

// NewRound returns a round engine and deals the opening hands
func NewRound(logger *logrus.Logger, supply *deck.Supply, intents directory.IntentWriter, cooldown time.Duration) (*Round, error) {
	r := &Round{
		logger:   logger,
		supply:   supply,
		intents:  intents,
		cooldown: cooldown,
		seats:    make(map[string]*Seat),
	}

	if err := r.begin(); err != nil {
		return nil, err
	}

	return r, nil
}

// begin starts a fresh round: restock the supply, clear hands and results,
// deal the dealer's hole card and two cards to every known seat.
// The seat roster survives a reset; only its per-round state is cleared.
func (r *Round) begin() error {
	r.id = uuid.New()
	r.phase = PhaseInit
	r.supply.Reset()
	r.dealerHand = deck.Hand{}
	r.dealerScore = 0
	r.results = make(map[string]Outcome)
	r.pendingReset = nil

	if err := r.dealToDealer(true); err != nil {
		return err
	}

	for _, id := range r.order {
		seat := r.seats[id]
		seat.hand = deck.Hand{}
		seat.score = 0
		seat.busted = false
		seat.lastObservedHit = 0

		if err := r.dealInitialHand(seat); err != nil {
			return err
		}
	}

	r.phase = PhasePlayerTurn
	r.logger.WithFields(logrus.Fields{
		"round": r.id,
		"seats": len(r.order),
	}).Info("round started")

	return nil
}

// HandleDirectory applies one poll snapshot of the player directory.
// New seats are dealt in, hit deltas draw cards, and once every seat has
// stood or busted the dealer's hole card is revealed and the dealer turn
// begins. Seats absent from the snapshot keep their last observed record.
func (r *Round) HandleDirectory(records []directory.Seat) error {
	for _, record := range records {
		seat, ok := r.seats[record.UUID]
		if !ok {
			if err := r.addSeat(record); err != nil {
				return err
			}

			continue
		}

		seat.record = record

		if r.phase != PhasePlayerTurn || seat.busted {
			continue
		}

		hit := record.HitCount()
		if hit > seat.lastObservedHit && !record.Standing() && seat.score <= bustOver {
			if err := r.dealToSeat(seat); err != nil {
				return err
			}

			seat.lastObservedHit = hit
		}
	}

	r.maybeStartDealerTurn()
	return nil
}

// addSeat registers a newly observed seat. During the player turn it is
// dealt in immediately; in any other phase it waits for the next round.
func (r *Round) addSeat(record directory.Seat) error {
	seat := &Seat{
		record: record,
		// baseline the counter so pre-join hits don't replay as draws
		lastObservedHit: record.HitCount(),
	}

	r.seats[record.UUID] = seat
	r.order = append(r.order, record.UUID)

	r.logger.WithFields(logrus.Fields{
		"seat": record.UUID,
		"team": record.Team,
	}).Info("new seat")

	if r.phase == PhasePlayerTurn {
		return r.dealInitialHand(seat)
	}

	return nil
}

// dealInitialHand deals the two-card opening hand to a seat
func (r *Round) dealInitialHand(seat *Seat) error {
	for i := 0; i < 2; i++ {
		if err := r.dealToSeat(seat); err != nil {
			return err
		}
	}

	return nil
}

// dealToSeat draws one card into a seat's hand and rescores it
func (r *Round) dealToSeat(seat *Seat) error {
	card, err := r.supply.Draw()
	if err != nil {
		return err
	}

	seat.hand.AddCard(card)
	seat.score = Score(seat.hand)

	r.logger.WithFields(logrus.Fields{
		"seat":  seat.record.UUID,
		"card":  card.String(),
		"score": seat.score,
	}).Debug("dealt card")

	if seat.score > bustOver && !seat.busted {
		r.bustSeat(seat)
	}

	return nil
}

// bustSeat resolves a seat early: the outcome is final the moment the score
// exceeds 21, and the directory is asked to mark the seat stood so future
// polls reflect it. The write is best-effort.
func (r *Round) bustSeat(seat *Seat) {
	seat.busted = true
	r.results[seat.record.UUID] = OutcomeBust

	r.logger.WithFields(logrus.Fields{
		"seat":  seat.record.UUID,
		"score": seat.score,
	}).Info("seat busted")

	if err := r.intents.MarkStood(seat.record); err != nil {
		r.logger.WithError(err).WithField("seat", seat.record.UUID).Warn("could not mark seat stood in directory")
	}
}

// dealToDealer draws one card into the dealer's hand, optionally face-down,
// and rescores the hand
func (r *Round) dealToDealer(hidden bool) error {
	card, err := r.supply.Draw()
	if err != nil {
		return err
	}

	card.Hidden = hidden
	r.dealerHand.AddCard(card)
	r.dealerScore = Score(r.dealerHand)

	r.logger.WithFields(logrus.Fields{
		"hidden": hidden,
		"score":  r.dealerScore,
	}).Debug("dealt dealer card")

	return nil
}

// maybeStartDealerTurn reveals the hole card and hands control to the dealer
// once every known seat has stood or busted. With no seats at the table the
// round stays in the player turn waiting for the first seat.
func (r *Round) maybeStartDealerTurn() {
	if r.phase != PhasePlayerTurn || len(r.order) == 0 {
		return
	}

	for _, id := range r.order {
		seat := r.seats[id]
		if !seat.busted && !seat.record.Standing() {
			return
		}
	}

	r.dealerHand.Reveal()
	r.dealerScore = Score(r.dealerHand)
	r.phase = PhaseDealerTurn

	r.logger.WithField("dealerScore", r.dealerScore).Info("all seats resolved, dealer turn")
}

// finishRound records the outcome for every seat with a hand and schedules
// the cooldown reset
func (r *Round) finishRound() {
	for _, id := range r.order {
		seat := r.seats[id]
		if _, resolved := r.results[id]; resolved {
			continue
		}

		if len(seat.hand) == 0 {
			continue
		}

		r.results[id] = resolveOutcome(seat.score, r.dealerScore)
	}

	r.phase = PhaseRoundEnd
	r.pendingReset = &pendingReset{After: time.Now().Add(r.cooldown)}

	r.logger.WithFields(logrus.Fields{
		"dealerScore": r.dealerScore,
		"results":     r.results,
	}).Info("round over")
}

// ForceReset abandons the current round and starts a fresh one.
// Used when the card supply is exhausted mid-round.
func (r *Round) ForceReset() error {
	r.logger.Warn("forcing round reset")
	r.pendingReset = nil
	r.clearIntents()
	return r.begin()
}

// clearIntents asks the directory to zero every known seat's counters.
// Failures are logged; the local reset proceeds regardless.
func (r *Round) clearIntents() {
	for _, id := range r.order {
		seat := r.seats[id]
		if err := r.intents.ClearIntent(seat.record); err != nil {
			r.logger.WithError(err).WithField("seat", id).Warn("could not clear seat intent")
		}
	}
}

// Phase returns the current phase
func (r *Round) Phase() Phase {
	return r.phase
}

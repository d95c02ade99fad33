package blackjack

import "time"

// pendingReset is the scheduled end-of-round reset. It is plain data checked
// by Tick rather than a detached timer, so a torn-down or reset engine can
// never have a stale reset fire against fresh state.
type pendingReset struct {
	After time.Time
}

// Interval specifies how often to call Tick()
func (r *Round) Interval() time.Duration {
	return time.Second
}

// Tick drives the time-based transitions: playing out the dealer's turn and
// firing the end-of-round cooldown. It returns true if the state changed.
func (r *Round) Tick() (bool, error) {
	switch r.phase {
	case PhaseDealerTurn:
		if err := r.advanceDealer(); err != nil {
			return false, err
		}

		return true, nil

	case PhaseRoundEnd:
		if r.pendingReset == nil || time.Now().Before(r.pendingReset.After) {
			return false, nil
		}

		r.pendingReset = nil
		r.clearIntents()

		if err := r.begin(); err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

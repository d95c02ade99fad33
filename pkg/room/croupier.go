package room

import (
	"sync"
	"time"

	"blackjack-table-server/pkg/blackjack"
	"blackjack-table-server/pkg/directory"

	"github.com/sirupsen/logrus"
)

// Feed is the poll source for seat intents
type Feed interface {
	// Fetch returns the latest directory snapshot
	Fetch() ([]directory.Seat, error)
}

// Croupier runs the table. It owns the round engine and serializes every
// mutation onto a single run loop: directory polls, timer ticks, and any
// externally requested work all execute one at a time, so no pass ever
// observes another pass mid-mutation.
type Croupier struct {
	logger       logrus.FieldLogger
	round        *blackjack.Round
	feed         Feed
	pollInterval time.Duration

	lock    sync.RWMutex
	clients map[*Client]bool

	// started is only touched from the run loop
	started bool

	execInRunLoop chan func()
	close         chan bool
}

// NewCroupier creates a croupier for the given round.
// If autoStart is false the table waits for StartRound() before polling.
func NewCroupier(logger *logrus.Logger, round *blackjack.Round, feed Feed, pollInterval time.Duration, autoStart bool) *Croupier {
	return &Croupier{
		logger:        logger.WithField("component", "croupier"),
		round:         round,
		feed:          feed,
		pollInterval:  pollInterval,
		clients:       make(map[*Client]bool),
		started:       autoStart,
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// StartShift starts the run loop
func (c *Croupier) StartShift() {
	go c.runLoop()
}

// EndShift tears the table down. The run loop exits and both tickers stop,
// so no poll or pending cooldown can fire against a dead table.
func (c *Croupier) EndShift() {
	close(c.close)
}

func (c *Croupier) runLoop() {
	c.logger.Debug("creating croupier run loop")

	pollTicker := time.NewTicker(c.pollInterval)
	tickTicker := time.NewTicker(c.round.Interval())
	defer pollTicker.Stop()
	defer tickTicker.Stop()

	for {
		select {
		case <-pollTicker.C:
			if !c.started {
				continue
			}

			c.poll()
		case <-tickTicker.C:
			if !c.started {
				continue
			}

			changed, err := c.round.Tick()
			if err != nil {
				c.recoverRound(err)
				continue
			}

			if changed {
				c.broadcast()
			}
		case fn := <-c.execInRunLoop:
			fn()
		case <-c.close:
			c.logger.Debug("terminating croupier run loop")
			return
		}
	}
}

// poll fetches one directory snapshot and applies it to the round.
// A failed or malformed fetch skips the tick; the round keeps its prior
// seat set unchanged.
func (c *Croupier) poll() {
	seats, err := c.feed.Fetch()
	if err != nil {
		c.logger.WithError(err).Warn("could not poll player directory")
		return
	}

	if err := c.round.HandleDirectory(seats); err != nil {
		c.recoverRound(err)
		return
	}

	c.broadcast()
}

// recoverRound handles a round-fatal error, like an exhausted card supply,
// by forcing a reset rather than continuing in an inconsistent phase
func (c *Croupier) recoverRound(err error) {
	c.logger.WithError(err).Error("round failed, forcing reset")

	if err := c.round.ForceReset(); err != nil {
		c.logger.WithError(err).Error("could not reset round")
		return
	}

	c.broadcast()
}

// StartRound opens the table; polling begins on the next tick.
// This method must return quickly.
func (c *Croupier) StartRound() {
	c.execInRunLoop <- func() {
		if c.started {
			return
		}

		c.started = true
		c.logger.Info("table started")
	}
}

// Started reports whether the table has been opened
func (c *Croupier) Started() bool {
	reply := make(chan bool, 1)
	c.execInRunLoop <- func() {
		reply <- c.started
	}

	return <-reply
}

// Snapshot returns the current presentation state.
// It round-trips through the run loop so callers never observe a pass
// mid-mutation.
func (c *Croupier) Snapshot() *blackjack.State {
	reply := make(chan *blackjack.State, 1)
	c.execInRunLoop <- func() {
		reply <- c.round.State()
	}

	return <-reply
}

// Clients will return a slice of connected (at the time) clients
func (c *Croupier) Clients() []*Client {
	c.lock.RLock()
	defer c.lock.RUnlock()

	clients := make([]*Client, 0, len(c.clients))
	for client := range c.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client and sends it the current state.
// This method must return quickly.
func (c *Croupier) AddClient(client *Client) {
	c.lock.Lock()
	client.croupier = c
	c.clients[client] = true
	c.lock.Unlock()

	c.execInRunLoop <- func() {
		client.Send(c.round.State())
	}
}

// RemoveClient removes a client
func (c *Croupier) RemoveClient(client *Client) {
	c.lock.Lock()
	delete(c.clients, client)
	c.lock.Unlock()
}

// NOTE: must only be called from the run loop
func (c *Croupier) broadcast() {
	state := c.round.State()
	for _, client := range c.Clients() {
		if !client.Send(state) {
			c.logger.WithField("client", client.String()).Warn("client send buffer full, dropping state")
		}
	}
}

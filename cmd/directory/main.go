package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"sync"

	"blackjack-table-server/pkg/directory"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// main runs a small in-memory player directory for local development.
// The table server polls GET /api/data and writes intents back with
// POST /api/data, exactly like the real directory.

var addr = flag.String("addr", ":8080", "the listen address")
var teams = flag.Int("teams", 2, "number of demo seats to pre-register")

var teamLabels = []string{"green", "blue", "yellow", "red"}

type store struct {
	lock  sync.Mutex
	seats []directory.Seat
}

func (s *store) snapshot() []directory.Seat {
	s.lock.Lock()
	defer s.lock.Unlock()

	seats := make([]directory.Seat, len(s.seats))
	copy(seats, s.seats)
	return seats
}

// upsert replaces the seat with a matching UUID, or registers a new one
func (s *store) upsert(seat directory.Seat) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for i, existing := range s.seats {
		if existing.UUID == seat.UUID {
			s.seats[i] = seat
			return
		}
	}

	s.seats = append(s.seats, seat)
}

func main() {
	flag.Parse()

	s := &store{}
	n := *teams
	if n > len(teamLabels) {
		n = len(teamLabels)
	}

	for i := 0; i < n; i++ {
		seat := directory.Seat{
			UUID:  uuid.New().String(),
			Team:  teamLabels[i],
			Hit:   "0",
			Stand: "0",
		}
		s.upsert(seat)
		logrus.WithFields(logrus.Fields{
			"uuid": seat.UUID,
			"team": seat.Team,
		}).Info("registered demo seat")
	}

	router := gmux.NewRouter()
	router.Methods(http.MethodGet).Path("/api/data").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.snapshot()); err != nil {
			logrus.WithError(err).Error("could not write seats")
		}
	})
	router.Methods(http.MethodPost).Path("/api/data").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var seat directory.Seat
		if err := json.NewDecoder(r.Body).Decode(&seat); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if seat.UUID == "" {
			seat.UUID = uuid.New().String()
		}

		s.upsert(seat)
		logrus.WithFields(logrus.Fields{
			"uuid":  seat.UUID,
			"team":  seat.Team,
			"hit":   seat.Hit,
			"stand": seat.Stand,
		}).Info("seat updated")

		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:    *addr,
		Handler: cors.AllowAll().Handler(router),
	}

	logrus.WithField("addr", srv.Addr).Info("directory listening")
	logrus.Fatal(srv.ListenAndServe())
}

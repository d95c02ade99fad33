package mux

import (
	"net/http"

	"blackjack-table-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	croupier *room.Croupier
}

// NewMux returns a new HTTP mux serving the table API
func NewMux(version string, croupier *room.Croupier) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		croupier: croupier,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodPost).Path("/table/start").Handler(this.postTableStart())
	r.Methods(http.MethodGet).Path("/table/ws").Handler(this.getTableWS())

	return this
}

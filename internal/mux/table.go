package mux

import "net/http"

type startResponse struct {
	Status  string `json:"status"`
	Started bool   `json:"started"`
}

// getTable returns the current round snapshot
func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.croupier.Snapshot())
	}
}

// postTableStart opens the table. Starting an already-started table is a no-op.
func (m *Mux) postTableStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.croupier.StartRound()

		writeJSON(w, http.StatusOK, startResponse{
			Status:  "OK",
			Started: true,
		})
	}
}

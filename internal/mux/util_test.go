package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blackjack-table-server/internal/rng"
	"blackjack-table-server/pkg/blackjack"
	"blackjack-table-server/pkg/deck"
	"blackjack-table-server/pkg/directory"
	"blackjack-table-server/pkg/room"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type noopIntents struct{}

func (noopIntents) MarkStood(directory.Seat) error   { return nil }
func (noopIntents) ClearIntent(directory.Seat) error { return nil }

type emptyFeed struct{}

func (emptyFeed) Fetch() ([]directory.Seat, error) { return nil, nil }

func newTestMux(t *testing.T) *Mux {
	t.Helper()

	supply := deck.NewSupply(deck.StandardReference(), rng.Crypto{})
	round, err := blackjack.NewRound(logrus.StandardLogger(), supply, noopIntents{}, time.Second*7)
	assert.NoError(t, err)

	croupier := room.NewCroupier(logrus.StandardLogger(), round, emptyFeed{}, time.Second*2, false)
	croupier.StartShift()
	t.Cleanup(croupier.EndShift)

	return NewMux("v-test", croupier)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	case nil:
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}

package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the external player directory over HTTP.
// The request timeout should match the poll interval so that a fetch that
// cannot complete before the next poll tick is abandoned.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a directory client for the given endpoint
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch returns the current directory snapshot, deduplicated to at most one
// seat per team. The first occurrence of a team wins.
func (c *Client) Fetch() ([]Seat, error) {
	resp, err := c.client.Get(c.baseURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var seats []Seat
	if err := json.NewDecoder(resp.Body).Decode(&seats); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	deduped := make([]Seat, 0, len(seats))
	for _, seat := range seats {
		if seen[seat.Team] {
			continue
		}

		seen[seat.Team] = true
		deduped = append(deduped, seat)
	}

	return deduped, nil
}

// MarkStood writes the seat back with stand set, leaving its hit counter alone
func (c *Client) MarkStood(seat Seat) error {
	seat.Stand = "1"
	return c.post(seat)
}

// ClearIntent zeroes the seat's counters
func (c *Client) ClearIntent(seat Seat) error {
	seat.Hit = "0"
	seat.Stand = "0"
	return c.post(seat)
}

func (c *Client) post(seat Seat) error {
	body, err := json.Marshal(seat)
	if err != nil {
		return err
	}

	resp, err := c.client.Post(c.baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	return nil
}

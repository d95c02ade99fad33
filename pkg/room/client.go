package room

import (
	"github.com/gorilla/websocket"
)

// Client is a presentation-layer consumer connected via websocket.
// The engine only pushes state snapshots; clients never mutate the round.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	croupier *Croupier

	remoteAddr string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	remoteAddr := "unknown"
	if conn != nil {
		remoteAddr = conn.RemoteAddr().String()
	}

	return &Client{
		Conn:       conn,
		send:       make(chan interface{}, 256),
		Close:      make(chan string),
		remoteAddr: remoteAddr,
	}
}

// Send queues a message for the web client.
// Returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return c.remoteAddr
}

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/sarchlab/cashsim/metrics"
	"github.com/sarchlab/cashsim/playback"
)

// A BatchHandler consumes decoded event batches. The playback scheduler
// implements it.
type BatchHandler interface {
	ReceiveBatch(batch []playback.Event)
}

// A Client is the websocket side of one playback session. It performs the
// handshake, decodes delivered batches, forwards them to the handler, and
// sends the batch-consumed acknowledgements back.
type Client struct {
	url     string
	tokens  Tokens
	handler BatchHandler

	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewClient creates a Client for the given websocket URL. The batch
// handler is attached with DeliverTo before Run, as the scheduler needs
// the client as its acknowledgement sender first.
func NewClient(url string, tokens Tokens) *Client {
	return &Client{
		url:    url,
		tokens: tokens,
	}
}

// DeliverTo sets the handler decoded batches are forwarded to.
func (c *Client) DeliverTo(handler BatchHandler) {
	c.handler = handler
}

// Connect dials the server and sends the handshake token.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dialing feed %s: %w", c.url, err)
	}

	c.conn = conn

	if err := c.writeToken(c.tokens.Handshake); err != nil {
		conn.Close()
		return fmt.Errorf("sending handshake: %w", err)
	}

	return nil
}

// Run reads the connection until the context ends or the connection
// breaks. Keepalives are counted and dropped. Payloads that do not decode
// as an event array are logged and skipped; the session continues with the
// next message.
func (c *Client) Run(ctx context.Context) error {
	if c.conn == nil {
		return fmt.Errorf("feed client is not connected")
	}
	if c.handler == nil {
		return fmt.Errorf("feed client has no batch handler")
	}

	go func() {
		<-ctx.Done()
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading feed: %w", err)
		}

		if string(data) == c.tokens.KeepAlive {
			metrics.Keepalives.Inc()
			continue
		}

		batch, ok := decodeBatch(data)
		if !ok {
			continue
		}

		metrics.BatchesReceived.Inc()
		c.handler.ReceiveBatch(batch)
	}
}

// decodeBatch rejects malformed payloads before they can reach the
// scheduler.
func decodeBatch(data []byte) ([]playback.Event, bool) {
	var batch []playback.Event
	if err := json.Unmarshal(data, &batch); err != nil {
		log.Printf("feed: dropping payload that is not an event array: %v", err)
		metrics.MalformedPayloads.Inc()
		return nil, false
	}

	for i, evt := range batch {
		if evt.EventType == "" || evt.Time == 0 || evt.Atm == "" {
			log.Printf("feed: dropping batch, event %d misses required fields", i)
			metrics.MalformedPayloads.Inc()
			return nil, false
		}
	}

	return batch, true
}

// SendAck sends the batch-consumed token, implementing
// playback.AckSender. Send failures only log; the worst case is a stalled
// session, recovered by reconnecting.
func (c *Client) SendAck() {
	if err := c.writeToken(c.tokens.Ack); err != nil {
		log.Printf("feed: sending ack failed: %v", err)
		return
	}

	metrics.AcksSent.Inc()
}

func (c *Client) writeToken(token string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteMessage(websocket.TextMessage, []byte(token))
}

// Close closes the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Package feed connects to the simulation server: the websocket event
// feed, and the plain request/response calls that fetch the configuration
// and start a simulation.
package feed

// Tokens are the literal control messages exchanged on the feed
// connection. They are configurable because deployments name them
// differently.
type Tokens struct {
	// Handshake is sent by the client immediately on connection open.
	Handshake string `yaml:"handshake"`

	// KeepAlive is sent by the server to keep the connection warm. It
	// never reaches the scheduler.
	KeepAlive string `yaml:"keepalive"`

	// Ack is sent by the client once a delivered batch is fully drained,
	// asking the server for the next one.
	Ack string `yaml:"ack"`
}

// DefaultTokens returns the token set the reference server uses.
func DefaultTokens() Tokens {
	return Tokens{
		Handshake: "start",
		KeepAlive: "keep-alive",
		Ack:       "next",
	}
}

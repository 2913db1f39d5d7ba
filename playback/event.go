// Package playback paces the replay of simulation event batches and
// projects them onto the visible machine state.
//
// Batches arrive over the feed faster than they should be shown. The
// Scheduler applies one simulated hour per pacing interval, acknowledges a
// batch once it is fully consumed, and leaves the rate of arrival entirely
// to the sender's flow control.
package playback

import "github.com/sarchlab/cashsim/atm"

// An Event is one timestamped occurrence delivered by the feed. Time is
// milliseconds since the epoch and marks the start of a simulated hour;
// all events of one hour share the same Time.
//
// Balance is a pointer so that a balance of zero is distinguishable from
// an event that carries no balance at all.
type Event struct {
	EventType string   `json:"eventType"`
	Time      int64    `json:"time"`
	Atm       atm.Name `json:"atm"`
	Amount    float64  `json:"amount,omitempty"`
	Balance   *float64 `json:"balance,omitempty"`
	State     string   `json:"state,omitempty"`

	// ID is assigned only when the event is classified as an alert. Plain
	// balance events never carry one.
	ID string `json:"id,omitempty"`
}

// HasBalance tells if the event carries a balance update.
func (e Event) HasBalance() bool {
	return e.Balance != nil
}

// HasState tells if the event carries an operational state change.
func (e Event) HasState() bool {
	return e.State != ""
}

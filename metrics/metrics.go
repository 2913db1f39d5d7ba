// Package metrics holds the prometheus instrumentation shared by the feed
// and the playback scheduler. The monitoring server exposes Registry at
// /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry collects all cashsim metrics, kept separate from the default
// registry so that the monitoring server only reports its own.
var Registry = prometheus.NewRegistry()

var (
	// BatchesReceived counts event batches delivered by the feed.
	BatchesReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cashsim_batches_received_total",
		Help: "Event batches delivered over the feed connection.",
	})

	// Keepalives counts keepalive tokens seen on the feed.
	Keepalives = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cashsim_keepalives_total",
		Help: "Keepalive tokens received on the feed connection.",
	})

	// MalformedPayloads counts feed messages that failed to decode.
	MalformedPayloads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cashsim_malformed_payloads_total",
		Help: "Feed messages dropped because they did not decode as an event array.",
	})

	// AcksSent counts batch-consumed acknowledgements sent back.
	AcksSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cashsim_acks_sent_total",
		Help: "Batch-consumed acknowledgements sent to the feed.",
	})

	// EventsApplied counts events folded into entity state.
	EventsApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cashsim_events_applied_total",
		Help: "Events applied to the visible machine state.",
	})

	// AlertsClassified counts events classified as alerts.
	AlertsClassified = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cashsim_alerts_classified_total",
		Help: "Events classified as alerts and appended to the alert log.",
	})

	// PlaySpeed reports the current playback speed multiplier.
	PlaySpeed = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cashsim_play_speed",
		Help: "Current playback speed multiplier.",
	})

	// SimulatedTime reports the simulated time cursor.
	SimulatedTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cashsim_simulated_time_ms",
		Help: "Simulated time cursor in milliseconds since the epoch.",
	})
)

func init() {
	Registry.MustRegister(
		BatchesReceived,
		Keepalives,
		MalformedPayloads,
		AcksSent,
		EventsApplied,
		AlertsClassified,
		PlaySpeed,
		SimulatedTime,
	)
}

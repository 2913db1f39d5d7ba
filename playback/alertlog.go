package playback

// AlertLogCap is the number of alert entries kept.
const AlertLogCap = 100

// An AlertLog is the bounded, recency-ordered log of classified alert
// events. The newest alert is at index 0. When the log overflows, the
// oldest entries by insertion are dropped, regardless of their event time.
type AlertLog struct {
	entries  []Event
	capacity int
}

// NewAlertLog creates an AlertLog with the default capacity.
func NewAlertLog() *AlertLog {
	return &AlertLog{capacity: AlertLogCap}
}

// Extend prepends one hour's alerts. The input is in arrival order; it is
// prepended reversed, so the most recent alert of the hour ends up first.
func (l *AlertLog) Extend(alerts []Event) {
	if len(alerts) == 0 {
		return
	}

	merged := make([]Event, 0, len(alerts)+len(l.entries))
	for i := len(alerts) - 1; i >= 0; i-- {
		merged = append(merged, alerts[i])
	}
	merged = append(merged, l.entries...)

	if len(merged) > l.capacity {
		merged = merged[:l.capacity]
	}

	l.entries = merged
}

// Entries returns a snapshot of the log, newest first.
func (l *AlertLog) Entries() []Event {
	snapshot := make([]Event, len(l.entries))
	copy(snapshot, l.entries)

	return snapshot
}

// Len returns the number of entries in the log.
func (l *AlertLog) Len() int {
	return len(l.entries)
}

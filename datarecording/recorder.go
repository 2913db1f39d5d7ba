package datarecording

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/cashsim/playback"
)

const (
	eventTable = "applied_events"
	alertTable = "alerts"
)

// A Recorder persists the playback of one session: every event applied to
// entity state, and every classified alert with its generated ID.
type Recorder interface {
	playback.Recorder

	// Flush writes all buffered rows into the database.
	Flush()

	// Close flushes and releases the database.
	Close()
}

// New creates a Recorder backed by a SQLite file at path (the .sqlite3
// suffix is appended). An empty path picks a generated file name.
func New(path string) Recorder {
	r := &sqliteRecorder{
		writer: newSQLiteWriter(path),
	}

	r.writer.createTable(eventTable, eventRow{})
	r.writer.createTable(alertTable, alertRow{})

	atexit.Register(func() { r.Flush() })

	return r
}

// eventRow flattens a playback event for storage. HasBalance keeps the
// zero balance distinguishable from an absent one.
type eventRow struct {
	EventType  string
	Time       int64
	Atm        string
	Amount     float64
	Balance    float64
	HasBalance bool
	State      string
}

type alertRow struct {
	ID        string
	EventType string
	Time      int64
	Atm       string
	Amount    float64
}

type sqliteRecorder struct {
	writer *sqliteWriter
}

func (r *sqliteRecorder) RecordEvent(evt playback.Event) {
	row := eventRow{
		EventType: evt.EventType,
		Time:      evt.Time,
		Atm:       string(evt.Atm),
		Amount:    evt.Amount,
		State:     evt.State,
	}

	if evt.HasBalance() {
		row.Balance = *evt.Balance
		row.HasBalance = true
	}

	r.writer.insert(eventTable, row)
}

func (r *sqliteRecorder) RecordAlert(evt playback.Event) {
	r.writer.insert(alertTable, alertRow{
		ID:        evt.ID,
		EventType: evt.EventType,
		Time:      evt.Time,
		Atm:       string(evt.Atm),
		Amount:    evt.Amount,
	})
}

func (r *sqliteRecorder) Flush() {
	r.writer.flush()
}

func (r *sqliteRecorder) Close() {
	r.writer.flush()
	r.writer.DB.Close()
}

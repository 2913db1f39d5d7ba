package playback

import (
	"sync"
	"time"

	"github.com/sarchlab/cashsim/atm"
	"github.com/sarchlab/cashsim/metrics"
)

// pausedPollDelay is how long a batch waits before being re-presented
// while the playback is paused. It is a poll delay, not a playback delay,
// and is unaffected by the speed multiplier.
const pausedPollDelay = 500 * time.Millisecond

// CancelFunc stops a pending continuation. It reports whether the
// continuation was stopped before firing.
type CancelFunc func() bool

// A Deferrer runs a function once after a delay. It is the single
// scheduling primitive the Scheduler uses, so tests can drive
// continuations by hand.
type Deferrer interface {
	Defer(d time.Duration, f func()) CancelFunc
}

// WallClock is the Deferrer used outside of tests.
type WallClock struct{}

// Defer runs f after d on a new goroutine.
func (WallClock) Defer(d time.Duration, f func()) CancelFunc {
	t := time.AfterFunc(d, f)
	return t.Stop
}

// An AckSender delivers the batch-consumed acknowledgement to the
// transport, permitting the sender to produce the next batch.
type AckSender interface {
	SendAck()
}

// A Recorder persists applied events and classified alerts.
type Recorder interface {
	RecordEvent(evt Event)
	RecordAlert(evt Event)
}

// A Scheduler drives the playback of one session. It owns the simulated
// time cursor, the paused flag, the entity set, and the alert log. All
// operations are serialized; a continuation runs to completion before any
// other operation of the session may run.
type Scheduler struct {
	mu sync.Mutex

	policy    *Policy
	projector *Projector
	entities  *atm.Set
	alerts    *AlertLog
	acks      AckSender
	timers    Deferrer
	recorder  Recorder

	simTime int64
	closed  bool
	pending CancelFunc
}

// NewScheduler creates a Scheduler over the given entity set. The session
// starts running at speed 1.
func NewScheduler(
	entities *atm.Set,
	projector *Projector,
	acks AckSender,
	timers Deferrer,
) *Scheduler {
	return &Scheduler{
		policy:    NewPolicy(),
		projector: projector,
		entities:  entities,
		alerts:    NewAlertLog(),
		acks:      acks,
		timers:    timers,
	}
}

// WithStartHour sets the simulated time the session starts at, taken from
// the configuration document's start date.
func (s *Scheduler) WithStartHour(hour int64) *Scheduler {
	s.simTime = hour
	return s
}

// WithRecorder attaches a recorder for applied events and alerts.
func (s *Scheduler) WithRecorder(r Recorder) *Scheduler {
	s.recorder = r
	return s
}

// StartPaused makes the session begin in the paused state.
func (s *Scheduler) StartPaused() *Scheduler {
	s.policy.Pause()
	return s
}

// ReceiveBatch accepts one delivered batch. An empty batch is a no-op.
// While paused, the identical batch is re-presented after the poll delay
// until resumed; nothing is dropped or reordered and the simulated time
// does not move. While running, the first hour slice is applied
// immediately, the remainder is scheduled after the pacing interval, and
// the acknowledgement is sent once no remainder is left.
func (s *Scheduler) ReceiveBatch(batch []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receiveBatch(batch)
}

func (s *Scheduler) receiveBatch(batch []Event) {
	if s.closed || len(batch) == 0 {
		return
	}

	if s.policy.Paused() {
		s.deferBatch(pausedPollDelay, batch)
		return
	}

	if t := batch[0].Time; t > s.simTime {
		s.simTime = t
	}
	metrics.SimulatedTime.Set(float64(s.simTime))

	thisHour, remainder := SplitAtBoundary(batch)
	s.apply(thisHour)

	if len(remainder) > 0 {
		s.deferBatch(s.policy.Interval(), remainder)
		return
	}

	s.acks.SendAck()
}

func (s *Scheduler) apply(hour []Event) {
	_, alerts := s.projector.Project(s.entities, hour)
	s.alerts.Extend(alerts)

	if s.recorder != nil {
		for _, evt := range hour {
			s.recorder.RecordEvent(evt)
		}
		for _, evt := range alerts {
			s.recorder.RecordAlert(evt)
		}
	}

	metrics.EventsApplied.Add(float64(len(hour)))
	metrics.AlertsClassified.Add(float64(len(alerts)))
}

// deferBatch schedules the one pending continuation of the session. The
// continuation re-checks the session state when it fires, so pausing or
// closing in the meantime is safe.
func (s *Scheduler) deferBatch(d time.Duration, batch []Event) {
	s.pending = s.timers.Defer(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.receiveBatch(batch)
	})
}

// Pause freezes the playback. In-flight continuations are not cancelled;
// they re-poll when they fire.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy.Pause()
}

// Resume unfreezes the playback at the exact speed it had before pausing.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy.Resume()
}

// Paused tells if the playback is paused.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.policy.Paused()
}

// Accelerate doubles the playback speed for future scheduling decisions.
// An already-pending continuation keeps its original delay.
func (s *Scheduler) Accelerate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy.Accelerate()
	metrics.PlaySpeed.Set(s.policy.Speed())
}

// Decelerate halves the playback speed for future scheduling decisions.
func (s *Scheduler) Decelerate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy.Decelerate()
	metrics.PlaySpeed.Set(s.policy.Speed())
}

// SetSpeed replaces the speed multiplier. Invalid values are rejected and
// the prior speed is kept.
func (s *Scheduler) SetSpeed(speed float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.policy.SetSpeed(speed)
	if ok {
		metrics.PlaySpeed.Set(s.policy.Speed())
	}

	return ok
}

// Speed returns the current speed multiplier.
func (s *Scheduler) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.policy.Speed()
}

// Interval returns the current pacing interval, or Frozen while paused.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.policy.Interval()
}

// Now returns the simulated time cursor in epoch milliseconds.
func (s *Scheduler) Now() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.simTime
}

// Entities returns a snapshot of the entity pointers.
func (s *Scheduler) Entities() []*atm.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.entities.All()
}

// Alerts returns a snapshot of the alert log, newest first.
func (s *Scheduler) Alerts() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alerts.Entries()
}

// Close ends the session. The pending continuation, if any, is cancelled,
// and continuations that already fired become no-ops, so a closed session
// can never touch a successor's entity set.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
}

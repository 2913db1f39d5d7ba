package playback

import (
	"log"

	"github.com/rs/xid"

	"github.com/sarchlab/cashsim/atm"
)

// DefaultAlertTypes are the event types classified as alerts when no
// custom set is configured.
var DefaultAlertTypes = []string{
	"out-of-money",
	"not-enough-money",
	"refill",
}

// IDGenerator generates the unique IDs tagged onto alert events.
type IDGenerator interface {
	Generate() string
}

type xidGenerator struct{}

func (xidGenerator) Generate() string {
	return xid.New().String()
}

// A Projector folds one hour of events into updated entity state and
// extracts the alert events.
type Projector struct {
	alertTypes map[string]struct{}
	ids        IDGenerator
}

// NewProjector creates a Projector that classifies the given event types
// as alerts.
func NewProjector(alertTypes []string) *Projector {
	p := &Projector{
		alertTypes: make(map[string]struct{}, len(alertTypes)),
		ids:        xidGenerator{},
	}

	for _, t := range alertTypes {
		p.alertTypes[t] = struct{}{}
	}

	return p
}

// WithIDGenerator replaces the alert ID generator. Tests use this to get
// deterministic IDs.
func (p *Projector) WithIDGenerator(ids IDGenerator) *Projector {
	p.ids = ids
	return p
}

// Project applies one hour of events to the entity set. For each machine,
// the last balance event and the last state event in batch order win.
// Machines without events this hour keep their identity, so consumers can
// diff by pointer. Events naming a machine that is not in the set are
// dropped.
//
// The returned alerts carry freshly generated IDs and preserve arrival
// order.
func (p *Projector) Project(
	entities *atm.Set,
	hour []Event,
) (updated []*atm.Entity, alerts []Event) {
	lastBalance := make(map[atm.Name]float64)
	lastState := make(map[atm.Name]string)

	var touched []atm.Name
	seen := make(map[atm.Name]struct{})

	for _, evt := range hour {
		if _, isAlert := p.alertTypes[evt.EventType]; isAlert {
			evt.ID = p.ids.Generate()
			alerts = append(alerts, evt)
		}

		if !evt.HasBalance() && !evt.HasState() {
			continue
		}

		if evt.HasBalance() {
			lastBalance[evt.Atm] = *evt.Balance
		}
		if evt.HasState() {
			lastState[evt.Atm] = evt.State
		}

		if _, ok := seen[evt.Atm]; !ok {
			seen[evt.Atm] = struct{}{}
			touched = append(touched, evt.Atm)
		}
	}

	for _, name := range touched {
		entity, ok := entities.ByName(name)
		if !ok {
			log.Printf("playback: event for unknown atm %s ignored", name)
			continue
		}

		next := entity.Clone()
		if balance, ok := lastBalance[name]; ok {
			next.CurrentAmount = balance
		}
		if state, ok := lastState[name]; ok {
			next.OperationalState = state
		}

		entities.Replace(next)
		updated = append(updated, next)
	}

	return updated, alerts
}

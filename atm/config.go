package atm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Millis is a point in time as milliseconds since the epoch. The
// configuration document writes dates either as numbers or as RFC 3339
// strings, so decoding accepts both.
type Millis int64

// UnmarshalJSON decodes a millisecond number or an RFC 3339 string.
func (m *Millis) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("date must be RFC 3339 or epoch millis: %w", err)
		}

		*m = Millis(t.UnixMilli())
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("date must be RFC 3339 or epoch millis: %w", err)
	}

	*m = Millis(n)
	return nil
}

// HourMillis is the length of one simulated hour in wire time units.
const HourMillis = int64(time.Hour / time.Millisecond)

// Hour truncates the time down to the start of its hour.
func (m Millis) Hour() int64 {
	return int64(m) - int64(m)%HourMillis
}

// Defaults holds the per-machine configuration values used when a machine
// does not override them.
type Defaults struct {
	RefillAmount            float64         `json:"refillAmount"`
	RefillDelayHours        int             `json:"refillDelayHours"`
	Load                    Load            `json:"load"`
	ScheduledRefillInterval json.RawMessage `json:"scheduledRefillInterval,omitempty"`
}

// MachineConfig is the configuration of one machine within the document.
// Optional fields are pointers so that an explicit zero (e.g., load "Off")
// is distinguishable from an omitted field.
type MachineConfig struct {
	Name             Name            `json:"name"`
	Location         Location        `json:"location"`
	RefillAmount     *float64        `json:"refillAmount,omitempty"`
	RefillDelayHours *int            `json:"refillDelayHours,omitempty"`
	Load             *Load           `json:"load,omitempty"`
	HourlyLoads      map[string]Load `json:"hourlyLoads,omitempty"`
}

// Config is the simulation configuration document. Only atms, the dates,
// and the defaults are consumed here; withdrawal parameters are forwarded
// to the simulation server untouched.
type Config struct {
	Atms       []MachineConfig `json:"atms"`
	StartDate  Millis          `json:"startDate"`
	EndDate    Millis          `json:"endDate"`
	Withdrawal json.RawMessage `json:"withdrawal,omitempty"`
	Default    Defaults        `json:"default"`
}

// StartHour returns the simulated hour the playback starts at.
func (c *Config) StartHour() int64 {
	return c.StartDate.Hour()
}

// Entities builds the entity set described by the document. Machines start
// fully loaded and operational; the event stream takes over from there.
func (c *Config) Entities() []*Entity {
	entities := make([]*Entity, 0, len(c.Atms))

	for _, mc := range c.Atms {
		e := &Entity{
			Name:             mc.Name,
			Location:         mc.Location,
			RefillAmount:     c.Default.RefillAmount,
			RefillDelayHours: c.Default.RefillDelayHours,
			DefaultLoad:      c.Default.Load,
			OperationalState: Operational,
		}

		if mc.RefillAmount != nil {
			e.RefillAmount = *mc.RefillAmount
		}
		if mc.RefillDelayHours != nil {
			e.RefillDelayHours = *mc.RefillDelayHours
		}
		if mc.Load != nil {
			e.DefaultLoad = *mc.Load
		}

		e.HourlyLoads = parseHourlyLoads(mc.HourlyLoads)
		e.CurrentAmount = e.RefillAmount

		entities = append(entities, e)
	}

	return entities
}

func parseHourlyLoads(raw map[string]Load) map[int64]Load {
	if len(raw) == 0 {
		return nil
	}

	loads := make(map[int64]Load, len(raw))
	for hourStr, load := range raw {
		hour, err := strconv.ParseInt(hourStr, 10, 64)
		if err != nil {
			// A key that is not an hour timestamp is dropped, matching the
			// silent unknown-hour lookup behavior.
			continue
		}
		loads[hour] = load
	}

	return loads
}

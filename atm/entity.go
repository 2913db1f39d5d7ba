// Package atm defines the cash machine entities shown on the map and the
// configuration document they are built from.
package atm

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Operational is the state of a machine that serves withdrawals normally.
// Any other state raises the alert flag on the map icon.
const Operational = "Operational"

// Name identifies one machine across its lifetime. The feed occasionally
// writes names as bare numbers, so decoding accepts either form.
type Name string

// UnmarshalJSON accepts both "123" and 123.
func (n *Name) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Name(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("atm name must be a string or a number: %w", err)
	}
	*n = Name(num.String())

	return nil
}

// Location is a latitude/longitude pair. The configuration document writes
// it as a two-element array.
type Location struct {
	Lat float64
	Lng float64
}

// UnmarshalJSON decodes a [lat, lng] array.
func (l *Location) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("location must be a [lat, lng] array: %w", err)
	}

	l.Lat = pair[0]
	l.Lng = pair[1]

	return nil
}

// MarshalJSON encodes the location back as a [lat, lng] array.
func (l Location) MarshalJSON() ([]byte, error) {
	return []byte("[" +
		strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(l.Lng, 'f', -1, 64) + "]"), nil
}

// An Entity is one cash machine. Name is the stable identity. CurrentAmount
// and OperationalState are derived from the event stream; every other field
// is configuration, fixed once a simulation starts.
type Entity struct {
	Name             Name
	Location         Location
	RefillAmount     float64
	RefillDelayHours int
	DefaultLoad      Load
	HourlyLoads      map[int64]Load

	CurrentAmount    float64
	OperationalState string
}

// LoadAt returns the load configured for the given hour timestamp, falling
// back to the default load. An unknown hour is not an error.
func (e *Entity) LoadAt(hour int64) Load {
	if l, ok := e.HourlyLoads[hour]; ok {
		return l
	}

	return e.DefaultLoad
}

// Clone returns a copy of the entity. The hourly load map is shared, as it
// is never mutated after a simulation starts.
func (e *Entity) Clone() *Entity {
	c := *e
	return &c
}

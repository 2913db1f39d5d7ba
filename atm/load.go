package atm

// Load is the expected withdrawal traffic level of a machine during one
// hour. The values match the options offered by the viewer UI.
type Load int

// The load levels selectable per machine and per hour.
const (
	LoadOff     Load = 0
	LoadVeryLow Load = 1
	LoadLow     Load = 2
	LoadMedium  Load = 3
	LoadHigh    Load = 5
)

// Label returns the UI label of the load level.
func (l Load) Label() string {
	switch l {
	case LoadOff:
		return "Off"
	case LoadVeryLow:
		return "Very low"
	case LoadLow:
		return "Low"
	case LoadMedium:
		return "Medium"
	case LoadHigh:
		return "High"
	default:
		return "Unknown"
	}
}

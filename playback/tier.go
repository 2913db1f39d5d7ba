package playback

import "github.com/sarchlab/cashsim/atm"

// Tier is the fill-level category of a machine icon.
type Tier int

// The four fill levels, from nearly empty to fully loaded.
const (
	TierLow Tier = iota
	TierMid
	TierHigh
	TierFull
)

// String returns the tier name used in icon asset names.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierMid:
		return "Mid"
	case TierHigh:
		return "High"
	case TierFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// A TierSelector picks the icon tier of a machine. It is pure; it is
// called on every render and must not touch entity state.
type TierSelector struct {
	// DefaultRefill is the refill capacity assumed for machines that do
	// not configure one.
	DefaultRefill float64
}

// Select maps the current amount and refill capacity to a tier, plus the
// alert flag that doubles the tier space. The boundaries are exclusive on
// the upper end: exactly 10% is Mid, exactly 50% is High, exactly 100% is
// Full.
func (s TierSelector) Select(
	currentAmount, refillAmount float64,
	state string,
) (Tier, bool) {
	alert := state != atm.Operational

	refill := refillAmount
	if refill == 0 {
		refill = s.DefaultRefill
	}
	if refill <= 0 {
		return TierLow, alert
	}

	fillPct := currentAmount / refill * 100

	switch {
	case fillPct < 10:
		return TierLow, alert
	case fillPct < 50:
		return TierMid, alert
	case fillPct < 100:
		return TierHigh, alert
	default:
		return TierFull, alert
	}
}

// SelectFor picks the tier for an entity.
func (s TierSelector) SelectFor(e *atm.Entity) (Tier, bool) {
	return s.Select(e.CurrentAmount, e.RefillAmount, e.OperationalState)
}

package domain

// Frequency describes how often a medication is taken.
// Values are either one of the presets below or free text entered by
// the user at confirmation time.
type Frequency string

// Frequency presets offered by the confirmation form.
const (
	// FrequencyOnceDaily is the default schedule.
	FrequencyOnceDaily Frequency = "1 Pill Daily"

	// FrequencyTwiceDaily is one pill, morning and evening.
	FrequencyTwiceDaily Frequency = "1 Pill Twice Daily"

	// FrequencyTwoPillsDaily is two pills in a single dose.
	FrequencyTwoPillsDaily Frequency = "2 Pills Daily"

	// FrequencyAsNeeded has no fixed schedule.
	FrequencyAsNeeded Frequency = "As Needed"
)

// FrequencyPresets returns the presets in display order.
func FrequencyPresets() []Frequency {
	return []Frequency{
		FrequencyOnceDaily,
		FrequencyTwiceDaily,
		FrequencyTwoPillsDaily,
		FrequencyAsNeeded,
	}
}

// IsPreset returns true if the frequency is one of the presets.
func (f Frequency) IsPreset() bool {
	switch f {
	case FrequencyOnceDaily, FrequencyTwiceDaily, FrequencyTwoPillsDaily, FrequencyAsNeeded:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Frequency) String() string {
	return string(f)
}

package domain

// Personality is a named tone applied to the system instruction when
// answering questions. It does not affect summarisation.
type Personality string

// Available personalities.
const (
	// PersonalityNeutral is the default conversational tone.
	PersonalityNeutral Personality = "neutral"

	// PersonalityFormal answers in a professional, formal register.
	PersonalityFormal Personality = "formal"

	// PersonalityCasual answers in a friendly, informal register.
	PersonalityCasual Personality = "casual"

	// PersonalityTechnical answers with technical, detail-oriented focus.
	PersonalityTechnical Personality = "technical"
)

// IsValid returns true if the personality is recognised.
func (p Personality) IsValid() bool {
	switch p {
	case PersonalityNeutral, PersonalityFormal, PersonalityCasual, PersonalityTechnical:
		return true
	default:
		return false
	}
}

// OrDefault returns the personality itself when valid, and Neutral for an
// unset or unrecognised value.
func (p Personality) OrDefault() Personality {
	if p.IsValid() {
		return p
	}
	return PersonalityNeutral
}

// String returns the string representation.
func (p Personality) String() string {
	return string(p)
}

// Description returns a human-readable description of the tone.
func (p Personality) Description() string {
	switch p {
	case PersonalityNeutral:
		return "Neutral (balanced answers)"
	case PersonalityFormal:
		return "Formal (professional register)"
	case PersonalityCasual:
		return "Casual (friendly register)"
	case PersonalityTechnical:
		return "Technical (detail-oriented)"
	default:
		return "Unknown"
	}
}

// Personalities returns all personalities in display order.
func Personalities() []Personality {
	return []Personality{
		PersonalityNeutral,
		PersonalityFormal,
		PersonalityCasual,
		PersonalityTechnical,
	}
}

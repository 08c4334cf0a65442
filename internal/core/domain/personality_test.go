package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonality_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		p     Personality
		valid bool
	}{
		{"neutral", PersonalityNeutral, true},
		{"formal", PersonalityFormal, true},
		{"casual", PersonalityCasual, true},
		{"technical", PersonalityTechnical, true},
		{"empty", Personality(""), false},
		{"unknown", Personality("sarcastic"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.p.IsValid())
		})
	}
}

func TestPersonality_OrDefault(t *testing.T) {
	assert.Equal(t, PersonalityFormal, PersonalityFormal.OrDefault())
	assert.Equal(t, PersonalityNeutral, Personality("").OrDefault())
	assert.Equal(t, PersonalityNeutral, Personality("nope").OrDefault())
}

func TestPersonalities_Order(t *testing.T) {
	ps := Personalities()

	assert.Equal(t, []Personality{
		PersonalityNeutral, PersonalityFormal, PersonalityCasual, PersonalityTechnical,
	}, ps)
}

func TestSummaryKind_IsValid(t *testing.T) {
	assert.True(t, SummaryShort.IsValid())
	assert.True(t, SummaryDetailed.IsValid())
	assert.True(t, SummaryTabular.IsValid())
	assert.False(t, SummaryKind("long").IsValid())
}

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
)

func TestParseStatType(t *testing.T) {
	testCases := []struct {
		input    string
		expected entities.StatType
	}{
		{"strength", entities.StatStrength},
		{"agility", entities.StatAgility},
		{"intelligence", entities.StatIntelligence},
		{"Strength", entities.StatUnknown},
		{"charisma", entities.StatUnknown},
		{"", entities.StatUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, entities.ParseStatType(tc.input))
		})
	}
}

func TestCharacterIsToolkitEntity(t *testing.T) {
	c := &entities.Character{ID: 42}
	assert.Equal(t, "42", c.GetID())
	assert.Equal(t, entities.EntityTypeCharacter, c.GetType())
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBusinessCategory(t *testing.T) {
	for _, c := range BusinessCategories {
		assert.True(t, ValidBusinessCategory(c), c)
	}
	assert.False(t, ValidBusinessCategory(""))
	assert.False(t, ValidBusinessCategory("contractor"))
	assert.False(t, ValidBusinessCategory("Astrology"))
}

func TestValidDevotionalType(t *testing.T) {
	for _, d := range DevotionalTypes {
		assert.True(t, ValidDevotionalType(d), d)
	}
	assert.False(t, ValidDevotionalType(""))
	assert.False(t, ValidDevotionalType("devotional"))
}

func TestSubscriberTokenAssignedOnce(t *testing.T) {
	s := EmailSubscriber{Email: "jane@example.com"}
	assert.NoError(t, s.BeforeCreate(nil))
	assert.NotEmpty(t, s.UnsubscribeToken)

	first := s.UnsubscribeToken
	assert.NoError(t, s.BeforeCreate(nil))
	assert.Equal(t, first, s.UnsubscribeToken)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModerationKind(t *testing.T) {
	for _, name := range []string{"events", "business_listings", "devotional_gatherings"} {
		kind, err := ParseModerationKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, kind.String())
	}
}

func TestParseModerationKindRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "users", "blog_posts", "EVENTS", "events; DROP TABLE events"} {
		_, err := ParseModerationKind(name)
		assert.Error(t, err, name)
	}
}

func TestModerationKindModelBinding(t *testing.T) {
	assert.IsType(t, &Event{}, ModerateEvents.model())
	assert.IsType(t, &BusinessListing{}, ModerateBusinessListings.model())
	assert.IsType(t, &DevotionalGathering{}, ModerateDevotionalGatherings.model())
}

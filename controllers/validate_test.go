package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flbahai/community/models"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.True(t, ValidEmail("j.doe+tag@sub.example.org"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("no-at-sign"))
	assert.False(t, ValidEmail("two words@example.com"))
	assert.False(t, ValidEmail("jane@nodot"))
}

func TestValidateEventSubmission(t *testing.T) {
	start := time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC)

	event, msg := validateEventSubmission(eventSubmissionRequest{
		Title:     "  Community Picnic ",
		StartTime: &start,
	})
	require.Empty(t, msg)
	assert.Equal(t, "Community Picnic", event.Title)
	assert.Equal(t, models.StatusPending, event.Status)
	assert.Nil(t, event.Description)
	assert.False(t, event.IsHolyDay)

	_, msg = validateEventSubmission(eventSubmissionRequest{StartTime: &start})
	assert.Equal(t, "Title and start time are required.", msg)

	_, msg = validateEventSubmission(eventSubmissionRequest{Title: "Picnic"})
	assert.Equal(t, "Title and start time are required.", msg)
}

func TestValidateListingSubmission(t *testing.T) {
	listing, msg := validateListingSubmission(listingSubmissionRequest{
		BusinessName: "Acme Plumbing",
		Category:     "Contractor",
		Phone:        " 555-0100 ",
	})
	require.Empty(t, msg)
	assert.Equal(t, models.StatusPending, listing.Status)
	require.NotNil(t, listing.Phone)
	assert.Equal(t, "555-0100", *listing.Phone)

	_, msg = validateListingSubmission(listingSubmissionRequest{Category: "Contractor"})
	assert.Equal(t, "Business name and category are required.", msg)

	_, msg = validateListingSubmission(listingSubmissionRequest{
		BusinessName: "Acme",
		Category:     "Quantum Services",
	})
	assert.Equal(t, "Invalid category.", msg)
}

func TestValidateGatheringSubmission(t *testing.T) {
	g, msg := validateGatheringSubmission(gatheringSubmissionRequest{
		Title:    "Friday Devotional",
		Type:     "Devotional",
		Schedule: "Fridays at 7pm",
	})
	require.Empty(t, msg)
	assert.Equal(t, models.RecurrenceWeekly, g.Recurrence)
	assert.Equal(t, models.StatusPending, g.Status)

	_, msg = validateGatheringSubmission(gatheringSubmissionRequest{
		Title: "Friday Devotional",
		Type:  "Devotional",
	})
	assert.Equal(t, "Title, type, and schedule are required.", msg)

	_, msg = validateGatheringSubmission(gatheringSubmissionRequest{
		Title:    "Friday Devotional",
		Type:     "Seance",
		Schedule: "Fridays",
	})
	assert.Equal(t, "Invalid gathering type.", msg)
}

func TestValidateThreadAndReply(t *testing.T) {
	thread, msg := validateThread(threadRequest{Title: " Welcome ", Body: "Hello everyone"})
	require.Empty(t, msg)
	assert.Equal(t, "Welcome", thread.Title)

	_, msg = validateThread(threadRequest{Title: "Welcome"})
	assert.Equal(t, "Title and body are required.", msg)

	reply, msg := validateReply(replyRequest{ThreadID: 3, Body: "Agreed"})
	require.Empty(t, msg)
	assert.Equal(t, uint(3), reply.ThreadID)

	_, msg = validateReply(replyRequest{Body: "Agreed"})
	assert.Equal(t, "Thread ID and body are required.", msg)

	_, msg = validateReply(replyRequest{ThreadID: 3, Body: "   "})
	assert.Equal(t, "Thread ID and body are required.", msg)
}

func TestValidateContact(t *testing.T) {
	msgRow, msg := validateContact(contactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Just saying hi.",
	})
	require.Empty(t, msg)
	assert.False(t, msgRow.Read)

	_, msg = validateContact(contactRequest{Name: "Jane", Email: "jane@example.com", Subject: "Hello"})
	assert.Equal(t, "All fields are required.", msg)
}

package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flbahai/community/models"
)

func threadItem(id uint, pinned bool, createdAt time.Time) ThreadListItem {
	return ThreadListItem{
		BoardThread: models.BoardThread{
			ID:        id,
			Title:     "t",
			Body:      "b",
			Pinned:    pinned,
			CreatedAt: createdAt,
		},
	}
}

func idsOf(items []ThreadListItem) []uint {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestSortThreadsPinnedFirstThenRecency(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	items := []ThreadListItem{
		threadItem(1, false, base.Add(3*time.Hour)),
		threadItem(2, true, base),
		threadItem(3, false, base.Add(1*time.Hour)),
		threadItem(4, true, base.Add(2*time.Hour)),
	}

	SortThreads(items)

	assert.Equal(t, []uint{4, 2, 1, 3}, idsOf(items))
}

func TestSortThreadsStableForEqualTimestamps(t *testing.T) {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := []ThreadListItem{
		threadItem(10, false, at),
		threadItem(11, false, at),
		threadItem(12, false, at),
	}

	SortThreads(items)

	assert.Equal(t, []uint{10, 11, 12}, idsOf(items))
}

func TestSortThreadsEmpty(t *testing.T) {
	var items []ThreadListItem
	SortThreads(items)
	assert.Empty(t, items)
}

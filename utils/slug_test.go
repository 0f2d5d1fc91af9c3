package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "community-picnic", Slugify("Community Picnic"))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World!  "))
	assert.Equal(t, "a-b-c", Slugify("a/b_c"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "ruhi-book-1", Slugify("Ruhi Book 1"))
}

func TestNextSlugNoCollision(t *testing.T) {
	slug, err := NextSlug("community-picnic", func(string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "community-picnic", slug)
}

func TestNextSlugAppendsSuffixOnCollision(t *testing.T) {
	taken := map[string]bool{
		"community-picnic":   true,
		"community-picnic-1": true,
	}
	slug, err := NextSlug("community-picnic", func(c string) (bool, error) {
		return taken[c], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "community-picnic-2", slug)
}

func TestNextSlugGivesUpAfterCap(t *testing.T) {
	calls := 0
	_, err := NextSlug("dup", func(string) (bool, error) {
		calls++
		return true, nil
	})
	require.Error(t, err)
	assert.Equal(t, MaxSlugAttempts, calls)
}

func TestNextSlugPropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	_, err := NextSlug("x", func(string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestNextSlugEmptyBase(t *testing.T) {
	slug, err := NextSlug("", func(string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "post", slug)
}

package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// MaxSlugAttempts bounds the collision retry loop. Exceeding it means
// something pathological is generating identical titles and the write fails
// rather than spinning.
const MaxSlugAttempts = 50

// Slugify lowercases a title and reduces it to hyphen separated ASCII words.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NextSlug returns base if unused, otherwise base-1, base-2, ... up to
// MaxSlugAttempts. exists reports whether a candidate slug is already taken.
func NextSlug(base string, exists func(string) (bool, error)) (string, error) {
	if base == "" {
		base = "post"
	}
	candidate := base
	for i := 0; i < MaxSlugAttempts; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+1)
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, MaxSlugAttempts)
}

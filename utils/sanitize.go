package utils

import "github.com/microcosm-cc/bluemonday"

// Two policies cover all user generated content: body text keeps the safe
// UGC subset (links, emphasis, lists), while single-line fields like titles
// and names carry no markup at all.
var (
	ugcPolicy   = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// Sanitize strips unsafe HTML from body text, keeping the UGC subset.
func Sanitize(input string) string {
	return ugcPolicy.Sanitize(input)
}

// SanitizePlain strips all markup. For titles, names and other one-liners.
func SanitizePlain(input string) string {
	return plainPolicy.Sanitize(input)
}

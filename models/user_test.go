package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		email    string
		fallback string
		want     string
	}{
		{"full name", "Jane", "Doe", "jane@example.com", "Anonymous", "Jane Doe"},
		{"first only", "Jane", "", "jane@example.com", "Anonymous", "Jane"},
		{"last only", "", "Doe", "jane@example.com", "Anonymous", "Doe"},
		{"email local part", "", "", "jane.doe@example.com", "Anonymous", "jane.doe"},
		{"whitespace names fall through", "  ", " ", "jane@example.com", "Anonymous", "jane"},
		{"fallback", "", "", "", "Anonymous", "Anonymous"},
		{"member fallback", "", "", "", "Member", "Member"},
		{"email without at sign", "", "", "not-an-email", "Anonymous", "Anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDisplayName(tt.first, tt.last, tt.email, tt.fallback))
		})
	}
}

func TestUserDisplayName(t *testing.T) {
	u := User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	assert.Equal(t, "Jane Doe", u.DisplayName("Anonymous"))

	u = User{Email: "jane@example.com"}
	assert.Equal(t, "jane", u.DisplayName("Anonymous"))
}

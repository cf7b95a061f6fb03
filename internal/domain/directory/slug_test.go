//go:build unit

package directory_test

import (
	"testing"

	"studiobook/internal/domain/directory"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple name", in: "The Dojo", want: "the-dojo"},
		{name: "punctuation stripped", in: "The Dojo!", want: "the-dojo"},
		{name: "apostrophes stripped", in: "Mike's Room", want: "mikes-room"},
		{name: "whitespace runs collapse", in: "  Big   Sound   Studio  ", want: "big-sound-studio"},
		{name: "underscores become hyphens", in: "east_side_sound", want: "east-side-sound"},
		{name: "existing hyphens collapse", in: "lo--fi -- lab", want: "lo-fi-lab"},
		{name: "edge hyphens trimmed", in: "-edge case-", want: "edge-case"},
		{name: "only punctuation", in: "!!!", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, directory.Slugify(tc.in))
		})
	}
}

func TestAssignUniqueSlug(t *testing.T) {
	t.Run("free base is kept", func(t *testing.T) {
		got := directory.AssignUniqueSlug("the-dojo", map[string]string{}, "u1")
		assert.Equal(t, "the-dojo", got)
	})

	t.Run("own slug is not a collision", func(t *testing.T) {
		existing := map[string]string{"the-dojo": "u1"}
		got := directory.AssignUniqueSlug("the-dojo", existing, "u1")
		assert.Equal(t, "the-dojo", got)
	})

	t.Run("taken base gets a numeric suffix", func(t *testing.T) {
		existing := map[string]string{"the-dojo": "u1"}
		got := directory.AssignUniqueSlug("the-dojo", existing, "u2")
		assert.Equal(t, "the-dojo-1", got)
	})

	t.Run("counter skips taken suffixes", func(t *testing.T) {
		existing := map[string]string{
			"the-dojo":   "u1",
			"the-dojo-1": "u2",
			"the-dojo-2": "u3",
		}
		got := directory.AssignUniqueSlug("the-dojo", existing, "u4")
		assert.Equal(t, "the-dojo-3", got)
	})
}

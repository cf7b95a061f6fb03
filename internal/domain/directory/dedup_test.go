//go:build unit

package directory_test

import (
	"testing"
	"time"

	"studiobook/internal/domain/directory"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func studioAt(id, slug string, touched time.Time) directory.Studio {
	return directory.Studio{ID: id, Name: slug, Slug: slug, CreatedAt: touched}
}

func TestDeduplicate(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("latest touched record wins", func(t *testing.T) {
		older := studioAt("s1", "the-dojo", base)
		newer := studioAt("s2", "the-dojo", base.Add(time.Hour))

		got := directory.Deduplicate([]directory.Studio{older, newer})
		assert.Len(t, got, 1)
		assert.Equal(t, "s2", got[0].ID)
	})

	t.Run("updatedAt beats createdAt fallback", func(t *testing.T) {
		updated := base.Add(2 * time.Hour)
		older := studioAt("s1", "the-dojo", base)
		older.UpdatedAt = &updated
		newer := studioAt("s2", "the-dojo", base.Add(time.Hour))

		got := directory.Deduplicate([]directory.Studio{older, newer})
		assert.Len(t, got, 1)
		assert.Equal(t, "s1", got[0].ID)
	})

	t.Run("slug-less records pass through", func(t *testing.T) {
		noSlug := directory.Studio{ID: "s1", Name: "Unnamed", CreatedAt: base}
		alsoNoSlug := directory.Studio{ID: "s2", Name: "Unnamed", CreatedAt: base}

		got := directory.Deduplicate([]directory.Studio{noSlug, alsoNoSlug})
		assert.Len(t, got, 2)
	})

	t.Run("distinct slugs keep input order", func(t *testing.T) {
		in := []directory.Studio{
			studioAt("s1", "alpha", base),
			studioAt("s2", "beta", base),
			studioAt("s3", "gamma", base),
		}
		got := directory.Deduplicate(in)
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("unexpected reordering (-want +got):\n%s", diff)
		}
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		in := []directory.Studio{
			studioAt("s1", "the-dojo", base),
			studioAt("s2", "the-dojo", base.Add(time.Hour)),
			studioAt("s3", "beta", base),
		}
		once := directory.Deduplicate(in)
		twice := directory.Deduplicate(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("second pass changed the result (-once +twice):\n%s", diff)
		}
	})
}

package directory

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Sluggable is satisfied by User and Studio. Deduplication keys on SlugKey
// and keeps the record with the latest LastTouched.
type Sluggable interface {
	SlugKey() string
	EntityID() string
	LastTouched() time.Time
}

var (
	nonWordRun   = regexp.MustCompile(`[^\w\s-]`)
	separatorRun = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify normalizes a display name into a lowercase hyphenated token:
// non-word characters stripped, whitespace/underscore runs collapsed to a
// single hyphen, edge hyphens trimmed.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonWordRun.ReplaceAllString(s, "")
	s = separatorRun.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// AssignUniqueSlug returns the first of base, base-1, base-2, ... not held
// by any record other than ownID.
func AssignUniqueSlug(base string, existing map[string]string, ownID string) string {
	candidate := base
	for counter := 1; ; counter++ {
		holder, taken := existing[candidate]
		if !taken || holder == ownID {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

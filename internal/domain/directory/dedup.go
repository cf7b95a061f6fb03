package directory

// Deduplicate collapses records sharing a slug, keeping the most recently
// touched one. Records without a slug pass through untouched; they are never
// used as a dedup key. Input order is preserved for the surviving records,
// which makes the operation idempotent: running it on its own output changes
// nothing.
func Deduplicate[T Sluggable](records []T) []T {
	winners := make(map[string]T, len(records))
	for _, rec := range records {
		slug := rec.SlugKey()
		if slug == "" {
			continue
		}
		current, seen := winners[slug]
		if !seen || rec.LastTouched().After(current.LastTouched()) {
			winners[slug] = rec
		}
	}

	out := make([]T, 0, len(records))
	emitted := make(map[string]bool, len(winners))
	for _, rec := range records {
		slug := rec.SlugKey()
		if slug == "" {
			out = append(out, rec)
			continue
		}
		if emitted[slug] {
			continue
		}
		if winners[slug].EntityID() == rec.EntityID() {
			out = append(out, rec)
			emitted[slug] = true
		}
	}
	return out
}

package renamer

import "os"

// Apply executes plan in order, renaming OldPath to NewPath for every
// non-collision entry. It stops at the first filesystem error and returns
// the index of the last entry successfully applied (-1 if none). Entries
// marked Collision are skipped without counting as a failure, matching
// spec section 4.8's "skipped unless suffixing" rule.
func Apply(plan Plan) (int, error) {
	lastApplied := -1
	for i, entry := range plan {
		if entry.Collision {
			continue
		}
		if err := os.Rename(entry.OldPath, entry.NewPath); err != nil {
			return lastApplied, err
		}
		lastApplied = i
	}
	return lastApplied, nil
}

// Simulate reports what Apply would do without touching the filesystem:
// every non-collision entry, in plan order.
func Simulate(plan Plan) []Entry {
	out := make([]Entry, 0, len(plan))
	for _, entry := range plan {
		if entry.Collision {
			continue
		}
		out = append(out, entry)
	}
	return out
}

package reconcile

import "sort"

// Summarize counts diffs per status and groups them by book.
// New files keep a per-book file count; existing and missing files are only
// reduced to the set of affected books. Every book list is sorted by key.
func Summarize(diffs []FileDiff) Summary {
	var summary Summary

	newPerBook := make(map[string]int)
	existing := make(map[string]struct{})
	missing := make(map[string]struct{})

	for _, d := range diffs {
		switch d.Status {
		case StatusNew:
			summary.NewFiles++
			newPerBook[d.BookKey()]++
		case StatusExists:
			summary.ExistingFiles++
			existing[d.BookKey()] = struct{}{}
		case StatusSourceMissing:
			summary.MissingFiles++
			missing[d.BookKey()] = struct{}{}
		}
	}

	summary.BooksToAdd = make([]BookFiles, 0, len(newPerBook))
	for key, files := range newPerBook {
		summary.BooksToAdd = append(summary.BooksToAdd, BookFiles{Key: key, Files: files})
	}
	sort.Slice(summary.BooksToAdd, func(i, j int) bool {
		return summary.BooksToAdd[i].Key < summary.BooksToAdd[j].Key
	})

	summary.ExistingBooks = sortedKeys(existing)
	summary.MissingBooks = sortedKeys(missing)

	return summary
}

// Filter returns the diffs with the given status, in their original order.
func Filter(diffs []FileDiff, status FileStatus) []FileDiff {
	var out []FileDiff
	for _, d := range diffs {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

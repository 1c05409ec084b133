package trivia

import "math"

// Paginate returns the 1-based page window of the given size over items,
// clipped to the input bounds. Pages past the end yield an empty slice;
// emptiness is the caller's signal, never an error. Pure: the input slice
// is only read, so concurrent callers need no synchronization.
func Paginate[T any](page, size int, items []T) []T {
	if page < 1 {
		page = 1
	}
	// The window offset must not overflow; a page that far out is empty.
	if size <= 0 || page-1 > (math.MaxInt-size)/size {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

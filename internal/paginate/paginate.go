// Package paginate computes page-number windows and bounds for paged lists.
package paginate

// MaxButtons is the maximum number of page buttons shown at once.
const MaxButtons = 5

// Window returns the page numbers to display for the given current page and
// total page count. At most MaxButtons pages are returned; the window is
// contiguous, contains current, and stays within [1, total].
//
// When total fits entirely, all pages are returned. Near the start the window
// is pinned to the first five pages, near the end to the last five; otherwise
// it is centered on current.
func Window(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if total <= MaxButtons {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	start := current - 2
	switch {
	case current <= 3:
		start = 1
	case current >= total-2:
		start = total - 4
	}

	pages := make([]int, MaxButtons)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}

// Clamp reports whether page is a valid target within [1, total].
// Out-of-range requests are no-ops for callers; ok is false and the
// returned page is the input unchanged.
func Clamp(page, total int) (int, bool) {
	if total < 1 || page < 1 || page > total {
		return page, false
	}
	return page, true
}

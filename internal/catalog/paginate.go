package catalog

// PageSize is the number of catalog entries shown per page.
const PageSize = 5

// Paginate slices items into the given zero-based page. Out-of-range pages
// clamp to the nearest valid page so stale paging buttons never error.
func Paginate[T any](items []T, page int) (pageItems []T, clampedPage, totalPages int) {
	totalPages = (len(items) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * PageSize
	end := start + PageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

// Package listing implements the pure in-memory filtering and pagination
// applied to job and tip collections on list pages.
package listing

// Fixed page sizes for the two list pages.
const (
	JobsPerPage = 20
	TipsPerPage = 12
)

// Page is one page-slice of a filtered collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// FilterAndPaginate filters items with match and slices out the requested
// page. A nil match keeps everything. Pages are 1-based; out-of-range page
// numbers yield an empty slice. Input order is preserved and the function
// is deterministic: identical inputs produce identical output.
func FilterAndPaginate[T any](items []T, match func(T) bool, page, pageSize int) Page[T] {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if match == nil || match(item) {
			filtered = append(filtered, item)
		}
	}

	total := len(filtered)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if pageSize <= 0 || start >= total {
		return Page[T]{Items: []T{}, TotalCount: total, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{Items: filtered[start:end], TotalCount: total, TotalPages: totalPages}
}

package util

// Page is one slice of a longer result list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// PageCount returns ceil(total/size), or 0 when size is not positive.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}

	return (total + size - 1) / size
}

// Paginate returns the 1-based page of items. Pages past the end are empty;
// pages below 1 are treated as 1.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		TotalItems: len(items),
		TotalPages: PageCount(len(items), size),
	}
	if size <= 0 {
		return p
	}

	if page-1 >= PageCount(len(items), size) {
		return p
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	p.Items = items[start:end]

	return p
}

package domain

// PageInfo carries pagination metadata alongside list results.
type PageInfo struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// NewPageInfo normalizes page/pageSize (1-based page, default size 10)
// and computes the page count for the given total.
func NewPageInfo(page, pageSize, total int) PageInfo {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	totalPages := (total + pageSize - 1) / pageSize
	return PageInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Offset returns the row offset of the first item on the page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PageSize
}

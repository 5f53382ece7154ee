package pagination

// Meta describes the position of one page window inside a filtered,
// sorted result set.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// New computes the page metadata for the given 1-based page, page size and
// total matching count. A zero total yields zero pages while the requested
// page is kept as-is.
func New(page, limit int, totalCount int64) Meta {
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	return Meta{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Skip returns the number of documents preceding the window [skip, skip+limit).
func (m Meta) Skip() int64 {
	return int64(m.CurrentPage-1) * int64(m.Limit)
}

package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination derives the page window from a total match count. Returns nil
// when the caller did not ask for pagination.
func NewPagination(page, pageSize int, total int64) *Pagination {
	if pageSize <= 0 {
		return nil
	}
	if page < 1 {
		page = 1
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from := (page-1)*pageSize + 1
	to := page * pageSize
	if int64(to) > total {
		to = int(total)
	}
	if int64(from) > total {
		from = 0
		to = 0
	}

	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}

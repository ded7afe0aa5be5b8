package accommodation

// DefaultPageSize is the page size the public listing surface uses.
const DefaultPageSize = 12

// Page is a bounded slice of an ordered collection plus pagination metadata.
// It is a derived view, never persisted.
type Page struct {
	Items      []*Accommodation `json:"items"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
}

// Paginate slices the ordered input into a fixed-size page. pageNumber is
// 1-indexed; requesting a page past the end yields an empty Items slice
// rather than an error. Callers are expected to reset to page 1 whenever the
// upstream filter or sort changes.
func Paginate(accs []*Accommodation, pageNumber, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total := len(accs)
	totalPages := (total + pageSize - 1) / pageSize

	start := (pageNumber - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]*Accommodation, end-start)
	copy(items, accs[start:end])

	return Page{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

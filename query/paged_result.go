package query

// PagedResult is one page of items plus paging metadata.
type PagedResult[T any] struct {
	Items           []T `json:"items"`
	TotalPages      int `json:"total_pages"`
	ItemsFrom       int `json:"items_from"`
	ItemsTo         int `json:"items_to"`
	TotalItemsCount int `json:"total_items_count"`
}

// NewPagedResult computes the metadata for items taken from a set of totalCount rows.
func NewPagedResult[T any](items []T, totalCount, pageSize, pageNumber int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	from := pageSize*(pageNumber-1) + 1
	return PagedResult[T]{
		Items:           items,
		TotalPages:      totalPages,
		ItemsFrom:       from,
		ItemsTo:         from + pageSize - 1,
		TotalItemsCount: totalCount,
	}
}

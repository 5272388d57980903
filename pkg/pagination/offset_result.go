package pagination

// OffsetResult is one page of items plus the counts a client needs to ask
// for the next one.
type OffsetResult[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Pages   int   `json:"pages"`
	HasMore bool  `json:"has_more"`
}

// NewOffsetResult wraps items of the given page. A nil slice is reported as
// an empty one so the JSON body always carries an array.
func NewOffsetResult[T any](items []T, total int64, page int, size int) *OffsetResult[T] {
	if items == nil {
		items = []T{}
	}
	req := OffsetRequest{Page: page, Size: size}

	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}

	return &OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Size:    size,
		Pages:   pages,
		HasMore: int64(req.Offset()+len(items)) < total,
	}
}

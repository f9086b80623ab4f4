package ports

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest carries pagination parameters passed through to the storage
// layer. Sort uses the form "field" (ascending) or "-field" (descending).
type PageRequest struct {
	Page int
	Size int
	Sort string
}

// Normalize clamps the request to sane bounds: 1-based page, size capped
// at maxPageSize, defaulting to defaultPageSize.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

// Offset returns the number of records to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

// TotalPages computes the page count for a total record count.
func (p PageRequest) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

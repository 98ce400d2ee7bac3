package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = 1_000_000
)

// Page is one slice of an ordered listing.
type Page[T any] struct {
	Items       []T
	Total       int64
	CurrentPage int
	Limit       int
}

// TotalPages is ceil(Total/Limit).
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}

// Offset returns the number of rows to skip for page with the given limit.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

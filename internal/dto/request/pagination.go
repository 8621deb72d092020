package request

import "math"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Offset saturates at math.MaxInt for pages too large to address.
func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	limit := p.Limit()
	if p.Page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (p.Page - 1) * limit
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 10
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}

// Bounds returns the slice bounds of this page within total items.
// A page past the end is empty.
func (p PaginatedRequest) Bounds(total int) (start, end int) {
	start = min(p.Offset(), total)
	end = start + min(p.Limit(), total-start)
	return start, end
}

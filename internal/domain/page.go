package domain

import (
	"fmt"
	"math"
)

// Default pagination values applied when a request omits them.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Page is a 1-based offset/limit window over an id-ordered collection.
// There is no total count; callers page until they receive a short page.
type Page struct {
	Number int
	Size   int
}

// Validate checks that the page number is at least 1, the size is positive
// and the resulting offset fits in an int.
func (p Page) Validate() error {
	fields := make(map[string]string)

	if p.Number < 1 {
		fields["page"] = fmt.Sprintf("must be >= 1, got %d", p.Number)
	}
	if p.Size < 1 {
		fields["per_page"] = fmt.Sprintf("must be >= 1, got %d", p.Size)
	}
	if p.Number > 1 && p.Size >= 1 && p.Number-1 > math.MaxInt/p.Size {
		fields["page"] = fmt.Sprintf("page %d of size %d is out of range", p.Number, p.Size)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Offset returns the number of rows to skip: (Number-1)*Size. Only valid
// pages are guaranteed not to overflow.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of rows in the page.
func (p Page) Limit() int {
	return p.Size
}

package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/wish2work/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page request. The zero value is the first default-sized page.
type Page struct {
	Number int
	Size   int
}

// PageFromQuery reads ?page= and ?size=. Missing or out-of-range values fall
// back to the defaults instead of failing the request.
func PageFromQuery(c *gin.Context) Page {
	number, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return Page{Number: number, Size: size}.normalized()
}

func (p Page) normalized() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset is the number of rows to skip
func (p Page) Offset() uint64 {
	p = p.normalized()
	return uint64(p.Number-1) * uint64(p.Size)
}

// Limit is the number of rows to fetch
func (p Page) Limit() int {
	return p.normalized().Size
}

// Info describes this page of a list holding totalItems rows. A page past the
// end reports the last page; an empty list has one empty page.
func (p Page) Info(totalItems int64) dto.PaginationInfo {
	p = p.normalized()

	totalPages := 1
	if totalItems > 0 {
		totalPages = int((totalItems + int64(p.Size) - 1) / int64(p.Size))
	}

	return dto.PaginationInfo{
		CurrentPage: min(p.Number, totalPages),
		TotalPages:  totalPages,
		PageSize:    p.Size,
		TotalItems:  totalItems,
	}
}

// Package pagination extracts limit/offset parameters from requests and
// wraps list responses in a common envelope.
package pagination

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds pagination parameters extracted from a request.
type Params struct {
	Limit  int
	Offset int
}

// FromContext reads limit and offset query parameters, clamping them
// to sane bounds.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// Response wraps a paginated API response.
type Response struct {
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	HasMore bool        `json:"has_more"`
}

func NewResponse(data interface{}, total, limit, offset int) *Response {
	return &Response{
		Data:    data,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}
}

// SQL returns the LIMIT and OFFSET clause for SQL queries.
func (p Params) SQL() string {
	return fmt.Sprintf("LIMIT %d OFFSET %d", p.Limit, p.Offset)
}

// Slice applies the params to an in-memory result set of length total
// and returns the [start, end) window.
func (p Params) Slice(total int) (int, int) {
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

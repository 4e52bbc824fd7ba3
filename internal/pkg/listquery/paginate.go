package listquery

import (
	"encoding/json"
	"strconv"
)

// Result is one page of a listing.
type Result[T any] struct {
	Items      []T         `json:"items"`
	Page       int         `json:"page"`
	PerPage    int         `json:"perPage"`
	TotalItems int         `json:"totalItems"`
	TotalPages int         `json:"totalPages"`
	RangeStart int         `json:"rangeStart"`
	RangeEnd   int         `json:"rangeEnd"`
	Pages      []PageToken `json:"pages"`
}

func (r Result[T]) HasPrev() bool { return r.Page > 1 }

func (r Result[T]) HasNext() bool { return r.Page < r.TotalPages }

// Paginate slices one page out of items. The page is clamped to
// [1, max(1, totalPages)].
func Paginate[T any](items []T, page, perPage int) Result[T] {
	if perPage <= 0 {
		perPage = DefaultListPerPage
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if page > totalPages {
		page = max(1, totalPages)
	}
	if page < 1 {
		page = 1
	}

	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)

	res := Result[T]{
		Items:      items[start:end:end],
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		RangeEnd:   end,
		Pages:      PageNumbers(page, totalPages),
	}
	if total > 0 {
		res.RangeStart = start + 1
	}
	return res
}

const maxVisiblePages = 5

// PageToken is a page number or an ellipsis marker in the page bar.
type PageToken struct {
	Number   int
	Ellipsis bool
}

func Page(n int) PageToken { return PageToken{Number: n} }

var Ellipsis = PageToken{Ellipsis: true}

func (p PageToken) String() string {
	if p.Ellipsis {
		return "..."
	}
	return strconv.Itoa(p.Number)
}

func (p PageToken) MarshalJSON() ([]byte, error) {
	if p.Ellipsis {
		return json.Marshal("...")
	}
	return json.Marshal(p.Number)
}

// PageNumbers lays out the page bar: every page when there are few, else the
// first and last page, up to three pages around current, and an ellipsis for
// each gap.
func PageNumbers(current, totalPages int) []PageToken {
	if totalPages <= 0 {
		return []PageToken{}
	}
	current = min(max(current, 1), totalPages)

	if totalPages <= maxVisiblePages {
		pages := make([]PageToken, totalPages)
		for i := range pages {
			pages[i] = Page(i + 1)
		}
		return pages
	}

	pages := []PageToken{Page(1)}
	if current > 3 {
		pages = append(pages, Ellipsis)
	}

	start := max(2, current-1)
	end := min(totalPages-1, current+1)
	for i := start; i <= end; i++ {
		pages = append(pages, Page(i))
	}

	if current < totalPages-2 {
		pages = append(pages, Ellipsis)
	}
	return append(pages, Page(totalPages))
}

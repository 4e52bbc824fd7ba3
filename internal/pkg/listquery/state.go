package listquery

const (
	DefaultCatalogPerPage = 8
	DefaultListPerPage    = 10
)

// SortOption names one entry of the fixed sort enumeration.
type SortOption string

const (
	SortNone       SortOption = ""
	SortTitleAsc   SortOption = "title-asc"
	SortTitleDesc  SortOption = "title-desc"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortRatingDesc SortOption = "rating-desc"
	SortNewest     SortOption = "newest"
)

// State is the query state of a single listing view.
type State struct {
	Search   string     `json:"search"`
	Category string     `json:"category"`
	Sort     SortOption `json:"sort"`
	Page     int        `json:"page"`
	PerPage  int        `json:"perPage"`
}

func NewState(perPage int, sort SortOption) State {
	return State{Sort: sort, Page: 1, PerPage: perPage}
}

func (s State) WithSearch(q string) State {
	s.Search = q
	s.Page = 1
	return s
}

func (s State) WithCategory(c string) State {
	s.Category = c
	s.Page = 1
	return s
}

func (s State) WithSort(o SortOption) State {
	s.Sort = o
	s.Page = 1
	return s
}

func (s State) WithPerPage(n int) State {
	s.PerPage = n
	s.Page = 1
	return s
}

// WithPage moves to page p; Run clamps it.
func (s State) WithPage(p int) State {
	s.Page = p
	return s
}

// Reset clears search and category, restores the sort and goes to page 1.
func (s State) Reset(sort SortOption) State {
	return NewState(s.PerPage, sort)
}

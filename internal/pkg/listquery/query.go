package listquery

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two items the way cmp.Compare does.
type Comparator[T any] func(a, b T) int

// Config describes how a listing filters and sorts its item type.
type Config[T any] struct {
	// SearchFields returns the texts matched by free-text search.
	SearchFields func(T) []string
	// Category returns the value compared against State.Category. Nil
	// disables the categorical filter.
	Category func(T) string
	Sorts    map[SortOption]Comparator[T]
	// PerPage is used when State.PerPage is not positive.
	PerPage int
}

// Run filters, sorts and paginates items for st. The returned State has its
// page clamped to the result.
func Run[T any](items []T, cfg Config[T], st State) (Result[T], State) {
	perPage := st.PerPage
	if perPage <= 0 {
		perPage = cfg.PerPage
	}

	filtered := Filter(items, cfg, st.Search, st.Category)
	sorted := Sort(filtered, cfg.Sorts[st.Sort])
	res := Paginate(sorted, st.Page, perPage)

	st.Page = res.Page
	st.PerPage = res.PerPage
	return res, st
}

// Filter keeps items matching the search text in any search field and, when
// category is set, whose category equals it. The input is not modified.
func Filter[T any](items []T, cfg Config[T], search, category string) []T {
	search = strings.TrimSpace(search)
	fold := cases.Fold()
	needle := fold.String(search)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if category != "" && cfg.Category != nil && cfg.Category(it) != category {
			continue
		}
		if needle != "" && !matches(fold, needle, cfg.SearchFields, it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches[T any](fold cases.Caser, needle string, fields func(T) []string, it T) bool {
	if fields == nil {
		return false
	}
	for _, f := range fields(it) {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy. A nil comparator keeps the input order.
func Sort[T any](items []T, c Comparator[T]) []T {
	out := slices.Clone(items)
	if c != nil {
		slices.SortStableFunc(out, c)
	}
	return out
}

// Reverse flips a comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// ByOrdered compares a numeric or string key with cmp.Compare.
func ByOrdered[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// ByText compares a text key with locale-aware collation.
func ByText[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int { return CompareText(key(a), key(b)) }
}

var collators = sync.Pool{
	New: func() any { return collate.New(language.English) },
}

// CompareText orders two strings the way a reader expects in a listing:
// case and accents are secondary to the base letters.
func CompareText(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

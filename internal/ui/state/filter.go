package state

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/gitmoji-picker/internal/catalog"
)

// Filter owns the query string and the catalog indices that match it.
type Filter struct {
	catalog *catalog.Catalog
	query   string
	view    []int
}

// NewFilter returns a filter over c with an empty query, so every item matches.
func NewFilter(c *catalog.Catalog) Filter {
	f := Filter{catalog: c}
	f.SetQuery("")
	return f
}

// Query returns the current filter text.
func (f Filter) Query() string {
	return f.query
}

// Len returns the number of matching items.
func (f Filter) Len() int {
	return len(f.view)
}

// View returns a copy of the matching catalog indices in catalog order.
func (f Filter) View() []int {
	dup := make([]int, len(f.view))
	copy(dup, f.view)
	return dup
}

// Catalog returns the catalog being filtered.
func (f Filter) Catalog() *catalog.Catalog {
	return f.catalog
}

// SetQuery replaces the query and recomputes the view from scratch.
func (f *Filter) SetQuery(query string) []int {
	f.query = query
	f.view = Match(f.catalog, query)
	return f.View()
}

// AppendChar adds r to the end of the query.
func (f *Filter) AppendChar(r rune) []int {
	return f.SetQuery(f.query + string(r))
}

// DeleteLastChar removes the final rune of the query. Empty queries are left
// untouched.
func (f *Filter) DeleteLastChar() []int {
	if f.query == "" {
		return f.View()
	}
	_, size := utf8.DecodeLastRuneInString(f.query)
	return f.SetQuery(f.query[:len(f.query)-size])
}

// Match returns the indices of items whose display text contains query,
// ignoring case. Catalog order is preserved and the empty query matches all.
func Match(c *catalog.Catalog, query string) []int {
	displays := c.Displays()
	out := make([]int, 0, len(displays))
	lower := strings.ToLower(query)
	for i, display := range displays {
		if strings.Contains(strings.ToLower(display), lower) {
			out = append(out, i)
		}
	}
	return out
}

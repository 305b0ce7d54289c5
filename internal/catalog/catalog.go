// Package catalog holds the fixed list of gitmoji the picker offers.
package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rivo/uniseg"
)

// Item is a single selectable gitmoji.
type Item struct {
	Emoji       string
	Description string
}

// Display returns the text shown in the picker and matched by the filter.
func (i Item) Display() string {
	if i.Description == "" {
		return i.Emoji
	}
	return i.Emoji + " - " + i.Description
}

// Glyph returns the first grapheme cluster of the display text.
func (i Item) Glyph() string {
	return FirstGrapheme(i.Display())
}

// Catalog is an ordered, immutable list of items.
type Catalog struct {
	items []Item
}

// New copies items into a catalog.
func New(items []Item) *Catalog {
	dup := make([]Item, len(items))
	copy(dup, items)
	return &Catalog{items: dup}
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at index i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	dup := make([]Item, len(c.items))
	copy(dup, c.items)
	return dup
}

// Displays returns the display text of every item in catalog order.
func (c *Catalog) Displays() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.items))
	for i, item := range c.items {
		out[i] = item.Display()
	}
	return out
}

// Suggest returns up to limit catalog indices whose description loosely
// resembles query, best match first. It is only used to hint at alternatives
// when the literal filter finds nothing.
func (c *Catalog) Suggest(query string, limit int) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || limit <= 0 || c.Len() == 0 {
		return nil
	}
	descriptions := make([]string, len(c.items))
	for i, item := range c.items {
		descriptions[i] = item.Description
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, descriptions)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		if ranks[a].Distance != ranks[b].Distance {
			return ranks[a].Distance < ranks[b].Distance
		}
		return ranks[a].OriginalIndex < ranks[b].OriginalIndex
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]int, len(ranks))
	for i, rank := range ranks {
		out[i] = rank.OriginalIndex
	}
	return out
}

// FirstGrapheme returns the first extended grapheme cluster of s, so that
// emoji built from several code points (ZWJ sequences, variation selectors)
// come back whole.
func FirstGrapheme(s string) string {
	if s == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}

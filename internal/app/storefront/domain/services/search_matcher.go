// Package services holds stateless domain services.
package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// SearchMatcher filters and ranks catalog items against a free-text query.
// It is a pure function of (query, items): no side effects, never an error.
// Tie-breaking uses Turkish collation so "ç" and "ş" sort where customers
// expect them.
type SearchMatcher struct {
	collator *collate.Collator
}

// NewSearchMatcher builds a matcher with a Turkish collator.
func NewSearchMatcher() *SearchMatcher {
	return &SearchMatcher{collator: collate.New(language.Turkish)}
}

// Match returns the ranked subset of items matching query. An empty or
// blank query returns nil; the caller distinguishes "no query yet" from a
// searched-and-empty result by checking the query itself.
//
// An item matches when its name contains the query, its category name
// contains the query, or any whitespace token of the query is a substring
// of any token of the name or category. Ranking: exact name match, then
// name-starts-with, then name-contains, ties by collated name order.
// Category-only matches fall through to the collated tail.
func (m *SearchMatcher) Match(query string, items []domain.CatalogItem) []domain.CatalogItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var filtered []domain.CatalogItem
	for _, item := range items {
		if matches(q, item) {
			filtered = append(filtered, item)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return m.less(q, filtered[i], filtered[j])
	})
	return filtered
}

func matches(q string, item domain.CatalogItem) bool {
	name := strings.ToLower(item.Name)
	cat := strings.ToLower(item.CategoryName)
	if strings.Contains(name, q) || strings.Contains(cat, q) {
		return true
	}

	// Tiered fallback: token-level overlap keeps partial-word queries useful.
	nameWords := strings.Fields(name)
	catWords := strings.Fields(cat)
	for _, qw := range strings.Fields(q) {
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				return true
			}
		}
		for _, cw := range catWords {
			if strings.Contains(cw, qw) {
				return true
			}
		}
	}
	return false
}

func (m *SearchMatcher) less(q string, a, b domain.CatalogItem) bool {
	aName := strings.ToLower(a.Name)
	bName := strings.ToLower(b.Name)

	if aName == q && bName != q {
		return true
	}
	if bName == q && aName != q {
		return false
	}
	if strings.HasPrefix(aName, q) && !strings.HasPrefix(bName, q) {
		return true
	}
	if strings.HasPrefix(bName, q) && !strings.HasPrefix(aName, q) {
		return false
	}
	if strings.Contains(aName, q) && !strings.Contains(bName, q) {
		return true
	}
	if strings.Contains(bName, q) && !strings.Contains(aName, q) {
		return false
	}
	return m.collator.CompareString(aName, bName) < 0
}

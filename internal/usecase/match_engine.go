package usecase

import "github.com/grocermatch/backend/internal/domain"

// MatchEngine computes token-intersection matches between a normalized query
// and catalog product titles. It applies no ranking: matched products come
// back in catalog iteration order.
type MatchEngine struct{}

// NewMatchEngine creates a new match engine
func NewMatchEngine() *MatchEngine {
	return &MatchEngine{}
}

// Match normalizes each product title and emits a MatchResult for every
// product whose title shares at least one token with queryTokens. The second
// return value lists the matched titles with duplicates collapsed.
// An empty queryTokens matches nothing; that is expected behavior for
// all-stopword queries, not an error.
func (e *MatchEngine) Match(queryTokens []string, catalog []domain.Product) ([]domain.MatchResult, []string) {
	querySet := make(map[string]struct{}, len(queryTokens))
	for _, token := range queryTokens {
		querySet[token] = struct{}{}
	}

	results := make([]domain.MatchResult, 0, len(catalog))
	matchedTitles := make([]string, 0, len(catalog))
	seenTitles := make(map[string]struct{})

	for _, product := range catalog {
		if !intersects(querySet, Normalize(product.Title)) {
			continue
		}

		results = append(results, domain.MatchResult{
			Text:     product.Title,
			Metadata: product.Metadata(),
		})

		if _, seen := seenTitles[product.Title]; !seen {
			seenTitles[product.Title] = struct{}{}
			matchedTitles = append(matchedTitles, product.Title)
		}
	}

	return results, matchedTitles
}

// intersects reports whether any token is present in the set
func intersects(set map[string]struct{}, tokens []string) bool {
	for _, token := range tokens {
		if _, ok := set[token]; ok {
			return true
		}
	}
	return false
}

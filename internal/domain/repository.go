package domain

import "context"

// ProductRepository defines read access to the product catalog.
// FetchCatalog performs a full scan at call time; there is no filtering or
// pagination in the current contract.
type ProductRepository interface {
	FetchCatalog(ctx context.Context) ([]Product, error)
}

// SemanticSearcher defines similarity search over the persisted semantic
// index. It is a standing capability: the token-matching endpoint does not
// depend on it, but it must remain available for ranked retrieval.
type SemanticSearcher interface {
	Query(ctx context.Context, text string, limit int) ([]SemanticHit, error)
}

package domain

// Product is a catalog entry as read from the product store.
// Instances are immutable snapshots; the core never writes them back.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ProductMetadata is the metadata block attached to match and semantic
// results. It carries everything about a Product except its title, which is
// denormalized into the result's text field.
type ProductMetadata struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

// Metadata extracts the result metadata for a product.
func (p Product) Metadata() ProductMetadata {
	return ProductMetadata{
		ID:          p.ID,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}
}

// MatchResult pairs a product title with its metadata. A MatchResult is only
// emitted for a product whose normalized title shares at least one token with
// the query.
type MatchResult struct {
	Text     string          `json:"text"`
	Metadata ProductMetadata `json:"metadata"`
}

// QueryRequest is the inbound body for POST /query. A nil Query after
// binding means the field was absent or null; an empty list is a valid query
// that matches nothing.
type QueryRequest struct {
	Query []string `json:"query"`
}

// QueryResponse is the response shape for POST /query.
// MatchedTitles never contains duplicates, even when several catalog products
// share a title.
type QueryResponse struct {
	Results       []MatchResult `json:"results"`
	MatchedTitles []string      `json:"matched_titles"`
}

// SemanticHit is a single ranked result from the semantic index.
type SemanticHit struct {
	Text     string          `json:"text"`
	Score    float64         `json:"score"`
	Metadata ProductMetadata `json:"metadata"`
}

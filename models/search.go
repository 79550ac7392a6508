package models

// SearchResultType tags whether a ranked result is a catalog service or a professional.
type SearchResultType string

const (
	ResultService      SearchResultType = "service"
	ResultProfessional SearchResultType = "professional"
)

// SearchResult is one ranked item in a merged search response.
// Similarity is only set for semantically-matched services; lexical matches
// carry a nil Similarity and rank after every scored result.
type SearchResult struct {
	ID          string           `json:"id"`
	Type        SearchResultType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	Rating      *float64         `json:"rating,omitempty"`
	Similarity  *float64         `json:"similarity,omitempty"`
}

// SemanticMatch is a raw embedding-similarity hit against the service catalog.
type SemanticMatch struct {
	ServiceID   string  `json:"service_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	MinPrice    float64 `json:"min_price"`
	Similarity  float64 `json:"similarity"` // Cosine similarity in [0, 1]
}

// LexicalMatch is a raw substring-match hit from the catalog or the
// professional directory.
type LexicalMatch struct {
	ID          string           `json:"id"`
	Type        SearchResultType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	Rating      *float64         `json:"rating,omitempty"`
}

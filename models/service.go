package models

import "time"

// Service represents a catalog entry a client can request a quote for.
type Service struct {
	ID          string    `bson:"id" json:"id"`                                     // Unique service identifier (e.g., UUID)
	Name        string    `bson:"name" json:"name"`                                 // e.g., "Instalación de minisplit"
	Description string    `bson:"description" json:"description"`                   // Client-facing summary shown on the detail screen
	Discipline  string    `bson:"discipline" json:"discipline"`                     // e.g., "hvac", "plomería", "electricidad"
	MinPrice    float64   `bson:"min_price" json:"min_price"`                       // Catalog starting price the quote is built from
	PriceType   string    `bson:"price_type" json:"price_type"`                     // "fixed" or "from" (starting-at pricing)
	Embedding   []float64 `bson:"embedding,omitempty" json:"-"`                     // Description embedding used for semantic search
	Active      bool      `bson:"active" json:"active"`                             // Inactive services are hidden from search and browse
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`                     // Timestamp when the service was added to the catalog
	UpdatedAt   time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"` // Last catalog edit
}

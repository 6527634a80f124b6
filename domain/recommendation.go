package domain

// RecommendedProduct is the display projection returned by the
// recommendation endpoint. Recomputed on every request, never persisted.
type RecommendedProduct struct {
	ProductID    uint64  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	TasteProfile string  `json:"taste_profile"`
	URL          string  `json:"url"`
}

// SearchResult is a catalog hit from the text-search fallback.
type SearchResult struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
}

package recommendation

import (
	"context"
	"fmt"
	"strings"

	"sakeCompass/domain"
)

// Per-term weights for the text-search fallback. Same naive substring
// semantics as keyword scoring.
const (
	searchScoreName        = 5
	searchScoreBrand       = 3
	searchScoreCategory    = 3
	searchScoreDescription = 2
	searchScoreTaste       = 2

	defaultSearchLimit = 10
)

// SearchProducts is the text-search read path used when no vector index
// is available: each query term is matched case-insensitively against
// the product's text fields and hits are ranked by accumulated weight.
func (s *Service) SearchProducts(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []domain.SearchResult{}, nil
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	top := newTopK(limit)
	for _, p := range products {
		if p.Category == "" || p.ProductName == "" {
			continue
		}
		if score := scoreSearchHit(p, terms); score > 0 {
			top.push(scoredProduct{product: p, score: score})
		}
	}

	SearchRequestsTotal.Inc()

	ranked := top.ranked()
	out := make([]domain.SearchResult, 0, len(ranked))
	for _, sp := range ranked {
		out = append(out, domain.SearchResult{
			ProductID:   sp.product.ID,
			ProductName: sp.product.ProductName,
			Brand:       sp.product.Brand,
			Category:    sp.product.Category,
			Price:       sp.product.Price,
			Image:       sp.product.PrimaryImage(),
			URL:         sp.product.URL,
			Score:       sp.score,
		})
	}

	return out, nil
}

func scoreSearchHit(p domain.SakeProduct, terms []string) int {
	name := strings.ToLower(p.ProductName)
	brand := strings.ToLower(p.Brand)
	category := strings.ToLower(p.Category)
	description := strings.ToLower(p.Description)
	taste := strings.ToLower(p.TasteProfile)

	score := 0
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += searchScoreName
		}
		if strings.Contains(brand, term) {
			score += searchScoreBrand
		}
		if strings.Contains(category, term) {
			score += searchScoreCategory
		}
		if strings.Contains(description, term) {
			score += searchScoreDescription
		}
		if strings.Contains(taste, term) {
			score += searchScoreTaste
		}
	}
	return score
}

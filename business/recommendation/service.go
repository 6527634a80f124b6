package recommendation

import (
	"context"
	"fmt"
	"time"

	"sakeCompass/domain"
	"sakeCompass/pkg/logger"
)

// ---- Repository interfaces ----

// PreferenceRepository resolves a stored profile. A missing profile is
// (nil, nil), not an error.
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*domain.PreferenceProfile, error)
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.SakeProduct, error)
}

// ProfileCache is an optional read-through cache in front of the
// preference repository. A miss is (nil, nil).
type ProfileCache interface {
	Get(ctx context.Context, userID uint) (*domain.PreferenceProfile, error)
	Set(ctx context.Context, profile *domain.PreferenceProfile) error
}

// ---- Usecase / Service ----

type Service struct {
	prefRepo     PreferenceRepository
	productRepo  ProductRepository
	profileCache ProfileCache
	now          func() time.Time
}

// NewService wires the scorer. profileCache may be nil; now may be nil
// and defaults to time.Now (tests inject a fixed clock).
func NewService(
	prefRepo PreferenceRepository,
	productRepo ProductRepository,
	profileCache ProfileCache,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		prefRepo:     prefRepo,
		productRepo:  productRepo,
		profileCache: profileCache,
		now:          now,
	}
}

// Recommend resolves the user's preference profile, scores the whole
// catalog against it and returns the top ranked display records. A user
// without a stored profile gets an empty list, not an error.
func (s *Service) Recommend(ctx context.Context, userID uint) ([]domain.RecommendedProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		RecommendRequestsTotal.WithLabelValues("no_profile").Inc()
		return []domain.RecommendedProduct{}, nil
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	recs := RankCatalog(*profile, products, s.now())

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommendations_served",
		"trace_id", tid,
		"user_id", userID,
		"catalog_size", len(products),
		"returned", len(recs),
	)

	RecommendRequestsTotal.WithLabelValues("served").Inc()

	return recs, nil
}

// loadProfile goes through the cache when one is wired. Cache failures
// fall back to the repository silently.
func (s *Service) loadProfile(ctx context.Context, userID uint) (*domain.PreferenceProfile, error) {
	if s.profileCache != nil {
		if cached, err := s.profileCache.Get(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	profile, err := s.prefRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load preference profile: %w", err)
	}

	if profile != nil && s.profileCache != nil {
		if err := s.profileCache.Set(ctx, profile); err != nil {
			logger.Warn("failed to cache preference profile", "user_id", userID, "error", err)
		}
	}

	return profile, nil
}

// RankCatalog is the pure scoring pipeline: build signals, score every
// well-formed product, keep the top entries, shape display records.
// day is injected so output is reproducible for a fixed date.
func RankCatalog(profile domain.PreferenceProfile, products []domain.SakeProduct, day time.Time) []domain.RecommendedProduct {
	sig := BuildSignals(profile)

	top := newTopK(TopRecommendations)
	for _, p := range products {
		// A row missing its required fields is excluded rather than
		// failing the batch.
		if p.Category == "" || p.ProductName == "" {
			continue
		}
		top.push(scoredProduct{
			product: p,
			score:   ScoreProduct(p, sig, profile.FoodPreferences, day),
		})
	}

	ranked := top.ranked()
	out := make([]domain.RecommendedProduct, 0, len(ranked))
	for _, sp := range ranked {
		out = append(out, domain.RecommendedProduct{
			ProductID:    sp.product.ID,
			ProductName:  sp.product.ProductName,
			Brand:        sp.product.Brand,
			Category:     sp.product.Category,
			Price:        sp.product.Price,
			Image:        sp.product.PrimaryImage(),
			TasteProfile: sp.product.TasteProfile,
			URL:          sp.product.URL,
		})
	}

	return out
}

package preference

import (
	"context"
	"errors"
	"fmt"

	"sakeCompass/domain"
	"sakeCompass/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*domain.PreferenceProfile, error)
	Upsert(ctx context.Context, profile *domain.PreferenceProfile) error
}

// ProfileCache entries go stale when a profile changes; the service
// invalidates on every write.
type ProfileCache interface {
	Invalidate(ctx context.Context, userID uint) error
}

type preferenceService struct {
	prefRepo PreferenceRepository
	cache    ProfileCache
	validate *validator.Validate
}

func NewPreferenceService(prefRepo PreferenceRepository, cache ProfileCache, validate *validator.Validate) *preferenceService {
	return &preferenceService{
		prefRepo: prefRepo,
		cache:    cache,
		validate: validate,
	}
}

// GetProfile returns the stored profile, or nil when the user never
// saved preferences.
func (s *preferenceService) GetProfile(ctx context.Context, userID uint) (*domain.PreferenceProfile, error) {
	if userID == 0 {
		logger.Error("invalid user id")
		return nil, errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get preference profile")
		return nil, fmt.Errorf("context error: %w", err)
	}

	profile, err := s.prefRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("failed to find preference profile", err)
		return nil, err
	}

	return profile, nil
}

// SaveProfile creates or replaces the user's profile. Taste sliders,
// when present, must all sit on the 1-5 scale.
func (s *preferenceService) SaveProfile(ctx context.Context, profile *domain.PreferenceProfile) (*domain.PreferenceProfile, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when save preference profile")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if profile.UserID == 0 {
		logger.Error("Invalid profile data: user ID is required")
		return nil, errors.New("user ID is required")
	}

	if tastes, ok := profile.TastePreferences(); ok {
		if err := s.validate.Struct(&tastes); err != nil {
			logger.Error("Invalid taste sliders", err.Error())
			return nil, errors.New("taste sliders must be between 1 and 5")
		}
	}

	if err := s.prefRepo.Upsert(ctx, profile); err != nil {
		logger.Error("failed to save preference profile", err)
		return nil, fmt.Errorf("failed to save preference profile: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, profile.UserID); err != nil {
			logger.Warn("failed to invalidate profile cache", "user_id", profile.UserID, "error", err)
		}
	}

	logger.Info("preference profile saved", "user_id", profile.UserID)

	return profile, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"sakeCompass/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{
		DB: db,
	}
}

// FindByUserID returns (nil, nil) when no profile row exists. Callers
// treat a missing profile as "no preferences saved", not an error.
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uint) (*domain.PreferenceProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var profile domain.PreferenceProfile

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find preference profile: %w", err)
	}

	return &profile, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, profile *domain.PreferenceProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wine_preferences", "food_preferences", "tastes", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert preference profile: %w", err)
	}

	return nil
}

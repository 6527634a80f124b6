//go:build !integration

package preference

import (
	"context"
	"testing"

	"sakeCompass/domain"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

type fakePrefRepo struct {
	saved map[uint]*domain.PreferenceProfile
}

func newFakePrefRepo() *fakePrefRepo {
	return &fakePrefRepo{saved: make(map[uint]*domain.PreferenceProfile)}
}

func (f *fakePrefRepo) FindByUserID(ctx context.Context, userID uint) (*domain.PreferenceProfile, error) {
	return f.saved[userID], nil
}

func (f *fakePrefRepo) Upsert(ctx context.Context, profile *domain.PreferenceProfile) error {
	f.saved[profile.UserID] = profile
	return nil
}

type fakeInvalidator struct {
	invalidated []uint
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, userID uint) error {
	f.invalidated = append(f.invalidated, userID)
	return nil
}

func sliders(sweetness, acidity, richness, umami int) *datatypes.JSONType[domain.TastePreferences] {
	t := datatypes.NewJSONType(domain.TastePreferences{
		Sweetness: sweetness,
		Acidity:   acidity,
		Richness:  richness,
		Umami:     umami,
	})
	return &t
}

func TestSaveProfileRejectsOutOfRangeSliders(t *testing.T) {
	svc := NewPreferenceService(newFakePrefRepo(), nil, validator.New())

	_, err := svc.SaveProfile(context.Background(), &domain.PreferenceProfile{
		UserID: 1,
		Tastes: sliders(6, 3, 3, 3),
	})
	if err == nil {
		t.Fatal("sweetness=6 must be rejected")
	}

	_, err = svc.SaveProfile(context.Background(), &domain.PreferenceProfile{
		UserID: 1,
		Tastes: sliders(3, 0, 3, 3),
	})
	if err == nil {
		t.Fatal("acidity=0 must be rejected")
	}
}

func TestSaveProfileWithoutSliders(t *testing.T) {
	repo := newFakePrefRepo()
	svc := NewPreferenceService(repo, nil, validator.New())

	_, err := svc.SaveProfile(context.Background(), &domain.PreferenceProfile{
		UserID:          2,
		WinePreferences: []string{"Riesling"},
	})
	if err != nil {
		t.Fatalf("profile without sliders must save: %v", err)
	}
	if repo.saved[2] == nil {
		t.Fatal("profile not persisted")
	}
}

func TestSaveProfileInvalidatesCache(t *testing.T) {
	cache := &fakeInvalidator{}
	svc := NewPreferenceService(newFakePrefRepo(), cache, validator.New())

	_, err := svc.SaveProfile(context.Background(), &domain.PreferenceProfile{
		UserID: 3,
		Tastes: sliders(4, 2, 3, 5),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != 3 {
		t.Fatalf("cache invalidations = %v, want [3]", cache.invalidated)
	}
}

func TestGetProfileMissingIsNilNotError(t *testing.T) {
	svc := NewPreferenceService(newFakePrefRepo(), nil, validator.New())

	profile, err := svc.GetProfile(context.Background(), 42)
	if err != nil {
		t.Fatalf("missing profile must not error: %v", err)
	}
	if profile != nil {
		t.Fatalf("profile = %+v, want nil", profile)
	}
}

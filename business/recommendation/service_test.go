//go:build !integration

package recommendation

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"sakeCompass/domain"
)

// ---- fakes ----

type fakePrefRepo struct {
	profiles map[uint]*domain.PreferenceProfile
	calls    int
}

func (f *fakePrefRepo) FindByUserID(ctx context.Context, userID uint) (*domain.PreferenceProfile, error) {
	f.calls++
	return f.profiles[userID], nil
}

type fakeProductRepo struct {
	products []domain.SakeProduct
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.SakeProduct, error) {
	return f.products, nil
}

type fakeCache struct {
	entries map[uint]*domain.PreferenceProfile
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uint]*domain.PreferenceProfile)}
}

func (f *fakeCache) Get(ctx context.Context, userID uint) (*domain.PreferenceProfile, error) {
	return f.entries[userID], nil
}

func (f *fakeCache) Set(ctx context.Context, profile *domain.PreferenceProfile) error {
	f.entries[profile.UserID] = profile
	return nil
}

func fixedClock(s string) func() time.Time {
	return func() time.Time { return day(s) }
}

func catalogOf(n int) []domain.SakeProduct {
	out := make([]domain.SakeProduct, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, domain.SakeProduct{
			ID:          uint64(i),
			ProductName: fmt.Sprintf("Sake %d", i),
			Category:    "Junmai",
			Price:       20 + float64(i),
		})
	}
	return out
}

// ---- tests ----

func TestRecommendNoProfile(t *testing.T) {
	svc := NewService(
		&fakePrefRepo{profiles: map[uint]*domain.PreferenceProfile{}},
		&fakeProductRepo{products: catalogOf(10)},
		nil,
		fixedClock("2025-05-05"),
	)

	recs, err := svc.Recommend(context.Background(), 99)
	if err != nil {
		t.Fatalf("missing profile must not error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("missing profile must yield empty list, got %d", len(recs))
	}
}

func TestRecommendDeterministicWithinDay(t *testing.T) {
	profile := &domain.PreferenceProfile{
		UserID:          1,
		WinePreferences: []string{"Chardonnay"},
		FoodPreferences: []string{"sushi"},
	}
	products := catalogOf(30)
	for i := range products {
		products[i].Description = fmt.Sprintf("brew number %d, smooth and rich", i)
		products[i].FoodPairings = []string{"sushi", "tempura"}
		products[i].AverageRating = 3.5 + float64(i%3)*0.5
	}

	svc := NewService(
		&fakePrefRepo{profiles: map[uint]*domain.PreferenceProfile{1: profile}},
		&fakeProductRepo{products: products},
		nil,
		fixedClock("2025-05-05"),
	)

	first, err := svc.Recommend(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Recommend(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same day, same inputs, different output:\n%+v\n%+v", first, second)
	}
}

func TestRecommendOutputCap(t *testing.T) {
	profile := &domain.PreferenceProfile{UserID: 1}

	for _, size := range []int{0, 1, 3, 4, 100} {
		svc := NewService(
			&fakePrefRepo{profiles: map[uint]*domain.PreferenceProfile{1: profile}},
			&fakeProductRepo{products: catalogOf(size)},
			nil,
			fixedClock("2025-05-05"),
		)

		recs, err := svc.Recommend(context.Background(), 1)
		if err != nil {
			t.Fatal(err)
		}

		want := size
		if want > TopRecommendations {
			want = TopRecommendations
		}
		if len(recs) != want {
			t.Fatalf("catalog=%d: got %d recs, want %d", size, len(recs), want)
		}
	}
}

func TestRecommendSkipsMalformedProducts(t *testing.T) {
	profile := &domain.PreferenceProfile{UserID: 1}
	products := []domain.SakeProduct{
		{ID: 1, ProductName: "Good", Category: "Junmai"},
		{ID: 2, ProductName: "", Category: "Junmai"},     // missing name
		{ID: 3, ProductName: "NoCategory", Category: ""}, // missing category
	}

	svc := NewService(
		&fakePrefRepo{profiles: map[uint]*domain.PreferenceProfile{1: profile}},
		&fakeProductRepo{products: products},
		nil,
		fixedClock("2025-05-05"),
	)

	recs, err := svc.Recommend(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ProductID != 1 {
		t.Fatalf("recs = %+v, want only the well-formed product", recs)
	}
}

func TestRecommendShapesDisplayRecord(t *testing.T) {
	profile := &domain.PreferenceProfile{UserID: 1}
	products := []domain.SakeProduct{
		{
			ID:           7,
			ProductName:  "Dassai 45",
			Brand:        "Asahi Shuzo",
			Category:     "Junmai",
			Subcategory:  "Junmai Daiginjo",
			Description:  "polished to 45%",
			TasteProfile: "fruity and clean",
			Price:        34.99,
			Images:       []string{"https://img.example/dassai-front.jpg", "https://img.example/dassai-back.jpg"},
			URL:          "https://shop.example/dassai-45",
		},
		{
			ID:          8,
			ProductName: "No Image",
			Category:    "Koshu",
			Price:       12,
		},
	}

	svc := NewService(
		&fakePrefRepo{profiles: map[uint]*domain.PreferenceProfile{1: profile}},
		&fakeProductRepo{products: products},
		nil,
		fixedClock("2025-05-05"),
	)

	recs, err := svc.Recommend(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recs, want 2", len(recs))
	}

	var dassai, noImage domain.RecommendedProduct
	for _, r := range recs {
		switch r.ProductID {
		case 7:
			dassai = r
		case 8:
			noImage = r
		}
	}

	want := domain.RecommendedProduct{
		ProductID:    7,
		ProductName:  "Dassai 45",
		Brand:        "Asahi Shuzo",
		Category:     "Junmai",
		Price:        34.99,
		Image:        "https://img.example/dassai-front.jpg",
		TasteProfile: "fruity and clean",
		URL:          "https://shop.example/dassai-45",
	}
	if dassai != want {
		t.Fatalf("display record = %+v, want %+v", dassai, want)
	}
	if noImage.Image != "" {
		t.Fatalf("product without images must project empty image, got %q", noImage.Image)
	}
}

func TestRecommendUsesProfileCache(t *testing.T) {
	profile := &domain.PreferenceProfile{UserID: 1, WinePreferences: []string{"Merlot"}}
	prefRepo := &fakePrefRepo{profiles: map[uint]*domain.PreferenceProfile{1: profile}}
	cache := newFakeCache()

	svc := NewService(prefRepo, &fakeProductRepo{products: catalogOf(5)}, cache, fixedClock("2025-05-05"))

	if _, err := svc.Recommend(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Recommend(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	if prefRepo.calls != 1 {
		t.Fatalf("repo calls = %d, want 1 (second lookup served from cache)", prefRepo.calls)
	}
}

func TestRecommendDefaultFallbackRanking(t *testing.T) {
	// Profile exists but carries no usable signal: default categories
	// must still pull Junmai products above unrelated ones.
	profile := &domain.PreferenceProfile{UserID: 1}
	products := []domain.SakeProduct{
		{ID: 1, ProductName: "Aged", Category: "Koshu"},
		{ID: 2, ProductName: "Classic", Category: "Junmai"},
		{ID: 3, ProductName: "Polished", Category: "Junmai Ginjo"},
	}

	svc := NewService(
		&fakePrefRepo{profiles: map[uint]*domain.PreferenceProfile{1: profile}},
		&fakeProductRepo{products: products},
		nil,
		fixedClock("2025-05-05"),
	)

	recs, err := svc.Recommend(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recs, want 3", len(recs))
	}
	if recs[2].ProductID != 1 {
		t.Fatalf("unrelated-category product must rank last, got order %+v", recs)
	}
}

//go:build !integration

package recommendation

import (
	"context"
	"testing"

	"sakeCompass/domain"
)

func TestSearchProductsRanksNameHitsFirst(t *testing.T) {
	products := []domain.SakeProduct{
		{ID: 1, ProductName: "Kubota Manju", Category: "Junmai Daiginjo", Description: "a dry, elegant sake"},
		{ID: 2, ProductName: "Dry Mountain", Category: "Honjozo"},
		{ID: 3, ProductName: "Hakkaisan", Category: "Junmai", TasteProfile: "clean and dry"},
		{ID: 4, ProductName: "Sweet Nigori", Category: "Nigori"},
	}

	svc := NewService(&fakePrefRepo{}, &fakeProductRepo{products: products}, nil, fixedClock("2025-05-05"))

	results, err := svc.SearchProducts(context.Background(), "DRY", 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 (no-hit product excluded)", len(results))
	}
	if results[0].ProductID != 2 {
		t.Fatalf("name match must rank first, got %+v", results)
	}
	for _, r := range results {
		if r.ProductID == 4 {
			t.Fatal("product without any hit leaked into results")
		}
	}
}

func TestSearchProductsEmptyQuery(t *testing.T) {
	svc := NewService(&fakePrefRepo{}, &fakeProductRepo{products: catalogOf(5)}, nil, fixedClock("2025-05-05"))

	results, err := svc.SearchProducts(context.Background(), "   ", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("blank query must return nothing, got %d", len(results))
	}
}

func TestSearchProductsLimit(t *testing.T) {
	products := catalogOf(20)
	svc := NewService(&fakePrefRepo{}, &fakeProductRepo{products: products}, nil, fixedClock("2025-05-05"))

	results, err := svc.SearchProducts(context.Background(), "sake", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want limit 3", len(results))
	}
}

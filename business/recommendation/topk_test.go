//go:build !integration

package recommendation

import (
	"testing"

	"sakeCompass/domain"
)

func TestTopKBoundedAndOrdered(t *testing.T) {
	top := newTopK(4)
	scores := []int{3, 17, 9, 1, 12, 12, 25, 0, 8}
	for i, s := range scores {
		top.push(scoredProduct{product: domain.SakeProduct{ID: uint64(i + 1)}, score: s})
	}

	ranked := top.ranked()
	if len(ranked) != 4 {
		t.Fatalf("len = %d, want 4", len(ranked))
	}

	want := []int{25, 17, 12, 12}
	for i, sp := range ranked {
		if sp.score != want[i] {
			t.Fatalf("ranked[%d].score = %d, want %d", i, sp.score, want[i])
		}
	}
}

func TestTopKTieKeepsFirstSeen(t *testing.T) {
	top := newTopK(2)
	top.push(scoredProduct{product: domain.SakeProduct{ID: 1}, score: 5})
	top.push(scoredProduct{product: domain.SakeProduct{ID: 2}, score: 5})
	top.push(scoredProduct{product: domain.SakeProduct{ID: 3}, score: 5})

	ranked := top.ranked()
	if ranked[0].product.ID != 1 || ranked[1].product.ID != 2 {
		t.Fatalf("tie order = [%d %d], want first-seen [1 2]", ranked[0].product.ID, ranked[1].product.ID)
	}
}

func TestTopKFewerCandidatesThanK(t *testing.T) {
	top := newTopK(4)
	top.push(scoredProduct{product: domain.SakeProduct{ID: 1}, score: 2})
	top.push(scoredProduct{product: domain.SakeProduct{ID: 2}, score: 7})

	ranked := top.ranked()
	if len(ranked) != 2 || ranked[0].product.ID != 2 {
		t.Fatalf("ranked = %+v, want the two candidates, highest first", ranked)
	}
}

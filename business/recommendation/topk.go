package recommendation

import "sakeCompass/domain"

type scoredProduct struct {
	product domain.SakeProduct
	score   int
}

// topK keeps the k highest-scored products seen so far, ordered by
// score descending. Bounded insertion instead of sort-then-slice so a
// large catalog is never fully sorted. Strict comparison keeps
// first-seen catalog order on ties, which makes output stable across
// calls within a day.
type topK struct {
	k     int
	items []scoredProduct
}

func newTopK(k int) *topK {
	return &topK{k: k, items: make([]scoredProduct, 0, k)}
}

func (t *topK) push(cand scoredProduct) {
	pos := len(t.items)
	for pos > 0 && cand.score > t.items[pos-1].score {
		pos--
	}
	if pos >= t.k {
		return
	}

	t.items = append(t.items, scoredProduct{})
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = cand

	if len(t.items) > t.k {
		t.items = t.items[:t.k]
	}
}

func (t *topK) ranked() []scoredProduct {
	return t.items
}

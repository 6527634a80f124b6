package recommendation

import (
	"strconv"
	"strings"
	"time"

	"sakeCompass/domain"
)

// Scoring weights per signal source.
const (
	scoreCategoryMatch    = 10
	scoreSubcategoryMatch = 5
	scoreKeywordMatch     = 3
	scoreFoodPairing      = 5
	scoreRatingExcellent  = 3
	scoreRatingGood       = 1

	ratingExcellentFloor = 4.5
	ratingGoodFloor      = 4.0

	jitterMod = 5
)

// TopRecommendations is the size of the returned ranked list.
const TopRecommendations = 4

// jitterDateFormat is the stable per-day string mixed into the jitter
// hash. All requests within one calendar day share it.
const jitterDateFormat = "2006-01-02"

// DailyJitter perturbs a product's score by 0-4, rotating once per
// calendar day. It is a pure function of (productID, day): the sum of
// the code points of the concatenated id+date string, mod 5.
func DailyJitter(productID uint64, day time.Time) int {
	seed := strconv.FormatUint(productID, 10) + day.Format(jitterDateFormat)
	sum := 0
	for _, r := range seed {
		sum += int(r)
	}
	return sum % jitterMod
}

// searchText concatenates the free-text fields keyword matching runs
// over. Lowercased once per product.
func searchText(p domain.SakeProduct) string {
	return strings.ToLower(p.Description + " " + p.TasteProfile + " " + strings.Join(p.TastingNotes, " "))
}

// ScoreProduct computes the weighted score of one catalog product
// against the user's signals. Matching is naive case-insensitive
// substring containment; partial-word hits ("rich" inside "enriched")
// are part of the contract.
func ScoreProduct(p domain.SakeProduct, sig Signals, foodPrefs []string, day time.Time) int {
	score := 0

	if _, ok := sig.Categories[p.Category]; ok {
		score += scoreCategoryMatch
	}
	if p.Subcategory != "" {
		if _, ok := sig.Categories[p.Subcategory]; ok {
			score += scoreSubcategoryMatch
		}
	}

	text := searchText(p)
	for keyword := range sig.Keywords {
		if strings.Contains(text, keyword) {
			score += scoreKeywordMatch
		}
	}

	// Each food preference counts once per product, however many
	// pairing entries it matches.
	for _, pref := range foodPrefs {
		needle := strings.ToLower(pref)
		for _, pairing := range p.FoodPairings {
			if strings.Contains(strings.ToLower(pairing), needle) {
				score += scoreFoodPairing
				break
			}
		}
	}

	switch {
	case p.AverageRating >= ratingExcellentFloor:
		score += scoreRatingExcellent
	case p.AverageRating >= ratingGoodFloor:
		score += scoreRatingGood
	}

	return score + DailyJitter(p.ID, day)
}

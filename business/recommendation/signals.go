package recommendation

import (
	"strings"

	"sakeCompass/domain"
)

// Signals is the working preference set a catalog product is scored
// against: sake category names and lowercased taste keywords.
type Signals struct {
	Categories map[string]struct{}
	Keywords   map[string]struct{}
}

func (s Signals) addCategory(category string) {
	s.Categories[category] = struct{}{}
}

func (s Signals) addKeyword(keyword string) {
	s.Keywords[strings.ToLower(keyword)] = struct{}{}
}

// Slider thresholds: >3 means the user leans into a taste, <2 means the
// user leans away and gets the opposite keyword.
const (
	sliderHigh = 3
	sliderLow  = 2
)

// Default categories for a profile that produced no signal at all.
var defaultCategories = []string{"Junmai", "Junmai Ginjo"}

// BuildSignals derives the preferred-category and preferred-keyword sets
// from a stored profile. Pure; safe for concurrent use.
func BuildSignals(profile domain.PreferenceProfile) Signals {
	sig := Signals{
		Categories: make(map[string]struct{}),
		Keywords:   make(map[string]struct{}),
	}

	for _, wine := range profile.WinePreferences {
		mapping, ok := LookupWine(wine)
		if !ok {
			continue
		}
		for _, c := range mapping.Categories {
			sig.addCategory(c)
		}
		for _, t := range mapping.Tastes {
			sig.addKeyword(t)
		}
	}

	if tastes, ok := profile.TastePreferences(); ok {
		if tastes.Sweetness > sliderHigh {
			sig.addKeyword("sweet")
		}
		if tastes.Sweetness < sliderLow {
			sig.addKeyword("dry")
		}
		if tastes.Acidity > sliderHigh {
			sig.addKeyword("crisp")
		}
		if tastes.Richness > sliderHigh {
			sig.addKeyword("rich")
			sig.addCategory("Junmai")
		}
		if tastes.Richness < sliderLow {
			sig.addKeyword("light")
			sig.addCategory("Ginjo")
		}
		if tastes.Umami > sliderHigh {
			sig.addKeyword("umami")
			sig.addCategory("Junmai")
		}
	}

	// No recognized wine and no slider hit a category: seed a starting
	// point so every stored profile still ranks something.
	if len(sig.Categories) == 0 {
		for _, c := range defaultCategories {
			sig.addCategory(c)
		}
	}

	return sig
}

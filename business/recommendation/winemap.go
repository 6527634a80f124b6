package recommendation

import "strings"

// WineMapping associates a wine varietal with the sake categories and
// taste keywords a drinker of that wine tends to enjoy.
type WineMapping struct {
	Categories []string
	Tastes     []string
}

// wineToSake is keyed by exact, case-sensitive varietal name. Callers
// that want forgiving matching go through LookupWineFold instead.
var wineToSake = map[string]WineMapping{
	"Pinot Noir": {
		Categories: []string{"Junmai"},
		Tastes:     []string{"earthy", "smooth", "umami"},
	},
	"Chardonnay": {
		Categories: []string{"Junmai", "Junmai Ginjo"},
		Tastes:     []string{"rich", "round", "creamy"},
	},
	"Sauvignon Blanc": {
		Categories: []string{"Ginjo", "Daiginjo"},
		Tastes:     []string{"crisp", "citrus", "light"},
	},
	"Riesling": {
		Categories: []string{"Ginjo", "Nigori"},
		Tastes:     []string{"sweet", "floral", "fruity"},
	},
	"Cabernet Sauvignon": {
		Categories: []string{"Junmai", "Kimoto"},
		Tastes:     []string{"bold", "dry", "full-bodied"},
	},
	"Merlot": {
		Categories: []string{"Junmai"},
		Tastes:     []string{"smooth", "mellow", "plum"},
	},
	"Syrah": {
		Categories: []string{"Yamahai", "Kimoto"},
		Tastes:     []string{"robust", "earthy", "smoky"},
	},
	"Zinfandel": {
		Categories: []string{"Genshu"},
		Tastes:     []string{"bold", "jammy", "rich"},
	},
	"Rosé": {
		Categories: []string{"Nigori", "Sparkling"},
		Tastes:     []string{"fruity", "light", "refreshing"},
	},
	"Champagne": {
		Categories: []string{"Sparkling"},
		Tastes:     []string{"bubbly", "crisp", "dry"},
	},
	"Moscato": {
		Categories: []string{"Nigori", "Sparkling"},
		Tastes:     []string{"sweet", "fruity"},
	},
}

// LookupWine resolves a varietal by exact key.
func LookupWine(wine string) (WineMapping, bool) {
	m, ok := wineToSake[wine]
	return m, ok
}

// wineToSakeFolded mirrors wineToSake with lowercased keys.
var wineToSakeFolded = func() map[string]WineMapping {
	out := make(map[string]WineMapping, len(wineToSake))
	for k, v := range wineToSake {
		out[strings.ToLower(k)] = v
	}
	return out
}()

// LookupWineFold resolves a varietal ignoring case. Composable layer on
// top of the exact-match table for call sites that normalize input.
func LookupWineFold(wine string) (WineMapping, bool) {
	m, ok := wineToSakeFolded[strings.ToLower(wine)]
	return m, ok
}

package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Taste sliders on a fixed 1-5 scale. A profile either carries all four
// or none at all.
type TastePreferences struct {
	Sweetness int `json:"sweetness" validate:"min=1,max=5"`
	Acidity   int `json:"acidity" validate:"min=1,max=5"`
	Richness  int `json:"richness" validate:"min=1,max=5"`
	Umami     int `json:"umami" validate:"min=1,max=5"`
}

type PreferenceProfile struct {
	UserID          uint                                  `gorm:"column:user_id;primaryKey" json:"user_id"`
	WinePreferences datatypes.JSONSlice[string]           `gorm:"column:wine_preferences;type:jsonb" json:"wine_preferences"`
	FoodPreferences datatypes.JSONSlice[string]           `gorm:"column:food_preferences;type:jsonb" json:"food_preferences"`
	Tastes          *datatypes.JSONType[TastePreferences] `gorm:"column:tastes;type:jsonb" json:"tastes,omitempty"`
	CreatedAt       time.Time                             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PreferenceProfile) TableName() string {
	return "preference_profiles"
}

// TastePreferences unwraps the optional slider record. The second return
// is false when the user never set sliders.
func (p PreferenceProfile) TastePreferences() (TastePreferences, bool) {
	if p.Tastes == nil {
		return TastePreferences{}, false
	}
	return p.Tastes.Data(), true
}

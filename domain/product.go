package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.sake_products (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name    TEXT NOT NULL,
//     brand           TEXT,
//     category        TEXT NOT NULL,
//     subcategory     TEXT,
//     description     TEXT,
//     taste_profile   TEXT,
//     tasting_notes   JSONB,
//     food_pairings   JSONB,
//     price           NUMERIC,
//     average_rating  NUMERIC,
//     images          JSONB,
//     url             TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type SakeProduct struct {
	ID            uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName   string                      `gorm:"column:product_name;type:text" json:"product_name"`
	Brand         string                      `gorm:"column:brand;type:text" json:"brand"`
	Category      string                      `gorm:"column:category;type:text" json:"category"`
	Subcategory   string                      `gorm:"column:subcategory;type:text" json:"subcategory"`
	Description   string                      `gorm:"column:description;type:text" json:"description"`
	TasteProfile  string                      `gorm:"column:taste_profile;type:text" json:"taste_profile"`
	TastingNotes  datatypes.JSONSlice[string] `gorm:"column:tasting_notes;type:jsonb" json:"tasting_notes"`
	FoodPairings  datatypes.JSONSlice[string] `gorm:"column:food_pairings;type:jsonb" json:"food_pairings"`
	Price         float64                     `gorm:"column:price;type:numeric" json:"price"`
	AverageRating float64                     `gorm:"column:average_rating;type:numeric" json:"average_rating"`
	Images        datatypes.JSONSlice[string] `gorm:"column:images;type:jsonb" json:"images"`
	URL           string                      `gorm:"column:url;type:text" json:"url"`
	CreatedAt     time.Time                   `gorm:"column:created_at" json:"created_at"`
}

func (SakeProduct) TableName() string {
	return "sake_products"
}

// PrimaryImage returns the first catalog image, or "" when none exist.
func (p SakeProduct) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

package rest

import (
	"context"
	"net/http"
	"time"

	"sakeCompass/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	PreferenceHandler struct {
		validate          *validator.Validate
		preferenceService PreferenceService
		timeout           time.Duration
	}

	PreferenceService interface {
		GetProfile(ctx context.Context, userID uint) (*domain.PreferenceProfile, error)
		SaveProfile(ctx context.Context, profile *domain.PreferenceProfile) (*domain.PreferenceProfile, error)
	}

	TasteSlidersRequest struct {
		Sweetness int `json:"sweetness" validate:"min=1,max=5"`
		Acidity   int `json:"acidity" validate:"min=1,max=5"`
		Richness  int `json:"richness" validate:"min=1,max=5"`
		Umami     int `json:"umami" validate:"min=1,max=5"`
	}

	SavePreferencesRequest struct {
		WinePreferences []string             `json:"wine_preferences"`
		FoodPreferences []string             `json:"food_preferences"`
		Tastes          *TasteSlidersRequest `json:"tastes"`
	}
)

func NewPreferenceHandler(svc PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		validate:          validator.New(),
		preferenceService: svc,
		timeout:           10 * time.Second,
	}
}

// GET /api/v1/preferences
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile, err := h.preferenceService.GetProfile(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if profile == nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "preferences not set"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}

// PUT /api/v1/preferences
func (h *PreferenceHandler) SavePreferences(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	profile := &domain.PreferenceProfile{
		UserID:          userID,
		WinePreferences: req.WinePreferences,
		FoodPreferences: req.FoodPreferences,
	}
	if req.Tastes != nil {
		tastes := datatypes.NewJSONType(domain.TastePreferences{
			Sweetness: req.Tastes.Sweetness,
			Acidity:   req.Tastes.Acidity,
			Richness:  req.Tastes.Richness,
			Umami:     req.Tastes.Umami,
		})
		profile.Tastes = &tastes
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	saved, err := h.preferenceService.SaveProfile(ctx, profile)
	if err != nil {
		if err.Error() == "taste sliders must be between 1 and 5" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(saved))
}

package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"oneconversion/internal/services"
	"oneconversion/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetSetting godoc
// @Summary Fetch a settings document by name
// @Tags Settings
// @Produce json
// @Param name path string true "Setting name (site, checkout, footer, marketing)"
// @Success 200 {object} utils.APIResponse
// @Router /settings/{name} [get]
func (s *SettingsController) GetSetting(c *gin.Context) {
	name := c.Param("name")

	payload, err := s.settingsService.GetSetting(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payload, "")
}

// SaveSetting godoc
// @Summary Replace a settings document
// @Tags Settings
// @Accept json
// @Produce json
// @Param name path string true "Setting name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/settings/{name} [put]
func (s *SettingsController) SaveSetting(c *gin.Context) {
	name := c.Param("name")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := s.settingsService.SaveSetting(c.Request.Context(), name, body); err != nil {
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Settings saved successfully")
}

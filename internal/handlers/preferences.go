// internal/handlers/preferences.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shelflife/internal/i18n"
	"github.com/javajoker/shelflife/internal/services"
	"github.com/javajoker/shelflife/internal/utils"
)

type PreferencesHandler struct {
	prefs *services.PreferencesService
}

func NewPreferencesHandler(prefs *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// GET /launch
func (h *PreferencesHandler) Launch(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"next_screen": h.prefs.NextScreen(),
	})
}

// GET /onboarding
func (h *PreferencesHandler) GetOnboarding(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"pages": services.OnboardingPages(),
	})
}

// POST /onboarding/complete
func (h *PreferencesHandler) CompleteOnboarding(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if _, err := h.prefs.CompleteOnboarding(); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyOnboardingDone),
		"next_screen": h.prefs.NextScreen(),
	})
}

// GET /preferences
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	prefs := h.prefs.Get()
	utils.SuccessResponse(c, gin.H{
		"preferences": prefs,
		"theme":       services.ThemeFor(prefs.ColorTheme),
	})
}

// PUT /preferences
func (h *PreferencesHandler) SavePreferences(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	prefs, err := h.prefs.SaveSetup(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTheme) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyPreferencesError), err.Error())
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	theme := services.ThemeFor(prefs.ColorTheme)
	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeySetupCompleted),
		"theme_toast": i18n.T(lang, i18n.KeyThemeSelected, theme.Name),
		"preferences": prefs,
		"theme":       theme,
		"next_screen": h.prefs.NextScreen(),
	})
}

// GET /themes
func (h *PreferencesHandler) GetThemes(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"themes": services.Themes(),
	})
}

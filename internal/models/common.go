// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type ColorTheme string

const (
	ColorThemeWhite  ColorTheme = "white"
	ColorThemeGreen  ColorTheme = "green"
	ColorThemeBlue   ColorTheme = "blue"
	ColorThemePink   ColorTheme = "pink"
	ColorThemePurple ColorTheme = "purple"
	ColorThemeBlack  ColorTheme = "black"
)

var ColorThemes = []ColorTheme{
	ColorThemeWhite,
	ColorThemeGreen,
	ColorThemeBlue,
	ColorThemePink,
	ColorThemePurple,
	ColorThemeBlack,
}

func (t ColorTheme) Valid() bool {
	for _, known := range ColorThemes {
		if t == known {
			return true
		}
	}
	return false
}

type Screen string

const (
	ScreenOnboarding Screen = "onboarding"
	ScreenSetup      Screen = "setup"
	ScreenProducts   Screen = "products"
)

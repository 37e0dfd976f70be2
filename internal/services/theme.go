// internal/services/theme.go
package services

import "github.com/javajoker/shelflife/internal/models"

type Theme struct {
	Key        models.ColorTheme `json:"key"`
	Name       string            `json:"name"`
	Color      string            `json:"color"`
	LightColor string            `json:"light_color"`
}

var themes = map[models.ColorTheme]Theme{
	models.ColorThemeWhite:  {Key: models.ColorThemeWhite, Name: "Light", Color: "#FFFFFFFF", LightColor: "#FFF5F5F5"},
	models.ColorThemeGreen:  {Key: models.ColorThemeGreen, Name: "Green", Color: "#FF4CAF50", LightColor: "#FFE8F5E9"},
	models.ColorThemeBlue:   {Key: models.ColorThemeBlue, Name: "Blue", Color: "#FF2196F3", LightColor: "#FFE3F2FD"},
	models.ColorThemePink:   {Key: models.ColorThemePink, Name: "Pink", Color: "#FFE91E63", LightColor: "#FFFCE4EC"},
	models.ColorThemePurple: {Key: models.ColorThemePurple, Name: "Purple", Color: "#FF9C27B0", LightColor: "#FFF3E5F5"},
	models.ColorThemeBlack:  {Key: models.ColorThemeBlack, Name: "Dark", Color: "#FF212121", LightColor: "#FFF5F5F5"},
}

// ThemeFor falls back to the white theme for unknown keys.
func ThemeFor(key models.ColorTheme) Theme {
	if t, ok := themes[key]; ok {
		return t
	}
	return themes[models.ColorThemeWhite]
}

func Themes() []Theme {
	out := make([]Theme, 0, len(models.ColorThemes))
	for _, key := range models.ColorThemes {
		out = append(out, themes[key])
	}
	return out
}

// internal/models/preferences.go
package models

import "time"

const DefaultUserName = "User"

// Preferences is stored as a single row; ID is always 1.
type Preferences struct {
	ID             uint       `json:"-" gorm:"primaryKey"`
	UserName       string     `json:"user_name" gorm:"size:100;not null;default:'User'"`
	ColorTheme     ColorTheme `json:"color_theme" gorm:"type:varchar(20);not null;default:'white'"`
	Notifications  bool       `json:"notifications" gorm:"not null"`
	FirstTime      bool       `json:"first_time" gorm:"not null"`
	SetupCompleted bool       `json:"setup_completed" gorm:"not null"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		ID:            1,
		UserName:      DefaultUserName,
		ColorTheme:    ColorThemeWhite,
		Notifications: true,
		FirstTime:     true,
	}
}

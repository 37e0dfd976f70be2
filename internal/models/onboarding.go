// internal/models/onboarding.go
package models

type OnboardingPage struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// internal/services/onboarding_service.go
package services

import "github.com/javajoker/shelflife/internal/models"

var onboardingPages = []models.OnboardingPage{
	{Emoji: "📦", Title: "Welcome to ExpiryTrack", Description: "Never let your products expire again! Track all your items in one place."},
	{Emoji: "📅", Title: "Track Your Products", Description: "Add products with expiry dates and get organized. Add manually the dates."},
	{Emoji: "🔔", Title: "Get Smart Notifications", Description: "We'll remind you before products expire. Never waste food or money again!"},
	{Emoji: "🎨", Title: "Customize Your Experience", Description: "Choose your theme and notification preferences. Make it yours!"},
}

func OnboardingPages() []models.OnboardingPage {
	out := make([]models.OnboardingPage, len(onboardingPages))
	copy(out, onboardingPages)
	return out
}

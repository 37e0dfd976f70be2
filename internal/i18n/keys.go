// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Products
	KeyProductAdded        = "product.added"
	KeyProductRemoved      = "product.removed"
	KeyProductNotFound     = "product.not_found"
	KeyProductOutOfRange   = "product.out_of_range"
	KeyProductDateFallback = "product.date_fallback"
	KeyProductsReset       = "product.reset"
	KeyProductInvalidID    = "product.invalid_id"
	KeyProductInvalidIndex = "product.invalid_position"

	// Preferences
	KeySetupCompleted   = "setup.completed"
	KeyThemeSelected    = "setup.theme_selected"
	KeyOnboardingDone   = "onboarding.completed"
	KeyPreferencesError = "setup.invalid"

	// Dates
	KeyDateInvalid = "date.invalid"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimited = "rate.limited"

	// Server
	KeyInternalError = "server.internal_error"
)

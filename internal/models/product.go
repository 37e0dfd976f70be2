// internal/models/product.go
package models

import (
	"time"

	"github.com/javajoker/shelflife/internal/expiry"
)

// Product is immutable once added; Position only mirrors list order for persistence.
type Product struct {
	BaseModel
	Name       string    `json:"name" gorm:"size:255;not null"`
	ExpiryDate time.Time `json:"expiry_date" gorm:"type:date;not null"`
	Position   int       `json:"-" gorm:"not null;index"`
}

func (p Product) StorageDate() string {
	return expiry.FormatStorage(p.ExpiryDate)
}

func (p Product) DisplayDate() string {
	return expiry.FormatDisplay(p.ExpiryDate)
}

// DisplayText is the single-line list entry, e.g. "🥛 Milk - Expires: Dec 25, 2024".
func (p Product) DisplayText() string {
	return p.Name + " - Expires: " + p.DisplayDate()
}

func (p Product) Status(reference time.Time) expiry.Status {
	return expiry.Classify(p.ExpiryDate, reference)
}

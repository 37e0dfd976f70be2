// internal/services/render.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/models"
)

// Palette mirrors the Android holo colors the list used per tier.
type Palette struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	Indicator  string `json:"indicator"`
}

const (
	holoRedDark     = "#FFCC0000"
	holoRedLight    = "#FFFF4444"
	holoOrangeDark  = "#FFFF8800"
	holoOrangeLight = "#FFFFBB33"
	holoGreenDark   = "#FF669900"
	holoGreenLight  = "#FF99CC00"
	warningTint     = "#FFFBE9E7"
)

var tierPalettes = map[expiry.Tier]Palette{
	expiry.TierExpired:  {Text: holoRedDark, Background: holoRedLight, Indicator: holoRedDark},
	expiry.TierCritical: {Text: holoOrangeDark, Background: holoOrangeLight, Indicator: holoOrangeDark},
	expiry.TierWarning:  {Text: holoOrangeLight, Background: warningTint, Indicator: holoOrangeLight},
	expiry.TierFresh:    {Text: holoGreenDark, Background: holoGreenLight, Indicator: holoGreenDark},
}

var tierStatusText = map[expiry.Tier]string{
	expiry.TierExpired:  "Expired",
	expiry.TierCritical: "Expiring Soon!",
	expiry.TierWarning:  "Warning",
	expiry.TierFresh:    "Fresh",
}

func PaletteFor(tier expiry.Tier) Palette {
	return tierPalettes[tier]
}

func StatusText(tier expiry.Tier) string {
	return tierStatusText[tier]
}

// DaysLeftLabel is "EXPIRED" for past dates, otherwise "N days left".
func DaysLeftLabel(status expiry.Status) string {
	if status.Expired() {
		return "EXPIRED"
	}
	return fmt.Sprintf("%d days left", status.DaysLeft)
}

// Icon returns the leading grapheme cluster of the name (usually an emoji).
func Icon(name string) string {
	if name == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(name, -1)
	return cluster
}

type ProductRow struct {
	ID          uuid.UUID     `json:"id"`
	Index       int           `json:"index"`
	Icon        string        `json:"icon"`
	Name        string        `json:"name"`
	ExpiryDate  string        `json:"expiry_date"`
	DisplayDate string        `json:"display_date"`
	ExpiryText  string        `json:"expiry_text"`
	DisplayText string        `json:"display_text"`
	Status      expiry.Status `json:"status"`
	DaysLabel   string        `json:"days_label"`
	StatusText  string        `json:"status_text"`
	Colors      Palette       `json:"colors"`
}

func RenderRow(p models.Product, index int, reference time.Time) ProductRow {
	status := p.Status(reference)
	return ProductRow{
		ID:          p.ID,
		Index:       index,
		Icon:        Icon(p.Name),
		Name:        p.Name,
		ExpiryDate:  p.StorageDate(),
		DisplayDate: p.DisplayDate(),
		ExpiryText:  "Expires: " + p.DisplayDate(),
		DisplayText: p.DisplayText(),
		Status:      status,
		DaysLabel:   DaysLeftLabel(status),
		StatusText:  StatusText(status.Tier),
		Colors:      PaletteFor(status.Tier),
	}
}

type ListView struct {
	Title     string       `json:"title"`
	CountText string       `json:"count_text"`
	Reference string       `json:"reference_date"`
	Rows      []ProductRow `json:"rows"`
}

func ListTitle(userName string) string {
	if userName == "" {
		userName = models.DefaultUserName
	}
	return "📦 " + userName + "'s Products"
}

func CountText(n int) string {
	return fmt.Sprintf("Total: %d products", n)
}

// RenderList classifies every product against one reference time so all
// rows of a pass agree on "today".
func RenderList(products []models.Product, userName string, reference time.Time) ListView {
	rows := make([]ProductRow, len(products))
	for i, p := range products {
		rows[i] = RenderRow(p, i, reference)
	}
	return ListView{
		Title:     ListTitle(userName),
		CountText: CountText(len(products)),
		Reference: expiry.FormatStorage(reference),
		Rows:      rows,
	}
}

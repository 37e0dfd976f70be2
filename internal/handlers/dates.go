// internal/handlers/dates.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/i18n"
	"github.com/javajoker/shelflife/internal/utils"
)

type DateHandler struct {
	clock expiry.Clock
}

func NewDateHandler(clock expiry.Clock) *DateHandler {
	return &DateHandler{clock: clock}
}

// ConvertQuery takes either date form; storage wins when both are given.
type ConvertQuery struct {
	Storage string `form:"storage" validate:"omitempty,storage_date"`
	Display string `form:"display" validate:"required_without=Storage"`
}

// GET /dates/convert?storage=2024-12-25 or ?display=Dec 25, 2024
func (h *DateHandler) Convert(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var query ConvertQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyDateInvalid), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&query)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	var (
		date time.Time
		err  error
	)
	if query.Storage != "" {
		date, err = expiry.ParseStorage(query.Storage)
	} else {
		date, err = expiry.ParseDisplay(query.Display)
	}
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyDateInvalid), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"storage": expiry.FormatStorage(date),
		"display": expiry.FormatDisplay(date),
		"status":  expiry.Classify(date, h.clock.Now()),
	})
}

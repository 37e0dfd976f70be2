// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/i18n"
	"github.com/javajoker/shelflife/internal/models"
	"github.com/javajoker/shelflife/internal/services"
	"github.com/javajoker/shelflife/internal/utils"
)

type ProductHandler struct {
	store   *services.ProductStore
	catalog *services.Catalog
	prefs   *services.PreferencesService
	clock   expiry.Clock
}

type AddProductRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	ExpiryDate string `json:"expiry_date"`
}

func NewProductHandler(store *services.ProductStore, catalog *services.Catalog, prefs *services.PreferencesService, clock expiry.Clock) *ProductHandler {
	return &ProductHandler{
		store:   store,
		catalog: catalog,
		prefs:   prefs,
		clock:   clock,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	products := h.store.List()

	// One reference time for the whole list.
	view := services.RenderList(products, h.prefs.UserName(), h.clock.Now())
	start, end := utils.PageBounds(len(view.Rows), params)
	view.Rows = view.Rows[start:end]

	result := utils.CreatePaginationResult(view, int64(len(products)), params)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) AddProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, parsed := h.store.NewProduct(req.Name, req.ExpiryDate)
	index, err := h.store.Add(product)
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	response := gin.H{
		"message":       i18n.T(lang, i18n.KeyProductAdded, product.Name),
		"product":       services.RenderRow(product, index, h.clock.Now()),
		"date_fallback": parsed.Fallback,
	}
	if parsed.Fallback {
		response["warning"] = i18n.T(lang, i18n.KeyProductDateFallback, req.ExpiryDate)
	}
	utils.CreatedResponse(c, response)
}

// POST /products/sample
func (h *ProductHandler) AddSampleProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	product, index, err := h.catalog.AddRandom()
	if err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductAdded, product.Name),
		"product": services.RenderRow(product, index, h.clock.Now()),
	})
}

// POST /products/reset
func (h *ProductHandler) ResetProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.catalog.Reset(); err != nil {
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductsReset),
		"count":   h.store.Count(),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	product, index, err := h.store.FindByID(id)
	if err != nil {
		h.storeError(c, err, index)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": services.RenderRow(product, index, h.clock.Now()),
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	removed, err := h.store.RemoveByID(id)
	if err != nil {
		h.storeError(c, err, -1)
		return
	}

	h.removed(c, lang, removed)
}

// GET /positions/:index
func (h *ProductHandler) GetProductAt(c *gin.Context) {
	index, ok := h.parseIndex(c)
	if !ok {
		return
	}

	product, err := h.store.Get(index)
	if err != nil {
		h.storeError(c, err, index)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": services.RenderRow(product, index, h.clock.Now()),
	})
}

// DELETE /positions/:index
func (h *ProductHandler) DeleteProductAt(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	index, ok := h.parseIndex(c)
	if !ok {
		return
	}

	removed, err := h.store.RemoveAt(index)
	if err != nil {
		h.storeError(c, err, index)
		return
	}

	h.removed(c, lang, removed)
}

func (h *ProductHandler) removed(c *gin.Context, lang string, product models.Product) {
	logrus.WithFields(logrus.Fields{
		"product": product.Name,
		"id":      product.ID,
	}).Info("Product removed")

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyProductRemoved, product.Name),
		"product_id": product.ID,
		"count_text": services.CountText(h.store.Count()),
	})
}

func (h *ProductHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductInvalidID), nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProductHandler) parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductInvalidIndex), nil)
		return 0, false
	}
	return index, true
}

func (h *ProductHandler) storeError(c *gin.Context, err error, index int) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrOutOfRange):
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductOutOfRange, index))
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
	default:
		utils.InternalErrorResponse(c, err)
	}
}

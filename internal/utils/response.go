// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shelflife/internal/i18n"
)

// Context keys shared with the middleware package.
const (
	LangContextKey      = "lang"
	RequestIDContextKey = "request_id"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorMeta lets clients quote the request id when reporting a failure.
type ErrorMeta struct {
	RequestID string `json:"request_id,omitempty"`
}

func respond(c *gin.Context, status int, data, meta interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data, Meta: meta})
}

func fail(c *gin.Context, status int, code, message string, details interface{}) {
	resp := APIResponse{
		Error: &APIError{Code: code, Message: message, Details: details},
	}
	if id := c.GetString(RequestIDContextKey); id != "" {
		resp.Meta = ErrorMeta{RequestID: id}
	}
	c.JSON(status, resp)
}

func SuccessResponse(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, data, nil)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	respond(c, http.StatusCreated, data, nil)
}

// PaginatedResponse writes one page of data plus pagination headers and meta.
func PaginatedResponse(c *gin.Context, result PaginationResult) {
	SetPaginationHeaders(c, result)
	respond(c, http.StatusOK, result.Data, gin.H{
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
	})
}

// BadRequestResponse falls back to a generic translated message when message is empty.
func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyValidationInvalid, "request")
	}
	fail(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func ValidationErrorResponse(c *gin.Context, errs []ValidationError) {
	message := i18n.T(GetLangFromContext(c), i18n.KeyValidationInvalid, "input")
	fail(c, http.StatusBadRequest, "VALIDATION_ERROR", message, errs)
}

func NotFoundResponse(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func TooManyRequestsResponse(c *gin.Context) {
	fail(c, http.StatusTooManyRequests, "RATE_LIMITED", i18n.T(GetLangFromContext(c), i18n.KeyRateLimited), nil)
}

// InternalErrorResponse attaches err to the context for the request logger
// and answers with a generic message; err never reaches the client.
func InternalErrorResponse(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", i18n.T(GetLangFromContext(c), i18n.KeyInternalError), nil)
}

func GetLangFromContext(c *gin.Context) string {
	if lang := c.GetString(LangContextKey); lang != "" {
		return lang
	}
	return "en"
}

package helper

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mcp-playground/models"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta describes the page a list response carries.
type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// HTTPHelper ...
type HTTPHelper struct {
	Logger *slog.Logger
}

func NewHTTPHelper(logger *slog.Logger) *HTTPHelper {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHelper{Logger: logger}
}

// GetStatusCode ...
// Map a service error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validationErr models.ErrorValidation
		notFoundErr   models.ErrorNotFound
		conflictErr   models.ErrorConflict
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// SendAccepted ...
func (u *HTTPHelper) SendAccepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Response{Success: true, Data: data})
}

// SendList ...
// Send one page of a list together with its paging meta.
func (u *HTTPHelper) SendList(c *gin.Context, data any, total, page, limit int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    &Meta{Total: total, Page: page, Limit: limit},
	})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.sendFailure(c, http.StatusBadRequest, message)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.sendFailure(c, http.StatusNotFound, message)
}

// SendError ...
// Send the failure envelope for err. Unexpected errors are logged and
// answered with message instead of their own text.
func (u *HTTPHelper) SendError(c *gin.Context, err error, message string) {
	code := u.GetStatusCode(err)
	if code == http.StatusInternalServerError {
		u.Logger.ErrorContext(c.Request.Context(), message,
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
		)
		u.sendFailure(c, code, message)
		return
	}
	u.sendFailure(c, code, err.Error())
}

func (u *HTTPHelper) sendFailure(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Success: false, Error: message})
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/smartlib/library/internal/circulation"
	"github.com/smartlib/library/internal/database/catalog"
	"github.com/smartlib/library/internal/database/members"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// respondConflict sends a 409 Conflict response.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 response. The actual
// error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Error().Err(err).Str("context", context).Msg("internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondDomainError maps the typed store/service errors onto HTTP statuses:
// not-found errors to 404, conflict-class errors (duplicate id, unavailable
// book, nothing to return, referenced delete, ledger inconsistency) to 409,
// everything else to 500.
func respondDomainError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, members.ErrNotFound),
		errors.Is(err, circulation.ErrBookNotFound),
		errors.Is(err, circulation.ErrMemberNotFound):
		respondNotFound(c, err.Error())
	case errors.Is(err, catalog.ErrDuplicateID),
		errors.Is(err, members.ErrDuplicateID),
		errors.Is(err, catalog.ErrReferenced),
		errors.Is(err, members.ErrReferenced),
		errors.Is(err, circulation.ErrBookUnavailable),
		errors.Is(err, circulation.ErrNoOpenLoan),
		errors.Is(err, circulation.ErrLedgerInconsistent):
		respondConflict(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/akondrashov/stash/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates a service error into an HTTP status and a
// generic message. Wrapped detail (token reasons, store errors) never
// reaches the response body.
func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFromError(err), errorResponse{Error: messageFromError(err)})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrorUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func messageFromError(err error) string {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return "invalid request"
	case errors.Is(err, common.ErrorUnauthorized):
		return "unauthorized"
	case errors.Is(err, common.ErrorForbidden):
		return "forbidden"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, common.ErrorConflict):
		return "already exists"
	case errors.Is(err, common.ErrorUnavailable):
		return "service unavailable"
	default:
		return "internal error"
	}
}

// respondBindError handles gin binding failures. Validator errors name
// the offending field; everything else is reported as a malformed body.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error: "invalid field: " + verrs[0].Field(),
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
}

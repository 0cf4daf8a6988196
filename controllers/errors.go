package controllers

import (
	"errors"

	"github.com/pathania28/s2y-taste-trail/pkg/resp"
	"github.com/pathania28/s2y-taste-trail/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service taxonomy onto HTTP codes in one
// place, so every controller surfaces the same failure contract.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidDeliveryInfo),
		errors.Is(err, services.ErrItemUnavailable):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBackendUnavailable):
		resp.Unavailable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

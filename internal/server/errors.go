package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimhollow/herotrack/internal/model"
	"github.com/brimhollow/herotrack/internal/service"
)

// respondError maps service and model errors to HTTP status codes:
// unknown ids and chart keys are 404, validation failures and illegal
// actions (equip refusals, permanent removals) are 422 with the
// human-readable reason, anything else is 500.
func respondError(c *gin.Context, err error) {
	var verr *model.ValidationError
	var eerr *model.EquipError

	switch {
	case errors.Is(err, service.ErrHeroNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrAdjustmentNotFound),
		errors.Is(err, service.ErrInjuryNotFound),
		errors.Is(err, service.ErrMadnessNotFound),
		errors.Is(err, service.ErrMutationNotFound),
		errors.Is(err, service.ErrUnknownChartKey),
		errors.Is(err, service.ErrUnknownHeroClass):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{"field": verr.Field, "message": verr.Message},
		})
	case errors.As(err, &eerr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": eerr.Reason})
	case errors.Is(err, model.ErrPermanent):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

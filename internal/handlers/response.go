package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hvac_reward/internal/reward"
	"hvac_reward/internal/service"
)

const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

func isClientError(err error) bool {
	for _, target := range []error{
		reward.ErrValidation,
		service.ErrEmptyBatch,
		service.ErrBatchTooLarge,
		service.ErrInvalidTimeRange,
		service.ErrAgentIDRequired,
		service.ErrScenarioIDRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeServiceError maps input errors to 400 and ownership conflicts to 403,
// both with their message, and everything else to a logged 500.
func (h *Handler) writeServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if errors.Is(err, service.ErrInventoryForbidden) {
		if h.log != nil {
			h.log.Infow(logKey, append([]interface{}{"err", err, "user_id", currentUser(c)}, kv...)...)
		}
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if isClientError(err) {
		if h.log != nil {
			h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

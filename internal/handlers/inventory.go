package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hvac_reward/internal/models"
)

// InventoryRequest lists the device ids a scenario must always report.
type InventoryRequest struct {
	ZoneIDs       []string `json:"zone_ids" example:"zone-1,zone-2"`
	AirHandlerIDs []string `json:"air_handler_ids" example:"ahu-1"`
	BoilerIDs     []string `json:"boiler_ids" example:"boiler-1"`
}

// @Summary      Register scenario inventory
// @Description  Once registered, every reward request for the scenario must include each listed id.
// @Description  Only the user that first registered the scenario may replace its inventory.
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Scenario id"
// @Param        body  body      InventoryRequest  true  "Device ids"
// @Success      200   {object}  models.Inventory
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/scenarios/{id}/inventory [put]
// @Security     BearerAuth
func (h *Handler) putInventory(c *gin.Context) {
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	inv, err := h.services.Inventory.Register(c.Request.Context(), currentUser(c), models.Inventory{
		ScenarioID:    c.Param("id"),
		ZoneIDs:       req.ZoneIDs,
		AirHandlerIDs: req.AirHandlerIDs,
		BoilerIDs:     req.BoilerIDs,
	})
	if err != nil {
		h.writeServiceError(c, "inventory_put_failed", err, "scenario_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary      Get scenario inventory
// @Tags         scenarios
// @Produce      json
// @Param        id   path      string  true  "Scenario id"
// @Success      200  {object}  models.Inventory
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/scenarios/{id}/inventory [get]
// @Security     BearerAuth
func (h *Handler) getInventory(c *gin.Context) {
	inv, err := h.services.Inventory.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, "inventory_get_failed", err, "scenario_id", c.Param("id"))
		return
	}
	if inv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no inventory registered for scenario"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

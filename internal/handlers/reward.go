package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"hvac_reward"
	"hvac_reward/internal/models"
	"hvac_reward/internal/wire"
)

const (
	maxWireBody    = 1 << 20
	headerRecordID = "X-Record-ID"
)

// BatchRequest is the payload of the batch endpoint.
type BatchRequest struct {
	Infos []hvac_reward.RewardInfo `json:"infos"`
}

// BatchResponse lists stored records in request order.
type BatchResponse struct {
	Count   int                   `json:"count"`
	Records []models.RewardRecord `json:"records"`
}

// @Summary      Compute reward
// @Description  Computes, stores and publishes the reward for one timestep.
// @Tags         reward
// @Accept       json
// @Produce      json
// @Param        body  body      hvac_reward.RewardInfo  true  "Reward info"
// @Success      200   {object}  models.RewardRecord
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/reward [post]
// @Security     BearerAuth
func (h *Handler) computeReward(c *gin.Context) {
	var info hvac_reward.RewardInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rec, err := h.services.Reward.Compute(c.Request.Context(), currentUser(c), info)
	if err != nil {
		h.writeServiceError(c, "reward_compute_failed", err, "agent_id", info.AgentID, "scenario_id", info.ScenarioID)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Compute reward (protobuf)
// @Description  Accepts a protobuf-encoded RewardInfo and answers with a protobuf-encoded RewardResponse.
// @Tags         reward
// @Accept       application/x-protobuf
// @Produce      application/x-protobuf
// @Success      200  {string}  string  "encoded RewardResponse"
// @Header       200  {string}  X-Record-ID  "id of the stored record"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string  "response value exceeds the float32 range"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/reward/wire [post]
// @Security     BearerAuth
func (h *Handler) computeRewardWire(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWireBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	info, err := wire.UnmarshalInfo(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rec, err := h.services.Reward.Compute(c.Request.Context(), currentUser(c), info)
	if err != nil {
		h.writeServiceError(c, "reward_compute_wire_failed", err, "agent_id", info.AgentID)
		return
	}
	c.Header(headerRecordID, rec.ID)
	out, err := wire.MarshalResponse(rec.Response)
	if err != nil {
		// The record is stored; JSON history still carries the float64 values.
		if h.log != nil {
			h.log.Infow("reward_wire_encode_failed", "record_id", rec.ID, "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, wire.ContentType, out)
}

// @Summary      Compute rewards in batch
// @Description  Computes all infos; nothing is stored unless every info is valid.
// @Tags         reward
// @Accept       json
// @Produce      json
// @Param        body  body      BatchRequest  true  "Reward infos"
// @Success      200   {object}  BatchResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/reward/batch [post]
// @Security     BearerAuth
func (h *Handler) computeRewardBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	recs, err := h.services.Reward.ComputeBatch(c.Request.Context(), currentUser(c), req.Infos)
	if err != nil {
		h.writeServiceError(c, "reward_batch_failed", err, "size", len(req.Infos))
		return
	}
	c.JSON(http.StatusOK, BatchResponse{Count: len(recs), Records: recs})
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hvac_reward/internal/export"
	"hvac_reward/internal/models"
)

const (
	errFromInvalid  = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errLimitInvalid = "invalid 'limit'; use a positive integer"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}

// parseRewardFilter reads agent_id, scenario_id, from, to and limit. A
// date-only 'to' covers the whole day. On failure the 400 is already written.
func parseRewardFilter(c *gin.Context) (models.RewardFilter, bool) {
	f := models.RewardFilter{
		AgentID:    c.Query("agent_id"),
		ScenarioID: c.Query("scenario_id"),
	}
	var err error
	if qs := c.Query("from"); qs != "" {
		if f.From, err = parseQueryTime(qs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return f, false
		}
	}
	if qs := c.Query("to"); qs != "" {
		if f.To, err = parseQueryTime(qs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return f, false
		}
		if isDateOnly(qs) {
			f.To = f.To.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errLimitInvalid})
			return f, false
		}
		f.Limit = n
	}
	return f, true
}

// @Summary      List rewards
// @Description  Filter stored rewards. If 'to' is date-only it is treated as end-of-day inclusive.
// @Tags         rewards
// @Produce      json
// @Param        agent_id     query  string  false  "Agent id"
// @Param        scenario_id  query  string  false  "Scenario id"
// @Param        from         query  string  false  "Earliest start (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to           query  string  false  "Latest end (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-31)
// @Param        limit        query  int     false  "Maximum number of records"
// @Success      200  {object}  map[string]interface{}  "count, records"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/rewards [get]
// @Security     BearerAuth
func (h *Handler) listRewards(c *gin.Context) {
	f, ok := parseRewardFilter(c)
	if !ok {
		return
	}
	recs, err := h.services.History.List(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, "rewards_list_failed", err, "agent_id", f.AgentID, "from", f.From, "to", f.To)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(recs),
		"records": recs,
	})
}

// @Summary      Latest reward
// @Tags         rewards
// @Produce      json
// @Param        agent_id  query     string  true  "Agent id"
// @Success      200       {object}  models.RewardRecord
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /api/v1/rewards/latest [get]
// @Security     BearerAuth
func (h *Handler) latestReward(c *gin.Context) {
	agentID := c.Query("agent_id")
	rec, err := h.services.History.Latest(c.Request.Context(), agentID)
	if err != nil {
		h.writeServiceError(c, "rewards_latest_failed", err, "agent_id", agentID)
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no reward recorded for agent"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Export rewards
// @Description  Same filters as the list endpoint, rendered as an xlsx workbook.
// @Tags         rewards
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        agent_id     query  string  false  "Agent id"
// @Param        scenario_id  query  string  false  "Scenario id"
// @Param        from         query  string  false  "Earliest start"
// @Param        to           query  string  false  "Latest end"
// @Success      200  {file}    file
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/rewards/export [get]
// @Security     BearerAuth
func (h *Handler) exportRewards(c *gin.Context) {
	f, ok := parseRewardFilter(c)
	if !ok {
		return
	}
	b, err := h.services.History.Export(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, "rewards_export_failed", err, "agent_id", f.AgentID)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="rewards.xlsx"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, b)
}

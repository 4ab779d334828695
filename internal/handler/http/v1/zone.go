package v1

import (
	"net/http"
	"time"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary Create a new disaster zone
// @Description Create a disaster zone. Radius is in kilometres, 0 is allowed. Admin only.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} DisasterZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.requestLog(c, "createZone")
	if !h.bind(c, log, &input) {
		return
	}

	model := CreateDTOToZoneModel(input)
	if err := h.zoneService.CreateZone(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(model))
}

// @Summary Get a list of disaster zones
// @Description Get a paginated list of zones, or every zone of one disaster type when `type` is set.
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param type query string false "Disaster type, e.g. FLOOD"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} DisasterZoneResponse
// @Failure 400 {object} map[string]string "Unknown disaster type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.requestLog(c, "listZones")

	var (
		zones []*models.DisasterZone
		err   error
	)
	if disasterType := c.Query("type"); disasterType != "" {
		zones, err = h.zoneService.FindByDisasterType(c.Request.Context(), models.DisasterType(disasterType))
	} else {
		page, pageSize := pagination(c)
		zones, err = h.zoneService.ListZones(c.Request.Context(), page, pageSize)
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Get disaster zone by ID
// @Description Get a single zone with its safety tips.
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 200 {object} DisasterZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [get]
func (h *Handler) getZone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.requestLog(c, "getZone").WithField("id", id)

	zone, err := h.zoneService.GetZone(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(zone))
}

// @Summary Update an existing disaster zone
// @Description Update a zone by ID. `version` must match the stored version (0 skips the check). Admin only.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Param zone body UpdateZoneRequest true "Zone update request"
// @Success 200 {object} DisasterZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.requestLog(c, "updateZone").WithField("id", id)

	var input UpdateZoneRequest
	if !h.bind(c, log, &input) {
		return
	}

	model := UpdateDTOToZoneModel(input)
	model.ID = id

	if err := h.zoneService.UpdateZone(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(model))
}

// @Summary Delete a disaster zone
// @Description Delete a zone and all of its safety tips. SOS requests keep existing without a zone. Admin only.
// @Tags Zones
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.requestLog(c, "deleteZone").WithField("id", id)

	if err := h.zoneService.DeleteZone(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add a safety tip
// @Description Attach a new safety tip to a zone. Admin only.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Param tip body SafetyTipRequest true "Safety tip"
// @Success 201 {object} SafetyTipResponse
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /zones/{id}/tips [post]
func (h *Handler) addSafetyTip(c *gin.Context) {
	zoneID, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.requestLog(c, "addSafetyTip").WithField("id", zoneID)

	var input SafetyTipRequest
	if !h.bind(c, log, &input) {
		return
	}

	tip := &models.SafetyTip{DisasterZoneID: zoneID, Title: input.Title, Content: input.Content}
	if err := h.zoneService.AddSafetyTip(c.Request.Context(), tip); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSafetyTipResponse(tip))
}

// @Summary Remove a safety tip
// @Description Remove a safety tip from its zone. The tip is deleted. Admin only.
// @Tags Zones
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Param tipId path int true "Safety tip ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Tip not found in zone"
// @Router /zones/{id}/tips/{tipId} [delete]
func (h *Handler) removeSafetyTip(c *gin.Context) {
	zoneID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tipID, ok := parseID(c, "tipId")
	if !ok {
		return
	}
	log := h.requestLog(c, "removeSafetyTip").WithField("id", zoneID).WithField("tip_id", tipID)

	if err := h.zoneService.RemoveSafetyTip(c.Request.Context(), zoneID, tipID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get zone statistics
// @Description Zone counts per danger level, and zones created before and within the stats window.
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ZoneStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/stats [get]
func (h *Handler) getZoneStats(c *gin.Context) {
	log := h.requestLog(c, "getZoneStats")

	stats, err := h.zoneService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToZoneStatsResponse(stats))
}

// @Summary Count zones created in a period
// @Description Count zones with created_at in [from, to], both bounds inclusive. from after to gives 0.
// @Tags Zones
// @Produce json
// @Security BearerAuth
// @Param from query string true "RFC3339 lower bound"
// @Param to query string true "RFC3339 upper bound"
// @Success 200 {object} CountResponse
// @Failure 400 {object} map[string]string "Invalid bounds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/count [get]
func (h *Handler) countZonesCreated(c *gin.Context) {
	log := h.requestLog(c, "countZonesCreated")

	from, errFrom := time.Parse(time.RFC3339, c.Query("from"))
	to, errTo := time.Parse(time.RFC3339, c.Query("to"))
	if errFrom != nil || errTo != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be RFC3339 timestamps"})
		return
	}

	count, err := h.zoneService.CountCreatedBetween(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Count: count})
}

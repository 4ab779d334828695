package v1

import (
	"net/http"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary Raise an SOS request
// @Description Create a PENDING SOS request for the current user. The containing zone is attached when one covers the point.
// @Tags SOS
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sos body RaiseSosRequest true "SOS request"
// @Success 201 {object} SosRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) raiseSos(c *gin.Context) {
	var input RaiseSosRequest
	log := h.requestLog(c, "raiseSos")
	if !h.bind(c, log, &input) {
		return
	}

	req, err := h.sosService.RaiseSos(c.Request.Context(), currentUser(c), *input.Latitude, *input.Longitude, input.Message)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondSos(c, log, http.StatusCreated, req)
}

// @Summary List my SOS requests
// @Description Get every SOS request raised by the current user, newest first.
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SosRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/mine [get]
func (h *Handler) listMySos(c *gin.Context) {
	log := h.requestLog(c, "listMySos")

	requests, err := h.sosService.ListMine(c.Request.Context(), currentUser(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondSosList(c, log, requests)
}

// @Summary List all SOS requests
// @Description Get a paginated list of every SOS request, newest first. Admin only.
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} SosRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/all [get]
func (h *Handler) listAllSos(c *gin.Context) {
	log := h.requestLog(c, "listAllSos")
	page, pageSize := pagination(c)

	requests, err := h.sosService.ListAll(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondSosList(c, log, requests)
}

// @Summary Get SOS request by ID
// @Description Get a single SOS request. Only its owner or an admin may read it.
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Param id path int true "SOS request ID"
// @Success 200 {object} SosRequestResponse
// @Failure 400 {object} map[string]string "Invalid SOS request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "SOS request not found"
// @Router /sos/{id} [get]
func (h *Handler) getSos(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.requestLog(c, "getSos").WithField("id", id)

	req, err := h.sosService.GetSosRequest(c.Request.Context(), currentUser(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondSos(c, log, http.StatusOK, req)
}

// @Summary Update SOS request status
// @Description Move an SOS request along PENDING -> IN_PROGRESS -> RESOLVED. Admin only.
// @Tags SOS
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "SOS request ID"
// @Param status body UpdateSosStatusRequest true "New status"
// @Success 200 {object} SosRequestResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "SOS request not found"
// @Failure 409 {object} map[string]string "Transition not allowed or version conflict"
// @Router /sos/{id}/status [patch]
func (h *Handler) updateSosStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	log := h.requestLog(c, "updateSosStatus").WithField("id", id)

	var input UpdateSosStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	req, err := h.sosService.UpdateStatus(c.Request.Context(), id, models.SosStatus(input.Status), input.Version)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.respondSos(c, log, http.StatusOK, req)
}

// @Summary SOS statistics
// @Description Count SOS requests per status. Admin only.
// @Tags SOS
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SosStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /sos/stats [get]
func (h *Handler) getSosStats(c *gin.Context) {
	log := h.requestLog(c, "getSosStats")

	counts, err := h.sosService.CountByStatus(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	byStatus := make(map[string]int64, len(counts))
	for status, count := range counts {
		byStatus[string(status)] = count
	}
	c.JSON(http.StatusOK, SosStatsResponse{ByStatus: byStatus})
}

func (h *Handler) respondSos(c *gin.Context, log *logrus.Entry, status int, req *models.SosRequest) {
	dto, err := RequestToSosRequestDto(req)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(status, dto)
}

func (h *Handler) respondSosList(c *gin.Context, log *logrus.Entry, requests []*models.SosRequest) {
	dtos, err := RequestsToSosRequestDtos(requests)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

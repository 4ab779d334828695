package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devansh/disaster_management/internal/config"
	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	zoneService service.DisasterZoneService
	sosService  service.SosRequestService
	userService service.UserService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(
	zoneService service.DisasterZoneService,
	sosService service.SosRequestService,
	userService service.UserService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		zoneService: zoneService,
		sosService:  sosService,
		userService: userService,
		logger:      logger,
		validate:    newValidator(),
		cfg:         cfg,
	}
}

// newValidator регистрирует теги для доменных перечислений
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("disaster_type", func(fl validator.FieldLevel) bool {
		return models.DisasterType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("danger_level", func(fl validator.FieldLevel) bool {
		return models.DangerLevel(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sos_status", func(fl validator.FieldLevel) bool {
		return models.SosStatus(fl.Field().String()).Valid()
	})
	return v
}

func (h *Handler) requestLog(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// bind читает JSON и проверяет теги validate. false - ответ уже отправлен.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// errorStatus сопоставляет доменную ошибку с HTTP статусом и текстом для клиента
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrTokenInvalid):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, models.ErrUser):
		return http.StatusUnauthorized, "user could not be resolved"
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, models.ErrVersionConflict):
		return http.StatusConflict, "resource was modified concurrently, reload and retry"
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict, "sos status transition is not allowed"
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, models.ErrInvalidZone):
		return http.StatusBadRequest, "invalid disaster zone"
	case errors.Is(err, models.ErrInvalidLocation):
		return http.StatusBadRequest, "invalid location"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": message})
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return page, pageSize
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

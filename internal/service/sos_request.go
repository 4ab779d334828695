package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=sos_request.go -destination=mocks/mock_sos_request.go -package=mocks

// SosRequestRepository определяет контракт для работы с бд SOS-запросов
type SosRequestRepository interface {
	Create(ctx context.Context, req *models.SosRequest) error
	GetByID(ctx context.Context, id int64) (*models.SosRequest, error)
	ListAll(ctx context.Context, page, pageSize int) ([]*models.SosRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.SosRequest, error)
	UpdateStatus(ctx context.Context, req *models.SosRequest) error
	CountByStatus(ctx context.Context, status models.SosStatus) (int64, error)
}

// ZoneLocator находит зону, покрывающую точку
type ZoneLocator interface {
	FindContainingZone(ctx context.Context, lat, lon float64) (*models.DisasterZone, error)
}

// SosRequestService определяет контракт бизнес-логики SOS-запросов
type SosRequestService interface {
	RaiseSos(ctx context.Context, user *models.User, lat, lon float64, message string) (*models.SosRequest, error)
	GetSosRequest(ctx context.Context, requester *models.User, id int64) (*models.SosRequest, error)
	ListAll(ctx context.Context, page, pageSize int) ([]*models.SosRequest, error)
	ListMine(ctx context.Context, user *models.User) ([]*models.SosRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.SosStatus, version int) (*models.SosRequest, error)
	CountByStatus(ctx context.Context) (map[models.SosStatus]int64, error)
}

type sosRequestService struct {
	repo      SosRequestRepository
	zones     ZoneLocator
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewSosRequestService(repo SosRequestRepository, zones ZoneLocator, publisher webhook.WebhookPublisher, logger *logrus.Logger) SosRequestService {
	return &sosRequestService{
		repo:      repo,
		zones:     zones,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// RaiseSos создает SOS-запрос в статусе PENDING и привязывает его к зоне, если точка в нее попадает
func (s *sosRequestService) RaiseSos(ctx context.Context, user *models.User, lat, lon float64, message string) (*models.SosRequest, error) {
	if user == nil {
		return nil, fmt.Errorf("service: %w", models.ErrMissingUserReference)
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos_request",
		"method":  "RaiseSos",
		"user_id": user.ID,
	})
	log.Info("Raising a new sos request")

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		log.Warn("Sos request with coordinates out of range")
		return nil, fmt.Errorf("service: %w: (%f, %f)", models.ErrInvalidLocation, lat, lon)
	}

	zone, err := s.zones.FindContainingZone(ctx, lat, lon)
	if err != nil {
		// Без зоны запрос все равно принимается
		log.WithError(err).Warn("Failed to resolve disaster zone for sos request")
		zone = nil
	}

	req := &models.SosRequest{
		User:         user,
		DisasterZone: zone,
		Status:       models.SosStatusPending,
		Latitude:     lat,
		Longitude:    lon,
		Message:      message,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		log.WithError(err).Error("Failed to create sos request in repository")
		return nil, fmt.Errorf("service: could not create sos request: %w", err)
	}

	s.publish(ctx, log, webhook.EventSosCreated, req)

	log.WithField("sos_id", req.ID).Info("Sos request raised successfully")
	return req, nil
}

// GetSosRequest возвращает запрос владельцу или администратору
func (s *sosRequestService) GetSosRequest(ctx context.Context, requester *models.User, id int64) (*models.SosRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos_request",
		"method":  "GetSosRequest",
		"sos_id":  id,
	})

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get sos request in repository")
		return nil, fmt.Errorf("service: could not get sos request: %w", err)
	}

	if !requester.IsAdmin() && (requester == nil || req.User == nil || req.User.ID != requester.ID) {
		log.Warn("Sos request requested by a non-owner")
		return nil, fmt.Errorf("service: %w", models.ErrForbidden)
	}
	return req, nil
}

// ListAll возвращает все SOS-запросы с пагинацией
func (s *sosRequestService) ListAll(ctx context.Context, page, pageSize int) ([]*models.SosRequest, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos_request",
		"method":    "ListAll",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing sos requests")

	requests, err := s.repo.ListAll(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list sos requests from repository")
		return nil, fmt.Errorf("service: could not list sos requests: %w", err)
	}

	log.WithField("count", len(requests)).Info("Sos requests listed successfully")
	return requests, nil
}

func (s *sosRequestService) ListMine(ctx context.Context, user *models.User) ([]*models.SosRequest, error) {
	if user == nil {
		return nil, fmt.Errorf("service: %w", models.ErrMissingUserReference)
	}

	requests, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "sos_request",
			"method":  "ListMine",
			"user_id": user.ID,
		}).WithError(err).Error("Failed to list sos requests of user")
		return nil, fmt.Errorf("service: could not list sos requests of user: %w", err)
	}
	return requests, nil
}

// UpdateStatus переводит запрос в новый статус. version == 0 - взять текущую версию из бд.
func (s *sosRequestService) UpdateStatus(ctx context.Context, id int64, status models.SosStatus, version int) (*models.SosRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos_request",
		"method":  "UpdateStatus",
		"sos_id":  id,
		"status":  status,
	})
	log.Info("Attempting to update sos request status")

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent sos request")
		return nil, fmt.Errorf("service: sos request with id %d not found for update: %w", id, err)
	}

	if !req.Status.CanTransitionTo(status) {
		log.WithField("current", req.Status).Warn("Rejected sos status transition")
		return nil, fmt.Errorf("service: %w: %s -> %s", models.ErrInvalidTransition, req.Status, status)
	}

	if version != 0 {
		req.Version = version
	}
	req.Status = status

	if err := s.repo.UpdateStatus(ctx, req); err != nil {
		log.WithError(err).Error("Failed to update sos request status in repository")
		return nil, fmt.Errorf("service: could not update sos request status: %w", err)
	}

	s.publish(ctx, log, webhook.EventSosStatusChanged, req)

	log.Info("Sos request status updated successfully")
	return req, nil
}

// CountByStatus считает запросы в каждом статусе
func (s *sosRequestService) CountByStatus(ctx context.Context) (map[models.SosStatus]int64, error) {
	counts := make(map[models.SosStatus]int64, len(models.SosStatuses))
	for _, status := range models.SosStatuses {
		count, err := s.repo.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("service: could not count sos requests by status: %w", err)
		}
		counts[status] = count
	}
	return counts, nil
}

// publish отправляет событие в очередь вебхуков. Ошибка только логируется.
func (s *sosRequestService) publish(ctx context.Context, log *logrus.Entry, eventType webhook.EventType, req *models.SosRequest) {
	event := webhook.WebhookEvent{
		Type:         eventType,
		SosRequestID: req.ID,
		Status:       string(req.Status),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Message:      req.Message,
		Timestamp:    s.now().UTC(),
	}
	if req.User != nil {
		event.UserID = req.User.ID
	}
	if req.DisasterZone != nil {
		event.DisasterZoneID = req.DisasterZone.ID
		event.DangerLevel = string(req.DisasterZone.DangerLevel)
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish sos webhook event")
	}
}

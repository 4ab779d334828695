package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devansh/disaster_management/internal/config"
	"github.com/devansh/disaster_management/internal/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=disaster_zone.go -destination=mocks/mock_disaster_zone.go -package=mocks

// DisasterZoneRepository определяет контракт для работы с бд зон
type DisasterZoneRepository interface {
	Create(ctx context.Context, zone *models.DisasterZone) error
	GetByID(ctx context.Context, id int64) (*models.DisasterZone, error)
	Update(ctx context.Context, zone *models.DisasterZone) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page, pageSize int) ([]*models.DisasterZone, error)
	ListActive(ctx context.Context) ([]*models.DisasterZone, error)
	FindByDisasterType(ctx context.Context, disasterType models.DisasterType) ([]*models.DisasterZone, error)
	CountByDangerLevel(ctx context.Context, level models.DangerLevel) (int64, error)
	CountByCreatedAtBefore(ctx context.Context, t time.Time) (int64, error)
	CountByCreatedAtBetween(ctx context.Context, lower, upper time.Time) (int64, error)
	GetZoneFromCache(ctx context.Context, id int64) (*models.DisasterZone, error)
	SetZoneCache(ctx context.Context, zone *models.DisasterZone) error
	InvalidateZoneCache(ctx context.Context, id int64) error
}

// SafetyTipRepository определяет контракт для работы с советами зоны
type SafetyTipRepository interface {
	Create(ctx context.Context, tip *models.SafetyTip) error
	ListByZone(ctx context.Context, zoneID int64) ([]*models.SafetyTip, error)
	RemoveFromZone(ctx context.Context, zoneID, tipID int64) error
}

// DisasterZoneService определяет контракт бизнес-логики зон бедствия
type DisasterZoneService interface {
	CreateZone(ctx context.Context, zone *models.DisasterZone) error
	GetZone(ctx context.Context, id int64) (*models.DisasterZone, error)
	UpdateZone(ctx context.Context, zone *models.DisasterZone) error
	DeleteZone(ctx context.Context, id int64) error
	ListZones(ctx context.Context, page, pageSize int) ([]*models.DisasterZone, error)
	FindByDisasterType(ctx context.Context, disasterType models.DisasterType) ([]*models.DisasterZone, error)
	GetStats(ctx context.Context) (*models.ZoneStats, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	AddSafetyTip(ctx context.Context, tip *models.SafetyTip) error
	RemoveSafetyTip(ctx context.Context, zoneID, tipID int64) error
	FindContainingZone(ctx context.Context, lat, lon float64) (*models.DisasterZone, error)
}

type disasterZoneService struct {
	zones  DisasterZoneRepository
	tips   SafetyTipRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewDisasterZoneService(zones DisasterZoneRepository, tips SafetyTipRepository, logger *logrus.Logger, cfg *config.Config) DisasterZoneService {
	return &disasterZoneService{
		zones:  zones,
		tips:   tips,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// CreateZone проверяет инварианты и создает зону. Новая зона активна.
func (s *disasterZoneService) CreateZone(ctx context.Context, zone *models.DisasterZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster_zone",
		"method":  "CreateZone",
		"name":    zone.Name,
	})
	log.Info("Attempting to create a new disaster zone")

	zone.IsActive = true
	if err := zone.Validate(); err != nil {
		log.WithError(err).Warn("Disaster zone failed validation")
		return fmt.Errorf("service: %w", err)
	}

	if err := s.zones.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create disaster zone in repository")
		return fmt.Errorf("service: could not create disaster zone: %w", err)
	}

	log.WithField("zone_id", zone.ID).Info("Disaster zone created successfully")
	return nil
}

// GetZone получает зону по ID: сначала кеш, затем бд
func (s *disasterZoneService) GetZone(ctx context.Context, id int64) (*models.DisasterZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster_zone",
		"method":  "GetZone",
		"zone_id": id,
	})
	log.Info("Fetching disaster zone by ID")

	cached, err := s.zones.GetZoneFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read disaster zone from cache")
	}
	if cached != nil {
		log.Debug("Disaster zone served from cache")
		return cached, nil
	}

	zone, err := s.zones.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get disaster zone in repository")
		return nil, fmt.Errorf("service: could not get disaster zone: %w", err)
	}

	if err := s.zones.SetZoneCache(ctx, zone); err != nil {
		log.WithError(err).Warn("Failed to put disaster zone into cache")
	}

	log.Info("Disaster zone fetched successfully")
	return zone, nil
}

// UpdateZone обновляет зону. Версия берется из запроса, created_at остается прежним.
func (s *disasterZoneService) UpdateZone(ctx context.Context, zone *models.DisasterZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster_zone",
		"method":  "UpdateZone",
		"zone_id": zone.ID,
	})
	log.Info("Attempting to update a disaster zone")

	existing, err := s.zones.GetByID(ctx, zone.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent disaster zone")
		return fmt.Errorf("service: disaster zone with id %d not found for update: %w", zone.ID, err)
	}

	existing.Name = zone.Name
	existing.DisasterType = zone.DisasterType
	existing.CenterLatitude = zone.CenterLatitude
	existing.CenterLongitude = zone.CenterLongitude
	existing.Radius = zone.Radius
	existing.DangerLevel = zone.DangerLevel
	existing.IsActive = zone.IsActive
	if zone.Version != 0 {
		existing.Version = zone.Version
	}

	if err := existing.Validate(); err != nil {
		log.WithError(err).Warn("Disaster zone failed validation")
		return fmt.Errorf("service: %w", err)
	}

	if err := s.zones.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update disaster zone in repository")
		return fmt.Errorf("service: could not update disaster zone: %w", err)
	}

	if err := s.zones.InvalidateZoneCache(ctx, zone.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate disaster zone cache")
	}

	*zone = *existing
	log.Info("Disaster zone updated successfully")
	return nil
}

// DeleteZone удаляет зону вместе с ее советами
func (s *disasterZoneService) DeleteZone(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster_zone",
		"method":  "DeleteZone",
		"zone_id": id,
	})
	log.Info("Attempting to delete disaster zone")

	if err := s.zones.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete disaster zone in repository")
		return fmt.Errorf("service: could not delete disaster zone: %w", err)
	}

	if err := s.zones.InvalidateZoneCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate disaster zone cache")
	}

	log.Info("Disaster zone deleted successfully")
	return nil
}

// ListZones возвращает список зон с пагинацией
func (s *disasterZoneService) ListZones(ctx context.Context, page, pageSize int) ([]*models.DisasterZone, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "disaster_zone",
		"method":    "ListZones",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing disaster zones")

	zones, err := s.zones.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list disaster zones from repository")
		return nil, fmt.Errorf("service: could not list disaster zones: %w", err)
	}

	log.WithField("count", len(zones)).Info("Disaster zones listed successfully")
	return zones, nil
}

func (s *disasterZoneService) FindByDisasterType(ctx context.Context, disasterType models.DisasterType) ([]*models.DisasterZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "disaster_zone",
		"method":        "FindByDisasterType",
		"disaster_type": disasterType,
	})

	if !disasterType.Valid() {
		log.Warn("Unknown disaster type requested")
		return nil, fmt.Errorf("service: %w: unknown disaster type %q", models.ErrInvalidZone, disasterType)
	}

	zones, err := s.zones.FindByDisasterType(ctx, disasterType)
	if err != nil {
		log.WithError(err).Error("Failed to find disaster zones by type")
		return nil, fmt.Errorf("service: could not find disaster zones by type: %w", err)
	}

	log.WithField("count", len(zones)).Info("Disaster zones found by type")
	return zones, nil
}

// GetStats считает зоны по уровням опасности и по окну STATS_TIME_WINDOW_MINUTES
func (s *disasterZoneService) GetStats(ctx context.Context) (*models.ZoneStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster_zone",
		"method":  "GetStats",
	})
	log.Info("Collecting disaster zone stats")

	stats := &models.ZoneStats{
		ByDangerLevel: make(map[models.DangerLevel]int64, len(models.DangerLevels)),
		WindowMinutes: s.cfg.StatsTimeWindowMinutes,
	}

	for _, level := range models.DangerLevels {
		count, err := s.zones.CountByDangerLevel(ctx, level)
		if err != nil {
			log.WithError(err).Error("Failed to count disaster zones by danger level")
			return nil, fmt.Errorf("service: could not count disaster zones by danger level: %w", err)
		}
		stats.ByDangerLevel[level] = count
	}

	now := s.now()
	windowStart := now.Add(-time.Duration(s.cfg.StatsTimeWindowMinutes) * time.Minute)

	before, err := s.zones.CountByCreatedAtBefore(ctx, windowStart)
	if err != nil {
		log.WithError(err).Error("Failed to count disaster zones created before window")
		return nil, fmt.Errorf("service: could not count disaster zones created before: %w", err)
	}
	stats.CreatedBeforeWindow = before

	inWindow, err := s.zones.CountByCreatedAtBetween(ctx, windowStart, now)
	if err != nil {
		log.WithError(err).Error("Failed to count disaster zones created in window")
		return nil, fmt.Errorf("service: could not count disaster zones created in window: %w", err)
	}
	stats.CreatedInWindow = inWindow

	log.Info("Disaster zone stats collected")
	return stats, nil
}

// CountCreatedBetween считает зоны, созданные в [from, to]. from > to дает 0.
func (s *disasterZoneService) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if from.After(to) {
		return 0, nil
	}

	count, err := s.zones.CountByCreatedAtBetween(ctx, from, to)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "disaster_zone",
			"method":  "CountCreatedBetween",
		}).WithError(err).Error("Failed to count disaster zones created between")
		return 0, fmt.Errorf("service: could not count disaster zones created between: %w", err)
	}
	return count, nil
}

// AddSafetyTip добавляет совет в существующую зону
func (s *disasterZoneService) AddSafetyTip(ctx context.Context, tip *models.SafetyTip) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster_zone",
		"method":  "AddSafetyTip",
		"zone_id": tip.DisasterZoneID,
	})

	if _, err := s.zones.GetByID(ctx, tip.DisasterZoneID); err != nil {
		log.WithError(err).Warn("Attempted to add a safety tip to a non-existent zone")
		return fmt.Errorf("service: disaster zone with id %d not found: %w", tip.DisasterZoneID, err)
	}

	if err := s.tips.Create(ctx, tip); err != nil {
		log.WithError(err).Error("Failed to create safety tip in repository")
		return fmt.Errorf("service: could not create safety tip: %w", err)
	}

	if err := s.zones.InvalidateZoneCache(ctx, tip.DisasterZoneID); err != nil {
		log.WithError(err).Warn("Failed to invalidate disaster zone cache")
	}

	log.WithField("tip_id", tip.ID).Info("Safety tip added")
	return nil
}

// RemoveSafetyTip удаляет совет из зоны (и из бд)
func (s *disasterZoneService) RemoveSafetyTip(ctx context.Context, zoneID, tipID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "disaster_zone",
		"method":  "RemoveSafetyTip",
		"zone_id": zoneID,
		"tip_id":  tipID,
	})

	if err := s.tips.RemoveFromZone(ctx, zoneID, tipID); err != nil {
		log.WithError(err).Warn("Failed to remove safety tip")
		return fmt.Errorf("service: could not remove safety tip: %w", err)
	}

	if err := s.zones.InvalidateZoneCache(ctx, zoneID); err != nil {
		log.WithError(err).Warn("Failed to invalidate disaster zone cache")
	}

	log.Info("Safety tip removed")
	return nil
}

// FindContainingZone возвращает ближайшую активную зону, в радиус которой попадает точка.
// Если таких нет - (nil, nil).
func (s *disasterZoneService) FindContainingZone(ctx context.Context, lat, lon float64) (*models.DisasterZone, error) {
	zones, err := s.zones.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active disaster zones: %w", err)
	}

	point := orb.Point{lon, lat}
	var (
		nearest  *models.DisasterZone
		bestDist float64
	)
	for _, zone := range zones {
		center := orb.Point{zone.CenterLongitude.InexactFloat64(), zone.CenterLatitude.InexactFloat64()}
		dist := geo.DistanceHaversine(point, center)
		if dist > zone.Radius*1000 {
			continue
		}
		if nearest == nil || dist < bestDist {
			nearest = zone
			bestDist = dist
		}
	}
	return nearest, nil
}


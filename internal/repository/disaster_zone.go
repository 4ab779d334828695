package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

type DisasterZoneRepository struct {
	db          TxBeginner
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewDisasterZoneRepository(db TxBeginner, redisClient *redis.Client, cacheTTL time.Duration) service.DisasterZoneRepository {
	return &DisasterZoneRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanZone(row pgx.Row) (*models.DisasterZone, error) {
	zone := &models.DisasterZone{}
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.DisasterType,
		&zone.CenterLatitude,
		&zone.CenterLongitude,
		&zone.Radius,
		&zone.DangerLevel,
		&zone.IsActive,
		&zone.Version,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func (r *DisasterZoneRepository) queryZones(ctx context.Context, q query) ([]*models.DisasterZone, error) {
	rows, err := r.db.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]*models.DisasterZone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan disaster zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error zone iteration: %w", err)
	}
	return zones, nil
}

func (r *DisasterZoneRepository) count(ctx context.Context, q query) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create создает новую зону и заполняет id, версию и временные метки из бд
func (r *DisasterZoneRepository) Create(ctx context.Context, zone *models.DisasterZone) error {
	q, err := insertZoneQuery(zone)
	if err != nil {
		return fmt.Errorf("failed to build insert zone query: %w", err)
	}
	err = r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&zone.ID, &zone.Version, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create disaster zone: %w", err)
	}
	return nil
}

// GetByID возвращает зону вместе с ее советами по безопасности
func (r *DisasterZoneRepository) GetByID(ctx context.Context, id int64) (*models.DisasterZone, error) {
	q, err := zoneByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build zone by id query: %w", err)
	}
	zone, err := scanZone(r.db.QueryRow(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("disaster zone with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get disaster zone by id: %w", err)
	}

	tips, err := listTips(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	zone.SafetyTips = tips
	return zone, nil
}

// Update сохраняет изменения зоны. Если версия устарела - ErrVersionConflict.
func (r *DisasterZoneRepository) Update(ctx context.Context, zone *models.DisasterZone) error {
	q, err := updateZoneQuery(zone)
	if err != nil {
		return fmt.Errorf("failed to build update zone query: %w", err)
	}
	err = r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&zone.Version, &zone.CreatedAt, &zone.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update disaster zone: %w", err)
	}

	// Ни одна строка не обновилась: либо зоны нет, либо версия устарела
	exists, err := r.exists(ctx, zone.ID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("disaster zone with id %d not found for update: %w", zone.ID, models.ErrNotFound)
	}
	return fmt.Errorf("disaster zone with id %d version %d: %w", zone.ID, zone.Version, models.ErrVersionConflict)
}

func (r *DisasterZoneRepository) exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM disaster_zones WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check disaster zone existence: %w", err)
	}
	return exists, nil
}

// Delete удаляет зону и все ее советы в одной транзакции
func (r *DisasterZoneRepository) Delete(ctx context.Context, id int64) error {
	tipsQ, err := deleteTipsByZoneQuery(id)
	if err != nil {
		return fmt.Errorf("failed to build delete tips query: %w", err)
	}
	zoneQ, err := deleteZoneQuery(id)
	if err != nil {
		return fmt.Errorf("failed to build delete zone query: %w", err)
	}

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, tipsQ.SQL, tipsQ.Args...); err != nil {
			return fmt.Errorf("failed to delete safety tips of zone: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, zoneQ.SQL, zoneQ.Args...)
		if err != nil {
			return fmt.Errorf("failed to delete disaster zone: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("disaster zone with id %d not found for delete: %w", id, models.ErrNotFound)
		}
		return nil
	})
}

// List возвращает список зон с пагинацией, новые первыми
func (r *DisasterZoneRepository) List(ctx context.Context, page, pageSize int) ([]*models.DisasterZone, error) {
	offset := (page - 1) * pageSize
	q, err := listZonesQuery(uint(pageSize), uint(offset)) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("failed to build list zones query: %w", err)
	}
	zones, err := r.queryZones(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list disaster zones: %w", err)
	}
	return zones, nil
}

// ListActive возвращает все активные зоны
func (r *DisasterZoneRepository) ListActive(ctx context.Context) ([]*models.DisasterZone, error) {
	q, err := listActiveZonesQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list active zones query: %w", err)
	}
	zones, err := r.queryZones(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list active disaster zones: %w", err)
	}
	return zones, nil
}

// FindByDisasterType возвращает все зоны с данной категорией; пустой слайс, если таких нет
func (r *DisasterZoneRepository) FindByDisasterType(ctx context.Context, disasterType models.DisasterType) ([]*models.DisasterZone, error) {
	q, err := findByDisasterTypeQuery(disasterType)
	if err != nil {
		return nil, fmt.Errorf("failed to build find by disaster type query: %w", err)
	}
	zones, err := r.queryZones(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find disaster zones by type: %w", err)
	}
	return zones, nil
}

func (r *DisasterZoneRepository) CountByDangerLevel(ctx context.Context, level models.DangerLevel) (int64, error) {
	q, err := countByDangerLevelQuery(level)
	if err != nil {
		return 0, fmt.Errorf("failed to build count by danger level query: %w", err)
	}
	count, err := r.count(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to count disaster zones by danger level: %w", err)
	}
	return count, nil
}

func (r *DisasterZoneRepository) CountByCreatedAtBefore(ctx context.Context, t time.Time) (int64, error) {
	q, err := countByCreatedAtBeforeQuery(t)
	if err != nil {
		return 0, fmt.Errorf("failed to build count created before query: %w", err)
	}
	count, err := r.count(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to count disaster zones created before: %w", err)
	}
	return count, nil
}

// CountByCreatedAtBetween считает зоны с created_at в [lower, upper], границы включены
func (r *DisasterZoneRepository) CountByCreatedAtBetween(ctx context.Context, lower, upper time.Time) (int64, error) {
	q, err := countByCreatedAtBetweenQuery(lower, upper)
	if err != nil {
		return 0, fmt.Errorf("failed to build count created between query: %w", err)
	}
	count, err := r.count(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to count disaster zones created between: %w", err)
	}
	return count, nil
}

func zoneCacheKey(id int64) string {
	return fmt.Sprintf("disaster_zone:%d", id)
}

// GetZoneFromCache пытается получить зону из Redis. Промах - (nil, nil).
func (r *DisasterZoneRepository) GetZoneFromCache(ctx context.Context, id int64) (*models.DisasterZone, error) {
	val, err := r.redisClient.Get(ctx, zoneCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get disaster zone from cache: %w", err)
	}

	zone := &models.DisasterZone{}
	if err := json.Unmarshal(val, zone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal disaster zone from cache: %w", err)
	}
	return zone, nil
}

// SetZoneCache сохраняет зону в Redis на cacheTTL
func (r *DisasterZoneRepository) SetZoneCache(ctx context.Context, zone *models.DisasterZone) error {
	val, err := json.Marshal(zone)
	if err != nil {
		return fmt.Errorf("failed to marshal disaster zone for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, zoneCacheKey(zone.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set disaster zone in cache: %w", err)
	}
	return nil
}

func (r *DisasterZoneRepository) InvalidateZoneCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, zoneCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate disaster zone cache: %w", err)
	}
	return nil
}

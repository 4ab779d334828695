package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SosRequestRepository struct {
	db DBTX
}

func NewSosRequestRepository(db DBTX) service.SosRequestRepository {
	return &SosRequestRepository{db: db}
}

// scanSosRequest читает строку sosSelect; колонки зоны могут быть NULL
func scanSosRequest(row pgx.Row) (*models.SosRequest, error) {
	req := &models.SosRequest{User: &models.User{}}
	var (
		zoneID     *int64
		zoneName   *string
		zoneType   *string
		zoneLat    decimal.NullDecimal
		zoneLon    decimal.NullDecimal
		zoneRadius *float64
		zoneLevel  *string
	)
	err := row.Scan(
		&req.ID,
		&req.Status,
		&req.Latitude,
		&req.Longitude,
		&req.Message,
		&req.Version,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.User.ID,
		&req.User.FullName,
		&req.User.Email,
		&req.User.Role,
		&zoneID,
		&zoneName,
		&zoneType,
		&zoneLat,
		&zoneLon,
		&zoneRadius,
		&zoneLevel,
	)
	if err != nil {
		return nil, err
	}

	if zoneID != nil {
		req.DisasterZone = &models.DisasterZone{
			ID:              *zoneID,
			Name:            *zoneName,
			DisasterType:    models.DisasterType(*zoneType),
			CenterLatitude:  zoneLat.Decimal,
			CenterLongitude: zoneLon.Decimal,
			Radius:          *zoneRadius,
			DangerLevel:     models.DangerLevel(*zoneLevel),
		}
	}
	return req, nil
}

func (r *SosRequestRepository) querySosRequests(ctx context.Context, q query) ([]*models.SosRequest, error) {
	rows, err := r.db.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*models.SosRequest, 0)
	for rows.Next() {
		req, err := scanSosRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sos request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error sos request iteration: %w", err)
	}
	return requests, nil
}

// Create сохраняет SOS-запрос. Пользователь обязателен.
func (r *SosRequestRepository) Create(ctx context.Context, req *models.SosRequest) error {
	if req.User == nil {
		return models.ErrMissingUserReference
	}
	q, err := insertSosQuery(req)
	if err != nil {
		return fmt.Errorf("failed to build insert sos query: %w", err)
	}
	err = r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&req.ID, &req.Version, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sos request: %w", err)
	}
	return nil
}

func (r *SosRequestRepository) GetByID(ctx context.Context, id int64) (*models.SosRequest, error) {
	q, err := sosByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build sos by id query: %w", err)
	}
	req, err := scanSosRequest(r.db.QueryRow(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sos request with id %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sos request by id: %w", err)
	}
	return req, nil
}

// ListAll возвращает все SOS-запросы с пагинацией, новые первыми
func (r *SosRequestRepository) ListAll(ctx context.Context, page, pageSize int) ([]*models.SosRequest, error) {
	offset := (page - 1) * pageSize
	q, err := listSosQuery(uint(pageSize), uint(offset)) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("failed to build list sos query: %w", err)
	}
	requests, err := r.querySosRequests(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list sos requests: %w", err)
	}
	return requests, nil
}

func (r *SosRequestRepository) ListByUser(ctx context.Context, userID int64) ([]*models.SosRequest, error) {
	q, err := sosByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build sos by user query: %w", err)
	}
	requests, err := r.querySosRequests(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list sos requests of user: %w", err)
	}
	return requests, nil
}

// UpdateStatus записывает req.Status, если в бд все еще req.Version.
// При успехе req.Version и req.UpdatedAt обновляются.
func (r *SosRequestRepository) UpdateStatus(ctx context.Context, req *models.SosRequest) error {
	q, err := updateSosStatusQuery(req.ID, req.Status, req.Version)
	if err != nil {
		return fmt.Errorf("failed to build update sos status query: %w", err)
	}
	err = r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&req.Version, &req.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update sos request status: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM sos_requests WHERE id = $1)", req.ID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check sos request existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("sos request with id %d not found for update: %w", req.ID, models.ErrNotFound)
	}
	return fmt.Errorf("sos request with id %d version %d: %w", req.ID, req.Version, models.ErrVersionConflict)
}

func (r *SosRequestRepository) CountByStatus(ctx context.Context, status models.SosStatus) (int64, error) {
	q, err := countSosByStatusQuery(status)
	if err != nil {
		return 0, fmt.Errorf("failed to build count sos by status query: %w", err)
	}
	var count int64
	if err := r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sos requests by status: %w", err)
	}
	return count, nil
}

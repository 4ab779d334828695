package repository

import (
	"context"
	"fmt"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/service"
)

type SafetyTipRepository struct {
	db DBTX
}

func NewSafetyTipRepository(db DBTX) service.SafetyTipRepository {
	return &SafetyTipRepository{db: db}
}

// Create добавляет совет в зону. Зона обязана существовать (внешний ключ).
func (r *SafetyTipRepository) Create(ctx context.Context, tip *models.SafetyTip) error {
	q, err := insertTipQuery(tip)
	if err != nil {
		return fmt.Errorf("failed to build insert tip query: %w", err)
	}
	if err := r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&tip.ID, &tip.CreatedAt); err != nil {
		return fmt.Errorf("failed to create safety tip: %w", err)
	}
	return nil
}

func (r *SafetyTipRepository) ListByZone(ctx context.Context, zoneID int64) ([]*models.SafetyTip, error) {
	return listTips(ctx, r.db, zoneID)
}

// RemoveFromZone отвязывает совет от зоны. Совет без зоны не существует, поэтому строка удаляется.
func (r *SafetyTipRepository) RemoveFromZone(ctx context.Context, zoneID, tipID int64) error {
	q, err := removeTipQuery(zoneID, tipID)
	if err != nil {
		return fmt.Errorf("failed to build remove tip query: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return fmt.Errorf("failed to remove safety tip: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("safety tip %d in zone %d: %w", tipID, zoneID, models.ErrNotFound)
	}
	return nil
}

func listTips(ctx context.Context, db DBTX, zoneID int64) ([]*models.SafetyTip, error) {
	q, err := tipsByZoneQuery(zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to build tips by zone query: %w", err)
	}
	rows, err := db.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list safety tips: %w", err)
	}
	defer rows.Close()

	tips := make([]*models.SafetyTip, 0)
	for rows.Next() {
		tip := &models.SafetyTip{}
		if err := rows.Scan(&tip.ID, &tip.DisasterZoneID, &tip.Title, &tip.Content, &tip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan safety tip row: %w", err)
		}
		tips = append(tips, tip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error safety tip iteration: %w", err)
	}
	return tips, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) service.UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет пользователя. Повторный email - ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	q, err := insertUserQuery(user)
	if err != nil {
		return fmt.Errorf("failed to build insert user query: %w", err)
	}
	err = r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("user %s: %w", user.Email, models.ErrEmailTaken)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column string, value any) (*models.User, error) {
	q, err := userByQuery(column, value)
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}
	user := &models.User{}
	err = r.db.QueryRow(ctx, q.SQL, q.Args...).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user with %s %v: %w", column, value, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return user, nil
}

package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/repository"
	"github.com/devansh/disaster_management/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

func startPostgres(ctx context.Context) (container testcontainers.Container, dsn string, err error) {
	// Без docker testcontainers паникует при поиске хоста
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not start container: %v", r)
		}
	}()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("could not get container host: %w", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, "", fmt.Errorf("could not get mapped port: %w", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", testUser, testPassword, host, mappedPort.Port(), testDB)
	return container, dsn, nil
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	container, dsn, err := startPostgres(ctx)
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(dsn, "file://"+migrationsDir))

	pool, err := postgres.NewPostgresDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE sos_requests, safety_tips, disaster_zones, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func newZone(name string, typ models.DisasterType, level models.DangerLevel) *models.DisasterZone {
	return &models.DisasterZone{
		Name:            name,
		DisasterType:    typ,
		CenterLatitude:  decimal.RequireFromString("19.076000"),
		CenterLongitude: decimal.RequireFromString("72.877700"),
		Radius:          5,
		DangerLevel:     level,
		IsActive:        true,
	}
}

func setCreatedAt(t *testing.T, pool *pgxpool.Pool, id int64, at time.Time) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "UPDATE disaster_zones SET created_at = $1 WHERE id = $2", at, id)
	require.NoError(t, err)
}

func TestRepositories_Postgres(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	zones := repository.NewDisasterZoneRepository(pool, nil, time.Minute)
	tips := repository.NewSafetyTipRepository(pool)
	users := repository.NewUserRepository(pool)
	sos := repository.NewSosRequestRepository(pool)

	t.Run("find by disaster type is exact and complete", func(t *testing.T) {
		truncate(t, pool)
		flood1 := newZone("flood 1", models.DisasterTypeFlood, models.DangerLevelHigh)
		fire := newZone("fire", models.DisasterTypeFire, models.DangerLevelLow)
		flood2 := newZone("flood 2", models.DisasterTypeFlood, models.DangerLevelMedium)
		for _, z := range []*models.DisasterZone{flood1, fire, flood2} {
			require.NoError(t, zones.Create(ctx, z))
		}

		found, err := zones.FindByDisasterType(ctx, models.DisasterTypeFlood)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, flood1.ID, found[0].ID)
		assert.Equal(t, flood2.ID, found[1].ID)
		for _, z := range found {
			assert.Equal(t, models.DisasterTypeFlood, z.DisasterType)
		}

		none, err := zones.FindByDisasterType(ctx, models.DisasterTypeDrought)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("count by danger level includes zero", func(t *testing.T) {
		truncate(t, pool)
		require.NoError(t, zones.Create(ctx, newZone("a", models.DisasterTypeFlood, models.DangerLevelHigh)))
		require.NoError(t, zones.Create(ctx, newZone("b", models.DisasterTypeFire, models.DangerLevelHigh)))

		high, err := zones.CountByDangerLevel(ctx, models.DangerLevelHigh)
		require.NoError(t, err)
		assert.Equal(t, int64(2), high)

		low, err := zones.CountByDangerLevel(ctx, models.DangerLevelLow)
		require.NoError(t, err)
		assert.Zero(t, low)
	})

	t.Run("created at counts", func(t *testing.T) {
		truncate(t, pool)
		base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 4; i++ {
			z := newZone(fmt.Sprintf("zone %d", i), models.DisasterTypeStorm, models.DangerLevelMedium)
			require.NoError(t, zones.Create(ctx, z))
			setCreatedAt(t, pool, z.ID, base.Add(time.Duration(i)*time.Hour))
		}

		// Строго раньше: зона, созданная ровно в base, не учитывается
		before, err := zones.CountByCreatedAtBefore(ctx, base)
		require.NoError(t, err)
		assert.Zero(t, before)

		var prev int64
		for i := 0; i <= 4; i++ {
			count, err := zones.CountByCreatedAtBefore(ctx, base.Add(time.Duration(i)*time.Hour+time.Minute))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, count, prev)
			prev = count
		}
		assert.Equal(t, int64(4), prev)

		between, err := zones.CountByCreatedAtBetween(ctx, base.Add(time.Hour), base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(2), between)

		same, err := zones.CountByCreatedAtBetween(ctx, base.Add(time.Hour), base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), same)

		reversed, err := zones.CountByCreatedAtBetween(ctx, base.Add(2*time.Hour), base)
		require.NoError(t, err)
		assert.Zero(t, reversed)
	})

	t.Run("update checks version", func(t *testing.T) {
		truncate(t, pool)
		z := newZone("versioned", models.DisasterTypeFlood, models.DangerLevelLow)
		require.NoError(t, zones.Create(ctx, z))
		require.Equal(t, 1, z.Version)
		createdAt := z.CreatedAt

		z.Radius = 7.5
		require.NoError(t, zones.Update(ctx, z))
		assert.Equal(t, 2, z.Version)
		assert.True(t, createdAt.Equal(z.CreatedAt))

		stale := *z
		stale.Version = 1
		err := zones.Update(ctx, &stale)
		assert.ErrorIs(t, err, models.ErrVersionConflict)

		missing := newZone("missing", models.DisasterTypeFlood, models.DangerLevelLow)
		missing.ID = 9999
		missing.Version = 1
		assert.ErrorIs(t, zones.Update(ctx, missing), models.ErrNotFound)
	})

	t.Run("tips are owned by their zone", func(t *testing.T) {
		truncate(t, pool)
		z := newZone("with tips", models.DisasterTypeEarthquake, models.DangerLevelHigh)
		other := newZone("other", models.DisasterTypeEarthquake, models.DangerLevelLow)
		require.NoError(t, zones.Create(ctx, z))
		require.NoError(t, zones.Create(ctx, other))

		tip1 := &models.SafetyTip{DisasterZoneID: z.ID, Title: "Drop, cover, hold", Content: "Get under sturdy furniture."}
		tip2 := &models.SafetyTip{DisasterZoneID: z.ID, Title: "Stay away from windows", Content: "Glass may shatter."}
		require.NoError(t, tips.Create(ctx, tip1))
		require.NoError(t, tips.Create(ctx, tip2))

		loaded, err := zones.GetByID(ctx, z.ID)
		require.NoError(t, err)
		require.Len(t, loaded.SafetyTips, 2)

		// Совет нельзя удалить через чужую зону
		assert.ErrorIs(t, tips.RemoveFromZone(ctx, other.ID, tip1.ID), models.ErrNotFound)

		require.NoError(t, tips.RemoveFromZone(ctx, z.ID, tip1.ID))
		remaining, err := tips.ListByZone(ctx, z.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, tip2.ID, remaining[0].ID)

		require.NoError(t, zones.Delete(ctx, z.ID))
		orphans, err := tips.ListByZone(ctx, z.ID)
		require.NoError(t, err)
		assert.Empty(t, orphans)

		_, err = zones.GetByID(ctx, z.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.ErrorIs(t, zones.Delete(ctx, z.ID), models.ErrNotFound)
	})

	t.Run("users and sos requests", func(t *testing.T) {
		truncate(t, pool)
		user := &models.User{FullName: "Asha Rao", Email: "asha@example.com", PasswordHash: "hash", Role: models.RoleUser}
		require.NoError(t, users.Create(ctx, user))
		assert.NotZero(t, user.ID)

		dup := &models.User{FullName: "Asha Again", Email: "asha@example.com", PasswordHash: "hash", Role: models.RoleUser}
		assert.ErrorIs(t, users.Create(ctx, dup), models.ErrEmailTaken)

		byEmail, err := users.GetByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)

		_, err = users.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, models.ErrNotFound)

		zone := newZone("sos zone", models.DisasterTypeFlood, models.DangerLevelHigh)
		require.NoError(t, zones.Create(ctx, zone))

		inZone := &models.SosRequest{User: user, DisasterZone: zone, Status: models.SosStatusPending, Latitude: 19.08, Longitude: 72.88, Message: "help"}
		outside := &models.SosRequest{User: user, Status: models.SosStatusPending, Latitude: 50, Longitude: 50}
		require.NoError(t, sos.Create(ctx, inZone))
		require.NoError(t, sos.Create(ctx, outside))

		assert.ErrorIs(t, sos.Create(ctx, &models.SosRequest{Status: models.SosStatusPending}), models.ErrMissingUserReference)

		loaded, err := sos.GetByID(ctx, inZone.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded.User)
		assert.Equal(t, user.ID, loaded.User.ID)
		require.NotNil(t, loaded.DisasterZone)
		assert.Equal(t, zone.ID, loaded.DisasterZone.ID)
		assert.True(t, zone.CenterLatitude.Equal(loaded.DisasterZone.CenterLatitude))

		loadedOutside, err := sos.GetByID(ctx, outside.ID)
		require.NoError(t, err)
		assert.Nil(t, loadedOutside.DisasterZone)

		mine, err := sos.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		inZone.Status = models.SosStatusInProgress
		require.NoError(t, sos.UpdateStatus(ctx, inZone))
		assert.Equal(t, 2, inZone.Version)

		stale := &models.SosRequest{ID: inZone.ID, Status: models.SosStatusResolved, Version: 1}
		assert.ErrorIs(t, sos.UpdateStatus(ctx, stale), models.ErrVersionConflict)

		pending, err := sos.CountByStatus(ctx, models.SosStatusPending)
		require.NoError(t, err)
		assert.Equal(t, int64(1), pending)

		// Удаление зоны не удаляет SOS-запрос, а отвязывает его
		require.NoError(t, zones.Delete(ctx, zone.ID))
		detached, err := sos.GetByID(ctx, inZone.ID)
		require.NoError(t, err)
		assert.Nil(t, detached.DisasterZone)
	})
}

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/service/mocks"
	"github.com/devansh/disaster_management/internal/webhook"
	webhook_mocks "github.com/devansh/disaster_management/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSosService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestSosService(t *testing.T) (*sosRequestService, *mocks.MockSosRequestRepository, *mocks.MockZoneLocator, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSosRequestRepository(ctrl)
	locatorMock := mocks.NewMockZoneLocator(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewSosRequestService(repoMock, locatorMock, webhookMock, logger).(*sosRequestService)
	service.now = func() time.Time { return time.Date(2025, 9, 8, 13, 50, 0, 0, time.UTC) }
	return service, repoMock, locatorMock, webhookMock
}

func TestRaiseSos_InsideZone(t *testing.T) {
	// Подготовка
	service, repoMock, locatorMock, webhookMock := newTestSosService(t)
	ctx := context.Background()
	user := testUser()
	zone := validZone()
	zone.ID = 3

	// Ожидания
	// 1. Поиск зоны по координатам
	locatorMock.EXPECT().FindContainingZone(ctx, 19.08, 72.88).Return(zone, nil).Times(1)

	// 2. Сохранение запроса
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.SosRequest) error {
			assert.Equal(t, models.SosStatusPending, req.Status)
			assert.Equal(t, user, req.User)
			assert.Equal(t, zone, req.DisasterZone)
			req.ID = 100
			req.Version = 1
			return nil
		}).Times(1)

	// 3. Публикация вебхука
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventSosCreated, event.Type)
			assert.Equal(t, int64(100), event.SosRequestID)
			assert.Equal(t, int64(7), event.UserID)
			assert.Equal(t, int64(3), event.DisasterZoneID)
			assert.Equal(t, "HIGH", event.DangerLevel)
			assert.Equal(t, "PENDING", event.Status)
		}).Return(nil).Times(1)

	// Действие
	req, err := service.RaiseSos(ctx, user, 19.08, 72.88, "Water rising fast")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(100), req.ID)
	assert.Equal(t, "Water rising fast", req.Message)
}

func TestRaiseSos_OutsideAnyZone(t *testing.T) {
	service, repoMock, locatorMock, webhookMock := newTestSosService(t)
	ctx := context.Background()

	locatorMock.EXPECT().FindContainingZone(ctx, 50.0, 50.0).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.SosRequest) error {
			assert.Nil(t, req.DisasterZone)
			req.ID = 101
			return nil
		}).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Zero(t, event.DisasterZoneID)
			assert.Empty(t, event.DangerLevel)
		}).Return(nil).Times(1)

	req, err := service.RaiseSos(ctx, testUser(), 50.0, 50.0, "")

	require.NoError(t, err)
	assert.Nil(t, req.DisasterZone)
}

func TestRaiseSos_ZoneLookupFailureIsTolerated(t *testing.T) {
	service, repoMock, locatorMock, webhookMock := newTestSosService(t)
	ctx := context.Background()

	locatorMock.EXPECT().FindContainingZone(ctx, 10.0, 10.0).Return(nil, errors.New("db timeout")).Times(1)
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	req, err := service.RaiseSos(ctx, testUser(), 10.0, 10.0, "help")

	require.NoError(t, err)
	assert.Nil(t, req.DisasterZone)
}

func TestRaiseSos_PublishFailureIsTolerated(t *testing.T) {
	service, repoMock, locatorMock, webhookMock := newTestSosService(t)
	ctx := context.Background()

	locatorMock.EXPECT().FindContainingZone(ctx, gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	_, err := service.RaiseSos(ctx, testUser(), 10.0, 10.0, "help")

	require.NoError(t, err)
}

func TestRaiseSos_MissingUser(t *testing.T) {
	service, repoMock, locatorMock, _ := newTestSosService(t)

	locatorMock.EXPECT().FindContainingZone(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	req, err := service.RaiseSos(context.Background(), nil, 10.0, 10.0, "help")

	require.Error(t, err)
	assert.Nil(t, req)
	assert.ErrorIs(t, err, models.ErrMissingUserReference)
}

func TestRaiseSos_InvalidLocation(t *testing.T) {
	service, repoMock, _, _ := newTestSosService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.RaiseSos(context.Background(), testUser(), 91, 0, "help")

	assert.ErrorIs(t, err, models.ErrInvalidLocation)
}

func TestGetSosRequest_Access(t *testing.T) {
	owner := testUser()
	stranger := &models.User{ID: 8, Email: "other@example.com", Role: models.RoleUser}
	admin := &models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin}
	stored := &models.SosRequest{ID: 100, User: owner, Status: models.SosStatusPending}

	tests := []struct {
		name      string
		requester *models.User
		wantErr   error
	}{
		{name: "owner", requester: owner},
		{name: "admin", requester: admin},
		{name: "stranger", requester: stranger, wantErr: models.ErrForbidden},
		{name: "anonymous", requester: nil, wantErr: models.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _, _ := newTestSosService(t)
			repoMock.EXPECT().GetByID(gomock.Any(), int64(100)).Return(stored, nil).Times(1)

			req, err := service.GetSosRequest(context.Background(), tt.requester, 100)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, req)
		})
	}
}

func TestListAll_ClampsPaging(t *testing.T) {
	service, repoMock, _, _ := newTestSosService(t)
	ctx := context.Background()
	expected := []*models.SosRequest{{ID: 1}, {ID: 2}}

	repoMock.EXPECT().ListAll(ctx, 1, 20).Return(expected, nil).Times(1)

	requests, err := service.ListAll(ctx, -3, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestListMine(t *testing.T) {
	service, repoMock, _, _ := newTestSosService(t)
	ctx := context.Background()
	expected := []*models.SosRequest{{ID: 1, User: testUser()}}

	repoMock.EXPECT().ListByUser(ctx, int64(7)).Return(expected, nil).Times(1)

	requests, err := service.ListMine(ctx, testUser())

	require.NoError(t, err)
	assert.Equal(t, expected, requests)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.SosStatus
		to      models.SosStatus
		allowed bool
	}{
		{name: "pending to in progress", from: models.SosStatusPending, to: models.SosStatusInProgress, allowed: true},
		{name: "pending to resolved", from: models.SosStatusPending, to: models.SosStatusResolved, allowed: true},
		{name: "in progress to resolved", from: models.SosStatusInProgress, to: models.SosStatusResolved, allowed: true},
		{name: "resolved is terminal", from: models.SosStatusResolved, to: models.SosStatusPending},
		{name: "no going back", from: models.SosStatusInProgress, to: models.SosStatusPending},
		{name: "same status", from: models.SosStatusPending, to: models.SosStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _, webhookMock := newTestSosService(t)
			ctx := context.Background()
			stored := &models.SosRequest{ID: 100, User: testUser(), Status: tt.from, Version: 2}
			repoMock.EXPECT().GetByID(ctx, int64(100)).Return(stored, nil).Times(1)

			if tt.allowed {
				repoMock.EXPECT().
					UpdateStatus(ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, req *models.SosRequest) error {
						assert.Equal(t, tt.to, req.Status)
						assert.Equal(t, 2, req.Version)
						req.Version = 3
						return nil
					}).Times(1)
				webhookMock.EXPECT().
					Publish(ctx, gomock.Any()).
					Do(func(ctx context.Context, event webhook.WebhookEvent) {
						assert.Equal(t, webhook.EventSosStatusChanged, event.Type)
						assert.Equal(t, string(tt.to), event.Status)
					}).Return(nil).Times(1)
			} else {
				repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)
				webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
			}

			req, err := service.UpdateStatus(ctx, 100, tt.to, 0)

			if !tt.allowed {
				assert.ErrorIs(t, err, models.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, req.Status)
			assert.Equal(t, 3, req.Version)
		})
	}
}

func TestUpdateStatus_VersionConflict(t *testing.T) {
	service, repoMock, _, webhookMock := newTestSosService(t)
	ctx := context.Background()
	stored := &models.SosRequest{ID: 100, User: testUser(), Status: models.SosStatusPending, Version: 5}

	repoMock.EXPECT().GetByID(ctx, int64(100)).Return(stored, nil).Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.SosRequest) error {
			// Клиент прислал устаревшую версию
			assert.Equal(t, 4, req.Version)
			return models.ErrVersionConflict
		}).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateStatus(ctx, 100, models.SosStatusResolved, 4)

	assert.ErrorIs(t, err, models.ErrVersionConflict)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	service, repoMock, _, _ := newTestSosService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(404)).Return(nil, models.ErrNotFound).Times(1)

	_, err := service.UpdateStatus(ctx, 404, models.SosStatusResolved, 0)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "not found for update")
}

func TestSosCountByStatus(t *testing.T) {
	service, repoMock, _, _ := newTestSosService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountByStatus(ctx, models.SosStatusPending).Return(int64(4), nil).Times(1)
	repoMock.EXPECT().CountByStatus(ctx, models.SosStatusInProgress).Return(int64(1), nil).Times(1)
	repoMock.EXPECT().CountByStatus(ctx, models.SosStatusResolved).Return(int64(0), nil).Times(1)

	counts, err := service.CountByStatus(ctx)

	require.NoError(t, err)
	assert.Equal(t, map[models.SosStatus]int64{
		models.SosStatusPending:    4,
		models.SosStatusInProgress: 1,
		models.SosStatusResolved:   0,
	}, counts)
}

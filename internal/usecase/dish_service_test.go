package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports/mocks"
	"github.com/Gunvolt24/restaurant_svc/internal/usecase"
	"github.com/Gunvolt24/restaurant_svc/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func TestDishService_Update_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	events := mocks.NewMockDishEventPublisher(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)
	clock := clockz.NewFakeClock()

	price := int64(1500)
	patch := domain.DishPatch{Price: &price}
	updated := pizza()
	updated.Price = price

	var got domain.DishUpdatedEvent
	gomock.InOrder(
		validator.EXPECT().ValidateDishPatch(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Update(gomock.Any(), updated.ID, patch).Return(nil),
		repo.EXPECT().GetByID(gomock.Any(), updated.ID).Return(&updated, nil),
		events.EXPECT().PublishDishUpdated(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev domain.DishUpdatedEvent) error {
				got = ev
				return nil
			}),
	)

	svc := usecase.NewDishService(repo, events, noopLogger{}, validator, clock)
	require.NoError(t, svc.Update(context.Background(), updated.ID, patch))

	_, err := uuid.Parse(got.EventID)
	require.NoError(t, err)
	require.Equal(t, updated.ID, got.DishID)
	require.Equal(t, restaurantID, got.RestaurantID)
	require.Equal(t, price, got.Price)
	require.True(t, got.Available)
	require.True(t, got.OccurredAt.Equal(clock.Now()))
	require.Equal(t, time.UTC, got.OccurredAt.Location())
}

func TestDishService_Update_PublishFailureReturned(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	events := mocks.NewMockDishEventPublisher(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)
	boom := errors.New("broker unavailable")

	d := pizza()
	validator.EXPECT().ValidateDishPatch(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Update(gomock.Any(), d.ID, gomock.Any()).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), d.ID).Return(&d, nil)
	events.EXPECT().PublishDishUpdated(gomock.Any(), gomock.Any()).Return(boom)

	svc := usecase.NewDishService(repo, events, noopLogger{}, validator, nil)

	err := svc.Update(context.Background(), d.ID, domain.DishPatch{})
	require.ErrorIs(t, err, boom)
}

func TestDishService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	events := mocks.NewMockDishEventPublisher(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	validator.EXPECT().ValidateDishPatch(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Update(gomock.Any(), int64(404), gomock.Any()).Return(domain.DishNotFound(404, "DishRepository.Update"))
	events.EXPECT().PublishDishUpdated(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewDishService(repo, events, noopLogger{}, validator, nil)

	err := svc.Update(context.Background(), 404, domain.DishPatch{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDishService_Update_EventsDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	validator.EXPECT().ValidateDishPatch(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewDishService(repo, nil, noopLogger{}, validator, nil)
	require.NoError(t, svc.Update(context.Background(), 1, domain.DishPatch{}))
}

func TestDishService_Create_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	validator.EXPECT().ValidateDish(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidInput)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewDishService(repo, nil, noopLogger{}, validator, nil)

	_, err := svc.Create(context.Background(), domain.NewDish{})
	require.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestDishService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	in := domain.NewDish{RestaurantID: restaurantID, Name: "pizza", Price: 1000, Available: true, Category: domain.CategoryMainCourses}
	validator.EXPECT().ValidateDish(gomock.Any(), &in).Return(nil)
	repo.EXPECT().Create(gomock.Any(), in).Return(int64(10), nil)

	svc := usecase.NewDishService(repo, nil, noopLogger{}, validator, nil)

	id, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(10), id)
}

func TestDishService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockDishRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)

	svc := usecase.NewDishService(repo, nil, noopLogger{}, mocks.NewMockCatalogValidator(ctrl), nil)
	require.NoError(t, svc.Delete(context.Background(), 10))
}

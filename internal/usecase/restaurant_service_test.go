package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports/mocks"
	"github.com/Gunvolt24/restaurant_svc/internal/usecase"
	"github.com/Gunvolt24/restaurant_svc/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRestaurantService_Create_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRestaurantRepository(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	validator.EXPECT().ValidateRestaurant(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidInput)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRestaurantService(repo, nil, noopLogger{}, validator)

	_, err := svc.Create(context.Background(), domain.NewRestaurant{})
	require.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestRestaurantService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRestaurantRepository(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	in := domain.NewRestaurant{Name: "Pizzeria", Address: "Main st. 1"}

	gomock.InOrder(
		validator.EXPECT().ValidateRestaurant(gomock.Any(), &in).Return(nil),
		repo.EXPECT().Create(gomock.Any(), in).Return(int64(42), nil),
	)

	svc := usecase.NewRestaurantService(repo, nil, noopLogger{}, validator)

	id, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestRestaurantService_Update_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRestaurantRepository(ctrl)
	cache := mocks.NewMockRestaurantCache(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	name := "New name"
	patch := domain.RestaurantPatch{Name: &name}

	gomock.InOrder(
		validator.EXPECT().ValidateRestaurantPatch(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Update(gomock.Any(), int64(5), patch).Return(nil),
		cache.EXPECT().Invalidate(gomock.Any(), int64(5)).Return(nil),
	)

	svc := usecase.NewRestaurantService(repo, cache, noopLogger{}, validator)
	require.NoError(t, svc.Update(context.Background(), 5, patch))
}

func TestRestaurantService_Update_NotFoundKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRestaurantRepository(ctrl)
	cache := mocks.NewMockRestaurantCache(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	validator.EXPECT().ValidateRestaurantPatch(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
		Return(domain.RestaurantNotFound(5, "RestaurantRepository.Update"))
	cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRestaurantService(repo, cache, noopLogger{}, validator)

	err := svc.Update(context.Background(), 5, domain.RestaurantPatch{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestaurantService_Delete_CacheErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRestaurantRepository(ctrl)
	cache := mocks.NewMockRestaurantCache(ctrl)
	validator := mocks.NewMockCatalogValidator(ctrl)

	repo.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), int64(9)).Return(errors.New("redis down"))

	svc := usecase.NewRestaurantService(repo, cache, noopLogger{}, validator)
	require.NoError(t, svc.Delete(context.Background(), 9))
}

func TestRestaurantService_Get_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRestaurantRepository(ctrl)
	r := allDayRestaurant()
	repo.EXPECT().GetByID(gomock.Any(), restaurantID).Return(r, nil)

	svc := usecase.NewRestaurantService(repo, nil, noopLogger{}, mocks.NewMockCatalogValidator(ctrl))

	got, err := svc.Get(context.Background(), restaurantID)
	require.NoError(t, err)
	require.Same(t, r, got)
}

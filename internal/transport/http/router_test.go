package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports/mocks"
	rest "github.com/Gunvolt24/restaurant_svc/internal/transport/http"
	"github.com/Gunvolt24/restaurant_svc/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type deps struct {
	orders      *mocks.MockOrderValidator
	restaurants *mocks.MockRestaurantManager
	dishes      *mocks.MockDishManager
	router      *gin.Engine
}

func newDeps(t *testing.T) deps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	d := deps{
		orders:      mocks.NewMockOrderValidator(ctrl),
		restaurants: mocks.NewMockRestaurantManager(ctrl),
		dishes:      mocks.NewMockDishManager(ctrl),
	}
	h := rest.NewHandler(d.orders, d.restaurants, d.dishes, noopLogger{}, time.Second)
	d.router = rest.NewRouter(h, "test")
	return d
}

func (d deps) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return got
}

var zone = domain.DeliveryZone{RadiusKm: 3, Center: domain.Coordinate{Latitude: 55.75, Longitude: 37.61}}

const orderJSON = `{"restaurant_id":7,"dish_names":["Pizza"," pizza "],"customer_location":{"latitude":55.76,"longitude":37.62}}`

func TestPing(t *testing.T) {
	d := newDeps(t)
	w := d.do(http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestValidateOrder_Success(t *testing.T) {
	d := newDeps(t)

	pizza := domain.Dish{ID: 10, Name: "Pizza", Price: 500, Available: true, RestaurantID: 7, Category: domain.CategoryMainCourses}
	d.orders.EXPECT().
		ValidateOrder(gomock.Any(), int64(7), []string{"Pizza", " pizza "}, domain.Coordinate{Latitude: 55.76, Longitude: 37.62}).
		Return(domain.ValidationSucceeded(zone, []domain.Dish{pizza, pizza}), nil)

	w := d.do(http.MethodPost, "/v1/orders/validate", orderJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got := decode(t, w)
	require.Equal(t, true, got["success"])
	require.NotContains(t, got, "description")
	require.Len(t, got["dishes"], 2)

	first := got["dishes"].([]any)[0].(map[string]any)
	require.EqualValues(t, 10, first["id"])
	require.Equal(t, "main_courses", first["category"])
	require.NotContains(t, first, "available")

	dz := got["delivery_zone"].(map[string]any)
	require.EqualValues(t, 3, dz["radius_km"])
}

func TestValidateOrder_SoftFailureIs200(t *testing.T) {
	d := newDeps(t)

	d.orders.EXPECT().ValidateOrder(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).
		Return(domain.ValidationFailed(zone, domain.MsgRestaurantClosed), nil)

	w := d.do(http.MethodPost, "/v1/orders/validate", orderJSON)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode(t, w)
	require.Equal(t, false, got["success"])
	require.Equal(t, domain.MsgRestaurantClosed, got["description"])
	require.NotContains(t, got, "dishes")
	require.Contains(t, got, "delivery_zone")
}

func TestValidateOrder_MissingDishNamesIsEmptyOrder(t *testing.T) {
	d := newDeps(t)

	d.orders.EXPECT().ValidateOrder(gomock.Any(), int64(7), []string{}, gomock.Any()).
		Return(domain.ValidationFailed(zone, domain.MsgNoDishes), nil)

	w := d.do(http.MethodPost, "/v1/orders/validate",
		`{"restaurant_id":7,"customer_location":{"latitude":0,"longitude":0}}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestValidateOrder_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"restaurant_id":`},
		{"no_restaurant", `{"dish_names":["a"],"customer_location":{"latitude":1,"longitude":1}}`},
		{"no_location", `{"restaurant_id":7,"dish_names":["a"]}`},
		{"no_longitude", `{"restaurant_id":7,"dish_names":["a"],"customer_location":{"latitude":1}}`},
		{"latitude_out_of_range", `{"restaurant_id":7,"dish_names":["a"],"customer_location":{"latitude":91,"longitude":1}}`},
		{"longitude_out_of_range", `{"restaurant_id":7,"dish_names":["a"],"customer_location":{"latitude":1,"longitude":-180.5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			w := d.do(http.MethodPost, "/v1/orders/validate", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			require.NotEmpty(t, decode(t, w)["error"])
		})
	}
}

func TestValidateOrder_RestaurantNotFound(t *testing.T) {
	d := newDeps(t)

	d.orders.EXPECT().ValidateOrder(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).
		Return(domain.OrderValidationResult{}, domain.RestaurantNotFound(7, "validate order"))

	w := d.do(http.MethodPost, "/v1/orders/validate", orderJSON)
	require.Equal(t, http.StatusNotFound, w.Code)

	got := decode(t, w)
	require.Equal(t, "not found", got["error"])
	require.Equal(t, domain.CodeRestaurantNotFound, got["code"])
	require.Equal(t, "validate order", got["operation"])
	require.EqualValues(t, 7, got["entity_id"])
}

func TestValidateOrder_InternalErrorHidesDetails(t *testing.T) {
	d := newDeps(t)

	d.orders.EXPECT().ValidateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.OrderValidationResult{}, errors.New("pq: connection reset"))

	w := d.do(http.MethodPost, "/v1/orders/validate", orderJSON)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "pq")
	require.Equal(t, "internal server error", decode(t, w)["error"])
}

func TestValidateOrder_HandlerTimeoutApplied(t *testing.T) {
	d := newDeps(t)

	d.orders.EXPECT().ValidateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _ []string, _ domain.Coordinate) (domain.OrderValidationResult, error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			return domain.OrderValidationResult{}, context.DeadlineExceeded
		})

	w := d.do(http.MethodPost, "/v1/orders/validate", orderJSON)
	require.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestCreateRestaurant(t *testing.T) {
	d := newDeps(t)

	d.restaurants.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.NewRestaurant) (int64, error) {
			require.Equal(t, "Pizzeria", r.Name)
			slot := r.Schedule.Slot(time.Monday)
			require.NotNil(t, slot)
			require.Equal(t, 10*time.Hour, slot.Open)
			require.Nil(t, r.Schedule.Slot(time.Sunday))
			require.Equal(t, 2.5, r.DeliveryZone.RadiusKm)
			return 5, nil
		})

	body := `{"name":"Pizzeria","address":"Main st 1",
		"schedule":{"monday":{"open":"10:00","close":"22:00"},"sunday":null},
		"delivery_zone":{"radius_km":2.5,"center":{"latitude":55.75,"longitude":37.61}}}`
	w := d.do(http.MethodPost, "/v1/restaurants", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.EqualValues(t, 5, decode(t, w)["id"])
}

func TestCreateRestaurant_InvalidSchedule(t *testing.T) {
	d := newDeps(t)
	w := d.do(http.MethodPost, "/v1/restaurants", `{"name":"x","schedule":{"funday":null}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRestaurant_ValidationError(t *testing.T) {
	d := newDeps(t)

	d.restaurants.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.Join(errors.New("validation failed"), validate.ErrInvalidInput))

	w := d.do(http.MethodPost, "/v1/restaurants", `{"name":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRestaurant(t *testing.T) {
	d := newDeps(t)

	r := &domain.Restaurant{ID: 5, Name: "Pizzeria", DeliveryZone: zone}
	r.Schedule.SetSlot(time.Friday, &domain.TimeSlot{Open: 22 * time.Hour, Close: 2 * time.Hour})
	d.restaurants.EXPECT().Get(gomock.Any(), int64(5)).Return(r, nil)

	w := d.do(http.MethodGet, "/v1/restaurants/5", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode(t, w)
	schedule := got["schedule"].(map[string]any)
	require.Len(t, schedule, 7)
	require.Nil(t, schedule["monday"])
	require.Equal(t, map[string]any{"open": "22:00", "close": "02:00"}, schedule["friday"])
}

func TestGetRestaurant_BadID(t *testing.T) {
	d := newDeps(t)
	require.Equal(t, http.StatusBadRequest, d.do(http.MethodGet, "/v1/restaurants/abc", "").Code)
	require.Equal(t, http.StatusBadRequest, d.do(http.MethodGet, "/v1/restaurants/0", "").Code)
}

func TestUpdateRestaurant_PartialPatch(t *testing.T) {
	d := newDeps(t)

	d.restaurants.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p domain.RestaurantPatch) error {
			require.NotNil(t, p.Name)
			require.Equal(t, "New name", *p.Name)
			require.Nil(t, p.Address)
			require.Nil(t, p.Schedule)
			require.Nil(t, p.DeliveryZone)
			return nil
		})

	w := d.do(http.MethodPatch, "/v1/restaurants/5", `{"name":"New name"}`)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteRestaurant_Conflict(t *testing.T) {
	d := newDeps(t)

	d.restaurants.EXPECT().Delete(gomock.Any(), int64(5)).
		Return(domain.RestaurantHasDishes(5, "delete restaurant"))

	w := d.do(http.MethodDelete, "/v1/restaurants/5", "")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, domain.CodeRestaurantHasDishes, decode(t, w)["code"])
}

func TestCreateDish(t *testing.T) {
	d := newDeps(t)

	d.dishes.EXPECT().Create(gomock.Any(), domain.NewDish{
		RestaurantID: 5, Name: "Soup", Price: 300, Available: true, Category: domain.CategoryAppetizers,
	}).Return(int64(11), nil)

	w := d.do(http.MethodPost, "/v1/restaurants/5/dishes", `{"name":"Soup","price":300,"category":"Appetizers"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.EqualValues(t, 11, decode(t, w)["id"])
}

func TestCreateDish_UnknownCategory(t *testing.T) {
	d := newDeps(t)
	w := d.do(http.MethodPost, "/v1/restaurants/5/dishes", `{"name":"Soup","price":300,"category":"snacks"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDish_NameTaken(t *testing.T) {
	d := newDeps(t)

	d.dishes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), domain.DishNameTaken(5, "create dish"))

	w := d.do(http.MethodPost, "/v1/restaurants/5/dishes", `{"name":"Soup","price":300,"category":"sides"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, domain.CodeDishNameTaken, decode(t, w)["code"])
}

func TestGetDish_NotFound(t *testing.T) {
	d := newDeps(t)

	d.dishes.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, domain.DishNotFound(99, "get dish"))

	w := d.do(http.MethodGet, "/v1/dishes/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, domain.CodeDishNotFound, decode(t, w)["code"])
}

func TestUpdateDish(t *testing.T) {
	d := newDeps(t)

	d.dishes.EXPECT().Update(gomock.Any(), int64(11), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p domain.DishPatch) error {
			require.NotNil(t, p.Available)
			require.False(t, *p.Available)
			require.Nil(t, p.Price)
			return nil
		})

	w := d.do(http.MethodPatch, "/v1/dishes/11", `{"available":false}`)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateDish_EmptyPatch(t *testing.T) {
	d := newDeps(t)
	require.Equal(t, http.StatusBadRequest, d.do(http.MethodPatch, "/v1/dishes/11", `{}`).Code)
}

func TestDeleteDish(t *testing.T) {
	d := newDeps(t)
	d.dishes.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil)
	require.Equal(t, http.StatusNoContent, d.do(http.MethodDelete, "/v1/dishes/11", "").Code)
}

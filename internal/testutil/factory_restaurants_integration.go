//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeRestaurant - валидный ресторан: открыт 00:00-23:59 ежедневно, радиус 9999 км.
func MakeRestaurant(opts ...func(*domain.NewRestaurant)) domain.NewRestaurant {
	r := domain.NewRestaurant{
		Name:    "Restaurant " + UniqSuffix(),
		Address: "Main st 1",
		DeliveryZone: domain.DeliveryZone{
			RadiusKm: 9999,
			Center:   domain.Coordinate{Latitude: 55.7558, Longitude: 37.6173},
		},
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		r.Schedule.SetSlot(d, &domain.TimeSlot{Open: 0, Close: 23*time.Hour + 59*time.Minute})
	}
	for _, fn := range opts {
		fn(&r)
	}
	return r
}

// WithDayOff - день без расписания.
func WithDayOff(d time.Weekday) func(*domain.NewRestaurant) {
	return func(r *domain.NewRestaurant) { r.Schedule.SetSlot(d, nil) }
}

func WithSlot(d time.Weekday, open, closeAt time.Duration) func(*domain.NewRestaurant) {
	return func(r *domain.NewRestaurant) {
		r.Schedule.SetSlot(d, &domain.TimeSlot{Open: open, Close: closeAt})
	}
}

// MakeDish - доступное блюдо основной категории.
func MakeDish(restaurantID int64, name string, opts ...func(*domain.NewDish)) domain.NewDish {
	d := domain.NewDish{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        1000,
		Available:    true,
		Category:     domain.CategoryMainCourses,
	}
	for _, fn := range opts {
		fn(&d)
	}
	return d
}

func Unavailable() func(*domain.NewDish) {
	return func(d *domain.NewDish) { d.Available = false }
}

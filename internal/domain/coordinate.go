package domain

import "github.com/Gunvolt24/restaurant_svc/pkg/geo"

// Coordinate - неизменяемая географическая точка в градусах.
// Допустимые диапазоны (широта [-90, 90], долгота [-180, 180]) проверяются на границе системы.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceKm - расстояние по большому кругу между точками (haversine, R = 6371 км).
func DistanceKm(a, b Coordinate) float64 {
	return geo.HaversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// DeliveryZone - круг доставки: центр и радиус в километрах.
type DeliveryZone struct {
	RadiusKm float64    `json:"radius_km"`
	Center   Coordinate `json:"center"`
}

// Covers - входит ли точка в зону доставки. Граница включительно.
func (z DeliveryZone) Covers(c Coordinate) bool {
	return DistanceKm(z.Center, c) <= z.RadiusKm
}

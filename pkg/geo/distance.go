// Пакет geo - геодезические вычисления без зависимостей от доменной модели.
package geo

import "math"

// EarthRadiusKm - средний радиус Земли, используемый во всех расчетах расстояний.
const EarthRadiusKm = 6371.0

// HaversineKm - расстояние по большому кругу между двумя точками (градусы) в километрах.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

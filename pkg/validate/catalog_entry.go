package validate

import "github.com/Gunvolt24/restaurant_svc/internal/domain"

// CatalogEntry - запись файла импорта: ресторан вместе с меню.
type CatalogEntry struct {
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	Schedule     domain.WorkSchedule `json:"schedule"`
	DeliveryZone domain.DeliveryZone `json:"delivery_zone"`
	Dishes       []DishEntry         `json:"dishes"`
}

// DishEntry - блюдо в файле импорта.
type DishEntry struct {
	Name      string              `json:"name"`
	Price     int64               `json:"price"`
	Available bool                `json:"available"`
	Category  domain.FoodCategory `json:"category"`
}

func (e *CatalogEntry) Restaurant() domain.NewRestaurant {
	return domain.NewRestaurant{
		Name:         e.Name,
		Address:      e.Address,
		Schedule:     e.Schedule,
		DeliveryZone: e.DeliveryZone,
	}
}

// Menu - блюда записи, привязанные к ресторану restaurantID.
func (e *CatalogEntry) Menu(restaurantID int64) []domain.NewDish {
	out := make([]domain.NewDish, 0, len(e.Dishes))
	for _, d := range e.Dishes {
		out = append(out, domain.NewDish{
			RestaurantID: restaurantID,
			Name:         d.Name,
			Price:        d.Price,
			Available:    d.Available,
			Category:     d.Category,
		})
	}
	return out
}

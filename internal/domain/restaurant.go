package domain

// Restaurant - снимок ресторана: расписание и зона доставки хранятся по значению.
type Restaurant struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Schedule     WorkSchedule `json:"schedule"`
	DeliveryZone DeliveryZone `json:"delivery_zone"`
}

// Clone - копия, не разделяющая интервалы расписания с оригиналом.
func (r *Restaurant) Clone() *Restaurant {
	if r == nil {
		return nil
	}
	out := *r
	out.Schedule = r.Schedule.Clone()
	return &out
}

// NewRestaurant - данные для создания ресторана.
type NewRestaurant struct {
	Name         string
	Address      string
	Schedule     WorkSchedule
	DeliveryZone DeliveryZone
}

// RestaurantPatch - частичное обновление; nil-поля не меняются.
type RestaurantPatch struct {
	Name         *string
	Address      *string
	Schedule     *WorkSchedule
	DeliveryZone *DeliveryZone
}

// NewDish - данные для создания блюда.
type NewDish struct {
	RestaurantID int64
	Name         string
	Price        int64
	Available    bool
	Category     FoodCategory
}

// DishPatch - частичное обновление блюда; название не меняется.
type DishPatch struct {
	Price     *int64
	Available *bool
	Category  *FoodCategory
}

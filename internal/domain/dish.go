package domain

import (
	"fmt"
	"strings"
)

// FoodCategory - категория блюда в меню.
type FoodCategory string

const (
	CategoryAppetizers  FoodCategory = "appetizers"
	CategoryMainCourses FoodCategory = "main_courses"
	CategoryDesserts    FoodCategory = "desserts"
	CategoryBeverages   FoodCategory = "beverages"
	CategorySides       FoodCategory = "sides"
)

var categories = map[FoodCategory]struct{}{
	CategoryAppetizers:  {},
	CategoryMainCourses: {},
	CategoryDesserts:    {},
	CategoryBeverages:   {},
	CategorySides:       {},
}

// ParseFoodCategory - разбор категории без учета регистра и пробелов по краям.
func ParseFoodCategory(raw string) (FoodCategory, error) {
	c := FoodCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown food category %q", raw)
	}
	return c, nil
}

// Valid - значение входит в перечисление.
func (c FoodCategory) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Dish - позиция меню ресторана. Цена в минимальных единицах валюты.
type Dish struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Price        int64        `json:"price"`
	Available    bool         `json:"available"`
	RestaurantID int64        `json:"restaurant_id"`
	Category     FoodCategory `json:"category"`
}

// NormalizeDishName - ключ сопоставления названий: обрезка пробелов и нижний регистр
// по правилам Unicode без учета локали. Идемпотентна.
func NormalizeDishName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

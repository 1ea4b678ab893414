package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - сущность с указанным id отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrConflict - операция нарушает ограничение целостности (дубликат названия, зависимые записи).
	ErrConflict = errors.New("conflict")
	// ErrContractViolation - хранилище нарушило ожидаемый контракт (например, INSERT ... RETURNING без строки).
	ErrContractViolation = errors.New("repository contract violation")
)

// Коды ошибок хранилища, которые транспорт может отдать клиенту.
const (
	CodeRestaurantNotFound  = "restaurant_not_found"
	CodeDishNotFound        = "dish_not_found"
	CodeContractViolation   = "repository_contract_violation"
	CodeDishNameTaken       = "dish_name_taken"
	CodeRestaurantHasDishes = "restaurant_has_dishes"
)

// EntityError - ошибка уровня хранилища с кодом, id сущности и именем операции.
// Сопоставляется с сентинелом через errors.Is.
type EntityError struct {
	Code      string
	EntityID  int64
	Operation string
	Err       error
}

func (e *EntityError) Error() string {
	if e.EntityID != 0 {
		return fmt.Sprintf("%s: %s id=%d: %v", e.Operation, e.Code, e.EntityID, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Operation, e.Code, e.Err)
}

func (e *EntityError) Unwrap() error { return e.Err }

// RestaurantNotFound - ресторан не найден.
func RestaurantNotFound(id int64, op string) error {
	return &EntityError{Code: CodeRestaurantNotFound, EntityID: id, Operation: op, Err: ErrNotFound}
}

// DishNotFound - блюдо не найдено.
func DishNotFound(id int64, op string) error {
	return &EntityError{Code: CodeDishNotFound, EntityID: id, Operation: op, Err: ErrNotFound}
}

// ContractViolation - запрос не вернул ожидаемых строк.
func ContractViolation(op string) error {
	return &EntityError{Code: CodeContractViolation, Operation: op, Err: ErrContractViolation}
}

// DishNameTaken - в меню ресторана уже есть блюдо с таким нормализованным названием.
func DishNameTaken(restaurantID int64, op string) error {
	return &EntityError{Code: CodeDishNameTaken, EntityID: restaurantID, Operation: op, Err: ErrConflict}
}

// RestaurantHasDishes - ресторан нельзя удалить, пока в меню есть блюда.
func RestaurantHasDishes(restaurantID int64, op string) error {
	return &EntityError{Code: CodeRestaurantHasDishes, EntityID: restaurantID, Operation: op, Err: ErrConflict}
}

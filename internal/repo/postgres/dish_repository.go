package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что DishRepository удовлетворяет интерфейсу DishRepository.
var _ ports.DishRepository = (*DishRepository)(nil)

const dishColumns = `dish_id, dish_name, dish_price, dish_availability, restaurant_id, food_category::text`

// DishRepository - меню ресторанов на Postgres (pgxpool).
type DishRepository struct {
	pool *pgxpool.Pool
}

// NewDishRepository - конструктор DishRepository.
func NewDishRepository(pool *pgxpool.Pool) *DishRepository { return &DishRepository{pool: pool} }

// FindByNormalizedNames - блюда ресторана, чьи нормализованные названия входят в names.
// names уже нормализованы domain.NormalizeDishName, как и колонка dish_name_normalized.
// Порядок стабилен (по dish_id); ненайденные названия просто отсутствуют в ответе.
func (r *DishRepository) FindByNormalizedNames(ctx context.Context, restaurantID int64, names []string) ([]domain.Dish, error) {
	if len(names) == 0 {
		return []domain.Dish{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+dishColumns+`
		FROM dishes
		WHERE restaurant_id = $1 AND dish_name_normalized = ANY($2::text[])
		ORDER BY dish_id
	`, restaurantID, names)
	if err != nil {
		return nil, fmt.Errorf("select dishes: %w", err)
	}
	defer rows.Close()

	dishes := make([]domain.Dish, 0, len(names))
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dishes rows: %w", err)
	}
	return dishes, nil
}

func (r *DishRepository) GetByID(ctx context.Context, id int64) (*domain.Dish, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+dishColumns+` FROM dishes WHERE dish_id = $1`, id)
	d, err := scanDish(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.DishNotFound(id, "DishRepository.GetByID")
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create - название сохраняется без пробелов по краям, ключ сопоставления считается в Go.
func (r *DishRepository) Create(ctx context.Context, in domain.NewDish) (int64, error) {
	const op = "DishRepository.Create"

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO dishes (restaurant_id, dish_name, dish_name_normalized, dish_price, dish_availability, food_category)
		VALUES ($1, $2, $3, $4, $5, $6::food_category)
		RETURNING dish_id
	`, in.RestaurantID, strings.TrimSpace(in.Name), domain.NormalizeDishName(in.Name),
		in.Price, in.Available, string(in.Category)).Scan(&id)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return 0, domain.ContractViolation(op)
	case pgCode(err) == pgUniqueViolation:
		return 0, domain.DishNameTaken(in.RestaurantID, op)
	case pgCode(err) == pgForeignKeyViolation:
		return 0, domain.RestaurantNotFound(in.RestaurantID, op)
	case err != nil:
		return 0, fmt.Errorf("insert dish: %w", err)
	}
	return id, nil
}

// Update - цена, доступность, категория; nil-поля не меняются.
func (r *DishRepository) Update(ctx context.Context, id int64, patch domain.DishPatch) error {
	var category *string
	if patch.Category != nil {
		c := string(*patch.Category)
		category = &c
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE dishes SET
			dish_price        = COALESCE($2, dish_price),
			dish_availability = COALESCE($3, dish_availability),
			food_category     = COALESCE($4::food_category, food_category)
		WHERE dish_id = $1
	`, id, patch.Price, patch.Available, category)
	if err != nil {
		return fmt.Errorf("update dish: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.DishNotFound(id, "DishRepository.Update")
	}
	return nil
}

func (r *DishRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dishes WHERE dish_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dish: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.DishNotFound(id, "DishRepository.Delete")
	}
	return nil
}

func scanDish(row pgx.Row) (domain.Dish, error) {
	var (
		d        domain.Dish
		category string
	)
	if err := row.Scan(&d.ID, &d.Name, &d.Price, &d.Available, &d.RestaurantID, &category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return d, err
		}
		return d, fmt.Errorf("scan dish: %w", err)
	}
	d.Category = domain.FoodCategory(category)
	return d, nil
}

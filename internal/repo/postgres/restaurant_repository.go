package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что RestaurantRepository удовлетворяет интерфейсу RestaurantRepository.
var _ ports.RestaurantRepository = (*RestaurantRepository)(nil)

// RestaurantRepository - рестораны и их расписание на Postgres (pgxpool).
type RestaurantRepository struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository - конструктор RestaurantRepository.
func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

// GetByID - снимок ресторана с расписанием одним запросом (left join по дням недели).
func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	const op = "RestaurantRepository.GetByID"

	rows, err := r.pool.Query(ctx, `
		SELECT r.restaurant_id, r.restaurant_name, r.restaurant_address,
			r.delivery_radius_km, r.delivery_center_lat, r.delivery_center_lon,
			h.day_of_week, h.open_time, h.close_time
		FROM restaurants r
		LEFT JOIN restaurant_working_hours h ON h.restaurant_id = r.restaurant_id
		WHERE r.restaurant_id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select restaurant: %w", err)
	}
	defer rows.Close()

	var res *domain.Restaurant
	for rows.Next() {
		var (
			rest          domain.Restaurant
			day           pgtype.Int4
			open, closeAt pgtype.Time
		)
		if err := rows.Scan(
			&rest.ID, &rest.Name, &rest.Address,
			&rest.DeliveryZone.RadiusKm, &rest.DeliveryZone.Center.Latitude, &rest.DeliveryZone.Center.Longitude,
			&day, &open, &closeAt,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		if res == nil {
			res = &rest
		}
		if day.Valid && open.Valid && closeAt.Valid {
			res.Schedule.SetSlot(time.Weekday(day.Int32), &domain.TimeSlot{
				Open:  fromPgTime(open),
				Close: fromPgTime(closeAt),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restaurant rows: %w", err)
	}
	if res == nil {
		return nil, domain.RestaurantNotFound(id, op)
	}
	return res, nil
}

// Create - ресторан и семь строк расписания в одной транзакции.
func (r *RestaurantRepository) Create(ctx context.Context, in domain.NewRestaurant) (int64, error) {
	const op = "RestaurantRepository.Create"

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer rollback(ctx, transaction)

	var id int64
	err = transaction.QueryRow(ctx, `
		INSERT INTO restaurants (
			restaurant_name, restaurant_address,
			delivery_radius_km, delivery_center_lat, delivery_center_lon
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING restaurant_id
	`, in.Name, in.Address,
		in.DeliveryZone.RadiusKm, in.DeliveryZone.Center.Latitude, in.DeliveryZone.Center.Longitude,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ContractViolation(op)
	}
	if err != nil {
		return 0, fmt.Errorf("insert restaurant: %w", err)
	}

	if err := copySchedule(ctx, transaction, id, &in.Schedule); err != nil {
		return 0, err
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Update - nil-поля патча не трогаем; расписание, если передано, заменяем целиком.
func (r *RestaurantRepository) Update(ctx context.Context, id int64, patch domain.RestaurantPatch) error {
	const op = "RestaurantRepository.Update"

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, transaction)

	var radius, lat, lon *float64
	if z := patch.DeliveryZone; z != nil {
		radius, lat, lon = &z.RadiusKm, &z.Center.Latitude, &z.Center.Longitude
	}

	// UPDATE выполняется всегда: RowsAffected заодно проверяет существование ресторана.
	tag, err := transaction.Exec(ctx, `
		UPDATE restaurants SET
			restaurant_name     = COALESCE($2, restaurant_name),
			restaurant_address  = COALESCE($3, restaurant_address),
			delivery_radius_km  = COALESCE($4, delivery_radius_km),
			delivery_center_lat = COALESCE($5, delivery_center_lat),
			delivery_center_lon = COALESCE($6, delivery_center_lon)
		WHERE restaurant_id = $1
	`, id, patch.Name, patch.Address, radius, lat, lon)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.RestaurantNotFound(id, op)
	}

	if patch.Schedule != nil {
		if _, err := transaction.Exec(ctx,
			`DELETE FROM restaurant_working_hours WHERE restaurant_id = $1`, id); err != nil {
			return fmt.Errorf("delete schedule: %w", err)
		}
		if err := copySchedule(ctx, transaction, id, patch.Schedule); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete - удалить расписание и ресторан. Пока в меню есть блюда, вернет domain.ErrConflict.
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	const op = "RestaurantRepository.Delete"

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, transaction)

	if _, err := transaction.Exec(ctx,
		`DELETE FROM restaurant_working_hours WHERE restaurant_id = $1`, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	tag, err := transaction.Exec(ctx, `DELETE FROM restaurants WHERE restaurant_id = $1`, id)
	if pgCode(err) == pgForeignKeyViolation {
		return domain.RestaurantHasDishes(id, op)
	}
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.RestaurantNotFound(id, op)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// copySchedule - вставка семи дней через COPY; выходные пишутся с NULL во времени.
func copySchedule(ctx context.Context, tx pgx.Tx, restaurantID int64, w *domain.WorkSchedule) error {
	rows := make([][]any, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		var open, closeAt pgtype.Time
		if s := w.Slot(d); s != nil {
			open, closeAt = toPgTime(s.Open), toPgTime(s.Close)
		}
		rows = append(rows, []any{restaurantID, int32(d), open, closeAt})
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"restaurant_working_hours"},
		[]string{"restaurant_id", "day_of_week", "open_time", "close_time"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy schedule: %w", err)
	}
	return nil
}

// rollback - при уже завершенной транзакции Rollback вернет ErrTxClosed, это штатно.
func rollback(ctx context.Context, tx pgx.Tx) {
	if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		_ = rbErr
	}
}

func toPgTime(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) time.Duration {
	return time.Duration(t.Microseconds) * time.Microsecond
}

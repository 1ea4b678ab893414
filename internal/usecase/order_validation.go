package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
	"github.com/Gunvolt24/restaurant_svc/pkg/metrics"
	"github.com/zoobzio/clockz"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/Gunvolt24/restaurant_svc/internal/usecase")

// OrderValidationService - проверка заказа перед оформлением.
// Состояния между вызовами не хранит, безопасен для конкурентного использования.
type OrderValidationService struct {
	restaurants ports.RestaurantLookup
	catalog     ports.DishCatalog
	clock       clockz.Clock
	loc         *time.Location // в этой локации вычисляются день недели и время суток
	log         ports.Logger
}

var _ ports.OrderValidator = (*OrderValidationService)(nil)

// NewOrderValidationService - DI-конструктор. clock == nil означает системные часы.
func NewOrderValidationService(
	restaurants ports.RestaurantLookup,
	catalog ports.DishCatalog,
	clock clockz.Clock,
	log ports.Logger,
) *OrderValidationService {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &OrderValidationService{
		restaurants: restaurants,
		catalog:     catalog,
		clock:       clock,
		loc:         time.Local,
		log:         log,
	}
}

// WithLocation - общая для процесса локация, в которой сверяется расписание.
func (s *OrderValidationService) WithLocation(loc *time.Location) *OrderValidationService {
	if loc != nil {
		s.loc = loc
	}
	return s
}

// ValidateOrder - проверка заказа на текущий момент по часам сервиса.
func (s *OrderValidationService) ValidateOrder(
	ctx context.Context,
	restaurantID int64,
	dishNames []string,
	location domain.Coordinate,
) (domain.OrderValidationResult, error) {
	return s.ValidateOrderAt(ctx, restaurantID, dishNames, location, s.clock.Now().In(s.loc))
}

// ValidateOrderAt - проверка заказа на момент now.
// Бизнес-отказы возвращаются в результате (Success=false), ошибки хранилища и отмена контекста - через error.
// Проверки идут строго по порядку, первая неуспешная завершает разбор:
//  1. ресторан существует;
//  2. заказ не пуст;
//  3. ресторан открыт в now;
//  4. клиент в зоне доставки (граница включительно);
//  5. все блюда есть в меню;
//  6. все найденные блюда доступны.
func (s *OrderValidationService) ValidateOrderAt(
	ctx context.Context,
	restaurantID int64,
	dishNames []string,
	location domain.Coordinate,
	now time.Time,
) (domain.OrderValidationResult, error) {
	ctx, span := tracer.Start(ctx, "OrderValidationService.ValidateOrder")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("restaurant.id", restaurantID),
		attribute.Int("order.dishes", len(dishNames)),
	)

	res, outcome, err := s.validate(ctx, restaurantID, dishNames, location, now)
	metrics.OrderValidations.WithLabelValues(outcome).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		s.log.Warnf(ctx, "validate order failed restaurant_id=%d err=%v", restaurantID, err)
		return domain.OrderValidationResult{}, err
	}

	span.SetAttributes(attribute.String("order.outcome", outcome))
	if !res.Success {
		s.log.Infof(ctx, "order rejected restaurant_id=%d reason=%q", restaurantID, res.Description)
	}
	return res, nil
}

func (s *OrderValidationService) validate(
	ctx context.Context,
	restaurantID int64,
	dishNames []string,
	location domain.Coordinate,
	now time.Time,
) (domain.OrderValidationResult, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.OrderValidationResult{}, metrics.OutcomeError, err
	}
	restaurant, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return domain.OrderValidationResult{}, metrics.OutcomeError, err
	}
	if restaurant == nil {
		return domain.OrderValidationResult{}, metrics.OutcomeError,
			domain.RestaurantNotFound(restaurantID, "OrderValidationService.ValidateOrder")
	}
	zone := restaurant.DeliveryZone

	if len(dishNames) == 0 {
		return domain.ValidationFailed(zone, domain.MsgNoDishes), metrics.OutcomeNoDishes, nil
	}
	if !restaurant.Schedule.IsOpen(now) {
		return domain.ValidationFailed(zone, domain.MsgRestaurantClosed), metrics.OutcomeClosed, nil
	}
	if !zone.Covers(location) {
		return domain.ValidationFailed(zone, domain.MsgDeliveryUnavailable), metrics.OutcomeOutOfZone, nil
	}

	normalized, distinct := normalizeNames(dishNames)

	if err := ctx.Err(); err != nil {
		return domain.OrderValidationResult{}, metrics.OutcomeError, err
	}
	found, err := s.catalog.FindByNormalizedNames(ctx, restaurantID, distinct)
	if err != nil {
		return domain.OrderValidationResult{}, metrics.OutcomeError, err
	}

	byName := make(map[string]domain.Dish, len(found))
	resolved := make([]string, 0, len(found))
	for _, d := range found {
		key := domain.NormalizeDishName(d.Name)
		if _, dup := byName[key]; !dup {
			byName[key] = d
			resolved = append(resolved, key)
		}
	}

	var missing []string
	for _, name := range distinct {
		if _, ok := byName[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return domain.ValidationFailed(zone, domain.MsgDishesMissingPrefix+strings.Join(missing, ", ")),
			metrics.OutcomeDishesMissing, nil
	}

	var unavailable []string
	for _, name := range checkOrder(distinct, resolved) {
		if d := byName[name]; !d.Available {
			unavailable = append(unavailable, d.Name)
		}
	}
	if len(unavailable) > 0 {
		return domain.ValidationFailed(zone, domain.MsgDishesUnavailablePfx+strings.Join(unavailable, ", ")),
			metrics.OutcomeDishesUnavailable, nil
	}

	dishes := make([]domain.Dish, 0, len(normalized))
	for _, name := range normalized {
		dishes = append(dishes, byName[name])
	}
	return domain.ValidationSucceeded(zone, dishes), metrics.OutcomeAccepted, nil
}

// normalizeNames - нормализованные названия в порядке запроса и их уникальный набор
// в порядке первого появления.
func normalizeNames(names []string) (normalized, distinct []string) {
	normalized = make([]string, len(names))
	seen := make(map[string]struct{}, len(names))
	for i, raw := range names {
		n := domain.NormalizeDishName(raw)
		normalized[i] = n
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			distinct = append(distinct, n)
		}
	}
	return normalized, distinct
}

// checkOrder - все найденные блюда: сначала запрошенные в порядке запроса,
// затем остальные в порядке выдачи каталога.
func checkOrder(requested, resolved []string) []string {
	out := make([]string, 0, len(resolved))
	seen := make(map[string]struct{}, len(resolved))
	for _, name := range requested {
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, name := range resolved {
		if _, ok := seen[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

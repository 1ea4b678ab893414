package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/restaurant_svc/internal/domain"
	"github.com/Gunvolt24/restaurant_svc/internal/ports"
)

// ValidateCatalogFromJSON - разбор и валидация одной записи каталога.
// Помимо проверок validator требует, чтобы названия блюд не совпадали после нормализации.
func ValidateCatalogFromJSON(ctx context.Context, validator ports.CatalogValidator, raw []byte) (*CatalogEntry, error) {
	var entry CatalogEntry
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&entry); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}

	r := entry.Restaurant()
	if err := validator.ValidateRestaurant(ctx, &r); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entry.Dishes))
	for i, d := range entry.Menu(0) {
		if err := validator.ValidateDish(ctx, &d); err != nil {
			return nil, fmt.Errorf("dishes[%d]: %w", i, err)
		}
		key := domain.NormalizeDishName(d.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: dishes[%d]: повторное название %q", ErrInvalidInput, i, key)
		}
		seen[key] = struct{}{}
	}
	return &entry, nil
}

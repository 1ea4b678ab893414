package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type timeSlotJSON struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ParseWeekday - "monday".."sunday" без учета регистра.
func ParseWeekday(raw string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", raw)
}

// MarshalJSON - {"monday":{"open":"10:00","close":"22:00"},"sunday":null,...}; все семь дней присутствуют.
func (w WorkSchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]*timeSlotJSON, len(w))
	for d := time.Sunday; d <= time.Saturday; d++ {
		var slot *timeSlotJSON
		if s := w[d]; s != nil {
			slot = &timeSlotJSON{Open: FormatTimeOfDay(s.Open), Close: FormatTimeOfDay(s.Close)}
		}
		out[strings.ToLower(d.String())] = slot
	}
	return json.Marshal(out)
}

// UnmarshalJSON - отсутствующий день или null означают выходной.
func (w *WorkSchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]*timeSlotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out WorkSchedule
	for key, slot := range raw {
		d, err := ParseWeekday(key)
		if err != nil {
			return err
		}
		if slot == nil {
			continue
		}
		open, err := ParseTimeOfDay(slot.Open)
		if err != nil {
			return fmt.Errorf("%s.open: %w", key, err)
		}
		closeAt, err := ParseTimeOfDay(slot.Close)
		if err != nil {
			return fmt.Errorf("%s.close: %w", key, err)
		}
		ts, err := NewTimeSlot(open, closeAt)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		out[d] = &ts
	}
	*w = out
	return nil
}

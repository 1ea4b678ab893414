package domain

import (
	"fmt"
	"strings"
	"time"
)

const day = 24 * time.Hour

// TimeSlot - интервал работы в пределах суток (смещения от полуночи).
// Open >= Close означает интервал, переходящий через полночь.
type TimeSlot struct {
	Open  time.Duration
	Close time.Duration
}

// NewTimeSlot - конструктор с проверкой, что оба значения лежат в [0, 24h).
func NewTimeSlot(open, close time.Duration) (TimeSlot, error) {
	if open < 0 || open >= day {
		return TimeSlot{}, fmt.Errorf("open time %s out of range", open)
	}
	if close < 0 || close >= day {
		return TimeSlot{}, fmt.Errorf("close time %s out of range", close)
	}
	return TimeSlot{Open: open, Close: close}, nil
}

// Wraps - интервал переходит через полночь.
func (s TimeSlot) Wraps() bool { return s.Open >= s.Close }

// Contains - покрывает ли интервал время суток t.
func (s TimeSlot) Contains(t time.Duration) bool {
	if s.Open < s.Close {
		return t >= s.Open && t < s.Close
	}
	return t >= s.Open || t < s.Close
}

// WorkSchedule - расписание по дням недели, индекс = time.Weekday (0 = воскресенье).
// nil в ячейке означает выходной.
type WorkSchedule [7]*TimeSlot

// Slot - интервал для дня недели; nil, если ресторан в этот день закрыт.
func (w *WorkSchedule) Slot(d time.Weekday) *TimeSlot {
	if w == nil || d < time.Sunday || d > time.Saturday {
		return nil
	}
	return w[d]
}

// SetSlot - задать (или снять при nil) интервал для дня недели.
func (w *WorkSchedule) SetSlot(d time.Weekday, slot *TimeSlot) {
	if d < time.Sunday || d > time.Saturday {
		return
	}
	if slot == nil {
		w[d] = nil
		return
	}
	s := *slot
	w[d] = &s
}

// IsOpen - открыт ли ресторан в момент at.
// День недели и время суток берутся в локации самого at; системные часы не используются.
func (w *WorkSchedule) IsOpen(at time.Time) bool {
	slot := w.Slot(at.Weekday())
	if slot == nil {
		return false
	}
	return slot.Contains(TimeOfDay(at))
}

// Clone - глубокая копия расписания.
func (w WorkSchedule) Clone() WorkSchedule {
	var out WorkSchedule
	for d, slot := range w {
		if slot != nil {
			s := *slot
			out[d] = &s
		}
	}
	return out
}

// TimeOfDay - смещение момента от полуночи в его собственной локации.
func TimeOfDay(at time.Time) time.Duration {
	h, m, s := at.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(at.Nanosecond())
}

// ParseTimeOfDay - разбор "HH:MM" или "HH:MM:SS" в смещение от полуночи.
func ParseTimeOfDay(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	layout := "15:04"
	if strings.Count(raw, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", raw, err)
	}
	return TimeOfDay(t), nil
}

// FormatTimeOfDay - обратное к ParseTimeOfDay; секунды выводятся только если они есть.
func FormatTimeOfDay(d time.Duration) string {
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

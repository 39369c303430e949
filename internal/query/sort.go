package query

import (
	"strings"
	"time"
)

// Direction задает направление сортировки по колонке.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return ""
}

// ParseDirection разбирает значение параметра order.
func ParseDirection(s string) Direction {
	switch s {
	case "asc":
		return Ascending
	case "desc":
		return Descending
	}
	return Unsorted
}

// Sort описывает сортировку списка по одной колонке.
// Нулевое значение означает "без сортировки" (исходный порядок вставки).
type Sort struct {
	Column    string
	Direction Direction
}

// Toggle реализует цикл повторных кликов по заголовку колонки:
// asc → desc → без сортировки для той же колонки, переход на другую
// колонку всегда начинает с asc.
func (s Sort) Toggle(column string) Sort {
	if s.Column != column {
		return Sort{Column: column, Direction: Ascending}
	}
	switch s.Direction {
	case Ascending:
		return Sort{Column: column, Direction: Descending}
	case Descending:
		return Sort{}
	}
	return Sort{Column: column, Direction: Ascending}
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Compare сравнивает два строковых значения колонки: значения, разбираемые
// как даты, сравниваются по моменту времени, остальные — как строки.
// Пара с пустым значением считается равной (стабильная сортировка не
// переставляет такие записи).
func Compare(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	at, aok := parseTime(a)
	bt, bok := parseTime(b)
	if aok && bok {
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

// Less сообщает, должен ли элемент со значением a идти раньше элемента
// со значением b при сортировке s.
func (s Sort) Less(a, b string) bool {
	c := Compare(a, b)
	if s.Direction == Descending {
		return c > 0
	}
	return c < 0
}

// Active сообщает, задана ли сортировка.
func (s Sort) Active() bool {
	return s.Column != "" && s.Direction != Unsorted
}

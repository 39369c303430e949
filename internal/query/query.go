package query

import (
	"strings"
	"time"
)

// Пакет query содержит примитивы движка фильтрации и сортировки:
// полнотекстовый поиск, фильтр по телефону, диапазон дат и сортировку
// по колонке. Все предикаты независимы и объединяются по "И".

// SentinelAll приходит из UI и означает "фильтр не задан".
const SentinelAll = "ALL"

// NormalizeCategorical убирает сентинел "ALL" до попадания значения в движок.
func NormalizeCategorical(v string) string {
	if v == SentinelAll {
		return ""
	}
	return v
}

// ContainsFold сообщает, содержит ли s подстроку substr без учета регистра.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchesSearch проверяет полнотекстовый поиск: запись подходит, если хотя бы
// одно из полей содержит term как подстроку без учета регистра.
// Пустой или пробельный term означает "без фильтра".
func MatchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, term) {
			return true
		}
	}
	return false
}

// MatchesPhone — подстрочный фильтр по телефону с учетом регистра.
// Запись без телефона никогда не подходит под непустой фильтр.
func MatchesPhone(filter string, phone *string) bool {
	if filter == "" {
		return true
	}
	if phone == nil {
		return false
	}
	return strings.Contains(*phone, filter)
}

// InDateRange проверяет попадание t в диапазон [from; to] с точностью до
// календарного дня: граница from включается с начала дня, граница to —
// целиком, до 23:59:59.999... включительно. Календарный день берется в
// часовом поясе самой границы, сравнение t идет по моменту времени.
func InDateRange(t time.Time, from, to *time.Time) bool {
	if from != nil {
		start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
		if t.Before(start) {
			return false
		}
	}
	if to != nil {
		end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
		if !t.Before(end) {
			return false
		}
	}
	return true
}

// ParseDay разбирает значение параметров dateFrom/dateTo (YYYY-MM-DD)
// в часовом поясе сервера: createdAt ставится серверными часами, поэтому
// и границы диапазона — это локальные календарные дни.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

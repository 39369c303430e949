package project

import (
	"sort"
	"strconv"
	"time"

	"github.com/dealflow-platform/admin-api/internal/query"
	"github.com/dealflow-platform/admin-api/internal/types"
)

// Filter — набор необязательных предикатов для выборки проектов.
type Filter struct {
	Search      string
	DealType    types.DealType
	Industry    string
	IsCompleted *bool
	Phone       string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// Match проверяет, подходит ли проект под все заданные предикаты.
// Поиск идет по name и industry, фильтр по телефону — по обоим
// контактным телефонам.
func (f Filter) Match(p Project) bool {
	if !query.MatchesSearch(f.Search, p.Name, p.Industry) {
		return false
	}
	if f.DealType != "" && p.DealType != f.DealType {
		return false
	}
	if f.Industry != "" && p.Industry != f.Industry {
		return false
	}
	if f.IsCompleted != nil && p.IsCompleted != *f.IsCompleted {
		return false
	}
	if f.Phone != "" && !query.MatchesPhone(f.Phone, p.ContactPhone1) && !query.MatchesPhone(f.Phone, p.ContactPhone2) {
		return false
	}
	return query.InDateRange(p.CreatedAt, f.DateFrom, f.DateTo)
}

// Apply возвращает отфильтрованный и, если задано, отсортированный список.
func Apply(projects []Project, f Filter, s query.Sort) []Project {
	result := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.Match(p) {
			result = append(result, p)
		}
	}
	if s.Active() {
		sort.SliceStable(result, func(i, j int) bool {
			return s.Less(columnValue(result[i], s.Column), columnValue(result[j], s.Column))
		})
	}
	return result
}

func columnValue(p Project, column string) string {
	switch column {
	case "id":
		return strconv.Itoa(p.ID)
	case "name":
		return p.Name
	case "dealType":
		return string(p.DealType)
	case "industry":
		return p.Industry
	case "createdAt":
		return p.CreatedAt.Format(time.RFC3339Nano)
	case "isVisible":
		return strconv.FormatBool(p.IsVisible)
	case "isCompleted":
		return strconv.FormatBool(p.IsCompleted)
	case "location":
		return strOrEmpty(p.Location)
	case "revenue":
		return strOrEmpty(p.Revenue)
	case "price":
		return strOrEmpty(p.Price)
	}
	return ""
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

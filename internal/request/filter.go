package request

import (
	"sort"
	"strconv"
	"time"

	"github.com/dealflow-platform/admin-api/internal/query"
	"github.com/dealflow-platform/admin-api/internal/types"
)

// Filter — набор необязательных предикатов для выборки обращений.
type Filter struct {
	Search   string
	UserType types.UserType
	Status   types.RequestStatus
	Phone    string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Match проверяет, подходит ли обращение под все заданные предикаты.
// Поиск идет по topic, fullName и organizationName.
func (f Filter) Match(r Request) bool {
	if !query.MatchesSearch(f.Search, r.Topic, r.FullName, strOrEmpty(r.OrganizationName)) {
		return false
	}
	if f.UserType != "" && r.UserType != f.UserType {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if !query.MatchesPhone(f.Phone, r.Phone) {
		return false
	}
	return query.InDateRange(r.CreatedAt, f.DateFrom, f.DateTo)
}

// Apply возвращает отфильтрованный и, если задано, отсортированный список.
func Apply(requests []Request, f Filter, s query.Sort) []Request {
	result := make([]Request, 0, len(requests))
	for _, r := range requests {
		if f.Match(r) {
			result = append(result, r)
		}
	}
	if s.Active() {
		sort.SliceStable(result, func(i, j int) bool {
			return s.Less(columnValue(result[i], s.Column), columnValue(result[j], s.Column))
		})
	}
	return result
}

func columnValue(r Request, column string) string {
	switch column {
	case "id":
		return strconv.Itoa(r.ID)
	case "userType":
		return string(r.UserType)
	case "topic":
		return r.Topic
	case "createdAt":
		return r.CreatedAt.Format(time.RFC3339Nano)
	case "status":
		return string(r.Status)
	case "fullName":
		return r.FullName
	case "organizationName":
		return strOrEmpty(r.OrganizationName)
	case "phone":
		return strOrEmpty(r.Phone)
	}
	return ""
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

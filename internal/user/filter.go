package user

import (
	"sort"
	"strconv"
	"time"

	"github.com/dealflow-platform/admin-api/internal/query"
	"github.com/dealflow-platform/admin-api/internal/types"
)

// Filter — набор необязательных предикатов для выборки пользователей.
// Нулевые значения означают "без фильтра".
type Filter struct {
	Search       string
	UserType     types.UserType
	Organization string
	Phone        string
}

// Match проверяет, подходит ли пользователь под все заданные предикаты.
// Поиск идет по username, organizationName и fullName.
func (f Filter) Match(u User) bool {
	if !query.MatchesSearch(f.Search, u.Username, u.OrganizationName, u.FullName) {
		return false
	}
	if f.UserType != "" && u.UserType != f.UserType {
		return false
	}
	if f.Organization != "" && u.OrganizationName != f.Organization {
		return false
	}
	return query.MatchesPhone(f.Phone, u.Phone)
}

// Apply возвращает отфильтрованный и, если задано, отсортированный список.
// Исходный список не изменяется.
func Apply(users []User, f Filter, s query.Sort) []User {
	result := make([]User, 0, len(users))
	for _, u := range users {
		if f.Match(u) {
			result = append(result, u)
		}
	}
	if s.Active() {
		sort.SliceStable(result, func(i, j int) bool {
			return s.Less(columnValue(result[i], s.Column), columnValue(result[j], s.Column))
		})
	}
	return result
}

func columnValue(u User, column string) string {
	switch column {
	case "id":
		return strconv.Itoa(u.ID)
	case "userType":
		return string(u.UserType)
	case "username":
		return u.Username
	case "organizationName":
		return u.OrganizationName
	case "fullName":
		return u.FullName
	case "phone":
		return strOrEmpty(u.Phone)
	case "lastAccess":
		if u.LastAccess == nil {
			return ""
		}
		return u.LastAccess.Format(time.RFC3339Nano)
	case "comments":
		return strOrEmpty(u.Comments)
	}
	return ""
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

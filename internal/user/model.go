package user

import (
	"time"

	"github.com/dealflow-platform/admin-api/internal/types"
)

// User представляет пользователя платформы (продавца или покупателя).
type User struct {
	ID               int            `json:"id" db:"id"`
	UserType         types.UserType `json:"userType" db:"user_type"`
	Username         string         `json:"username" db:"username"`
	OrganizationName string         `json:"organizationName" db:"organization_name"`
	FullName         string         `json:"fullName" db:"full_name"`
	Phone            *string        `json:"phone,omitempty" db:"phone"`
	LastAccess       *time.Time     `json:"lastAccess,omitempty" db:"last_access"`
	Comments         *string        `json:"comments,omitempty" db:"comments"`
}

// CreateInput — данные для создания пользователя. ID и lastAccess
// проставляет хранилище.
type CreateInput struct {
	UserType         types.UserType
	Username         string
	OrganizationName string
	FullName         string
	Phone            *string
	Comments         *string
}

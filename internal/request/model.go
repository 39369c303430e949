package request

import (
	"time"

	"github.com/dealflow-platform/admin-api/internal/types"
)

// Request представляет обращение в службу поддержки платформы: заявку на
// размещение, запрос доступа или вопросы по проекту. Поля organizationName,
// cnum и login заполняются для запросов доступа.
type Request struct {
	ID               int                 `json:"id" db:"id"`
	UserType         types.UserType      `json:"userType" db:"user_type"`
	Topic            string              `json:"topic" db:"topic"`
	CreatedAt        time.Time           `json:"createdAt" db:"created_at"`
	Status           types.RequestStatus `json:"status" db:"status"`
	FullName         string              `json:"fullName" db:"full_name"`
	OrganizationName *string             `json:"organizationName,omitempty" db:"organization_name"`
	CNum             *string             `json:"cnum,omitempty" db:"cnum"`
	Login            *string             `json:"login,omitempty" db:"login"`
	Phone            *string             `json:"phone,omitempty" db:"phone"`
	Comments         *string             `json:"comments,omitempty" db:"comments"`
}

// CreateInput — данные для создания обращения. Статус всегда NEW,
// что бы ни прислал клиент; ID и createdAt проставляет хранилище.
type CreateInput struct {
	UserType         types.UserType
	Topic            string
	FullName         string
	OrganizationName *string
	CNum             *string
	Login            *string
	Phone            *string
	Comments         *string
}

// Patch перечисляет изменяемые поля обращения; nil означает "не менять".
type Patch struct {
	Status           *types.RequestStatus
	Topic            *string
	FullName         *string
	OrganizationName *string
	CNum             *string
	Login            *string
	Phone            *string
	Comments         *string
}

func (p Patch) apply(r *Request) {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Topic != nil {
		r.Topic = *p.Topic
	}
	if p.FullName != nil {
		r.FullName = *p.FullName
	}
	if p.OrganizationName != nil {
		r.OrganizationName = p.OrganizationName
	}
	if p.CNum != nil {
		r.CNum = p.CNum
	}
	if p.Login != nil {
		r.Login = p.Login
	}
	if p.Phone != nil {
		r.Phone = p.Phone
	}
	if p.Comments != nil {
		r.Comments = p.Comments
	}
}

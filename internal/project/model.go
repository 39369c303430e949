package project

import (
	"time"

	"github.com/dealflow-platform/admin-api/internal/types"
)

// Project представляет сделку (продажа бизнеса или привлечение инвестиций).
// Контактные и финансовые поля необязательны и заполняются менеджером
// по мере проработки сделки.
type Project struct {
	ID          int            `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	DealType    types.DealType `json:"dealType" db:"deal_type"`
	Industry    string         `json:"industry" db:"industry"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	IsVisible   bool           `json:"isVisible" db:"is_visible"`
	IsCompleted bool           `json:"isCompleted" db:"is_completed"`

	ContactName1     *string `json:"contactName1,omitempty" db:"contact_name_1"`
	ContactPhone1    *string `json:"contactPhone1,omitempty" db:"contact_phone_1"`
	ContactPosition1 *string `json:"contactPosition1,omitempty" db:"contact_position_1"`
	ContactPhone2    *string `json:"contactPhone2,omitempty" db:"contact_phone_2"`
	INN              *string `json:"inn,omitempty" db:"inn"`
	Location         *string `json:"location,omitempty" db:"location"`
	Revenue          *string `json:"revenue,omitempty" db:"revenue"`
	EBITDA           *string `json:"ebitda,omitempty" db:"ebitda"`
	Price            *string `json:"price,omitempty" db:"price"`
	SalePercent      *string `json:"salePercent,omitempty" db:"sale_percent"`
	Website          *string `json:"website,omitempty" db:"website"`
	HideUntilNDA     bool    `json:"hideUntilNda" db:"hide_until_nda"`
	Comments         *string `json:"comments,omitempty" db:"comments"`
}

// CreateInput — данные для создания проекта. ID и createdAt проставляет
// хранилище; nil для булевых полей означает значение по умолчанию
// (isVisible=true, isCompleted=false, hideUntilNda=false).
type CreateInput struct {
	Name        string
	DealType    types.DealType
	Industry    string
	IsVisible   *bool
	IsCompleted *bool

	ContactName1     *string
	ContactPhone1    *string
	ContactPosition1 *string
	ContactPhone2    *string
	INN              *string
	Location         *string
	Revenue          *string
	EBITDA           *string
	Price            *string
	SalePercent      *string
	Website          *string
	HideUntilNDA     *bool
	Comments         *string
}

// Patch перечисляет изменяемые поля проекта; nil означает "не менять".
// createdAt неизменяем и в Patch не входит.
type Patch struct {
	Name        *string
	DealType    *types.DealType
	Industry    *string
	IsVisible   *bool
	IsCompleted *bool

	ContactName1     *string
	ContactPhone1    *string
	ContactPosition1 *string
	ContactPhone2    *string
	INN              *string
	Location         *string
	Revenue          *string
	EBITDA           *string
	Price            *string
	SalePercent      *string
	Website          *string
	HideUntilNDA     *bool
	Comments         *string
}

// apply накладывает заполненные поля патча на запись (merge-семантика).
func (p Patch) apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.DealType != nil {
		pr.DealType = *p.DealType
	}
	if p.Industry != nil {
		pr.Industry = *p.Industry
	}
	if p.IsVisible != nil {
		pr.IsVisible = *p.IsVisible
	}
	if p.IsCompleted != nil {
		pr.IsCompleted = *p.IsCompleted
	}
	if p.ContactName1 != nil {
		pr.ContactName1 = p.ContactName1
	}
	if p.ContactPhone1 != nil {
		pr.ContactPhone1 = p.ContactPhone1
	}
	if p.ContactPosition1 != nil {
		pr.ContactPosition1 = p.ContactPosition1
	}
	if p.ContactPhone2 != nil {
		pr.ContactPhone2 = p.ContactPhone2
	}
	if p.INN != nil {
		pr.INN = p.INN
	}
	if p.Location != nil {
		pr.Location = p.Location
	}
	if p.Revenue != nil {
		pr.Revenue = p.Revenue
	}
	if p.EBITDA != nil {
		pr.EBITDA = p.EBITDA
	}
	if p.Price != nil {
		pr.Price = p.Price
	}
	if p.SalePercent != nil {
		pr.SalePercent = p.SalePercent
	}
	if p.Website != nil {
		pr.Website = p.Website
	}
	if p.HideUntilNDA != nil {
		pr.HideUntilNDA = *p.HideUntilNDA
	}
	if p.Comments != nil {
		pr.Comments = p.Comments
	}
}

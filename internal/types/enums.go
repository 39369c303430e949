package types

// Общие перечисления платформы. Строковые значения входят во внешний
// JSON-контракт и не должны меняться.

type UserType string

const (
	UserTypeSeller UserType = "SELLER"
	UserTypeBuyer  UserType = "BUYER"
)

func (t UserType) Valid() bool {
	return t == UserTypeSeller || t == UserTypeBuyer
}

func (t UserType) String() string {
	return string(t)
}

type DealType string

const (
	DealTypeSale       DealType = "SALE"
	DealTypeInvestment DealType = "INVESTMENT"
)

func (t DealType) Valid() bool {
	return t == DealTypeSale || t == DealTypeInvestment
}

func (t DealType) String() string {
	return string(t)
}

type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "NEW"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusRejected   RequestStatus = "REJECTED"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusNew, RequestStatusInProgress, RequestStatusCompleted, RequestStatusRejected:
		return true
	}
	return false
}

func (s RequestStatus) String() string {
	return string(s)
}

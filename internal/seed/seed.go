// Package seed наполняет in-memory хранилище демонстрационными данными.
// Даты создания разнесены по дням, чтобы фильтры по диапазону дат было
// видно на живых данных.
package seed

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/project"
	"github.com/dealflow-platform/admin-api/internal/request"
	"github.com/dealflow-platform/admin-api/internal/types"
	"github.com/dealflow-platform/admin-api/internal/user"
)

func str(s string) *string { return &s }

// Demo загружает демонстрационный набор: пользователей, проекты и обращения.
func Demo(users *user.MemoryRepository, projects *project.MemoryRepository, requests *request.MemoryRepository) {
	now := time.Now()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	lastAccess1 := daysAgo(1)
	lastAccess2 := now.Add(-5 * time.Hour)

	users.Load(user.User{
		ID:               1,
		UserType:         types.UserTypeSeller,
		Username:         "seller1",
		OrganizationName: "Acme Corp",
		FullName:         "Иванов Петр Сергеевич",
		Phone:            str("+7 (900) 123-45-67"),
		LastAccess:       &lastAccess1,
		Comments:         str("Активный продавец"),
	})
	users.Load(user.User{
		ID:               2,
		UserType:         types.UserTypeBuyer,
		Username:         "buyer1",
		OrganizationName: "ООО \"ТехИнвест\"",
		FullName:         "Смирнова Анна Ивановна",
		Phone:            str("+7 (911) 987-65-43"),
		LastAccess:       &lastAccess2,
		Comments:         str("Крупный инвестор"),
	})

	projects.Load(project.Project{
		ID:            1,
		Name:          "Food Processing Plant",
		DealType:      types.DealTypeSale,
		Industry:      "Food & Beverage",
		CreatedAt:     now,
		IsVisible:     true,
		ContactName1:  str("Иванов Петр Сергеевич"),
		ContactPhone1: str("+7 (900) 123-45-67"),
		INN:           str("1234567890"),
		Location:      str("Москва"),
		Revenue:       str("120 млн ₽"),
		EBITDA:        str("30 млн ₽"),
		Price:         str("450 млн ₽"),
		SalePercent:   str("100%"),
		Website:       str("foodprocessing.ru"),
		Comments:      str("Перспективный проект"),
	})
	projects.Load(project.Project{
		ID:            2,
		Name:          "Semiconductor Manufacturer",
		DealType:      types.DealTypeInvestment,
		Industry:      "Electronics",
		CreatedAt:     daysAgo(3),
		IsVisible:     true,
		ContactName1:  str("Петров Алексей Владимирович"),
		ContactPhone1: str("+7 (922) 345-67-89"),
		Location:      str("Санкт-Петербург"),
		Revenue:       str("350 млн ₽"),
		Price:         str("1200 млн ₽"),
		SalePercent:   str("49%"),
		HideUntilNDA:  true,
		Comments:      str("Требуются инвестиции в оборудование"),
	})
	projects.Load(project.Project{
		ID:            3,
		Name:          "IT Management Services",
		DealType:      types.DealTypeSale,
		Industry:      "IT",
		CreatedAt:     daysAgo(10),
		IsVisible:     true,
		ContactName1:  str("Смирнова Анна Ивановна"),
		ContactPhone1: str("+7 (911) 987-65-43"),
		Location:      str("Казань"),
		Revenue:       str("80 млн ₽"),
		Price:         str("300 млн ₽"),
		SalePercent:   str("100%"),
		Comments:      str("Стабильный денежный поток"),
	})
	projects.Load(project.Project{
		ID:          4,
		Name:        "Agricultural Complex",
		DealType:    types.DealTypeSale,
		Industry:    "Agriculture",
		CreatedAt:   daysAgo(30),
		IsVisible:   true,
		IsCompleted: true,
		Location:    str("Краснодар"),
		Comments:    str("Земельный банк 5000 га"),
	})

	requests.Load(request.Request{
		ID:               1,
		UserType:         types.UserTypeSeller,
		Topic:            "Заявка на размещение",
		CreatedAt:        now,
		Status:           types.RequestStatusNew,
		FullName:         "Иванов Петр Сергеевич",
		OrganizationName: str("АО \"ИнвестФинанс\""),
		CNum:             str("123456"),
		Login:            str("ivanov_ps"),
		Phone:            str("+7 (900) 123-45-67"),
		Comments:         str("Хочу разместить свой проект на платформе"),
	})
	requests.Load(request.Request{
		ID:               2,
		UserType:         types.UserTypeBuyer,
		Topic:            "Запрос доступа",
		CreatedAt:        daysAgo(2),
		Status:           types.RequestStatusInProgress,
		FullName:         "Смирнова Анна Ивановна",
		OrganizationName: str("ООО \"ТехИнвест\""),
		CNum:             str("789012"),
		Login:            str("smirnova_ai"),
		Phone:            str("+7 (911) 987-65-43"),
		Comments:         str("Необходим доступ к закрытым проектам"),
	})
	requests.Load(request.Request{
		ID:        3,
		UserType:  types.UserTypeSeller,
		Topic:     "Вопросы по проекту",
		CreatedAt: daysAgo(5),
		Status:    types.RequestStatusCompleted,
		FullName:  "Петров Алексей Владимирович",
		Phone:     str("+7 (922) 345-67-89"),
		Comments:  str("Требуется консультация по оформлению документов"),
	})
	requests.Load(request.Request{
		ID:        4,
		UserType:  types.UserTypeBuyer,
		Topic:     "Заявка на размещение",
		CreatedAt: daysAgo(7),
		Status:    types.RequestStatusRejected,
		FullName:  "Козлов Дмитрий Андреевич",
		Phone:     str("+7 (933) 456-78-90"),
		Comments:  str("Не прошли требования по безопасности"),
	})
	requests.Load(request.Request{
		ID:               5,
		UserType:         types.UserTypeSeller,
		Topic:            "Запрос доступа",
		CreatedAt:        daysAgo(1),
		Status:           types.RequestStatusNew,
		FullName:         "Соколова Екатерина Михайловна",
		OrganizationName: str("ЗАО \"ИнвестСтрой\""),
		CNum:             str("345678"),
		Login:            str("sokolova_em"),
		Phone:            str("+7 (944) 567-89-01"),
		Comments:         str("Требуется расширенный доступ"),
	})
	requests.Load(request.Request{
		ID:        6,
		UserType:  types.UserTypeBuyer,
		Topic:     "Вопросы по проекту",
		CreatedAt: daysAgo(4),
		Status:    types.RequestStatusInProgress,
		FullName:  "Морозов Сергей Александрович",
		Phone:     str("+7 (955) 678-90-12"),
		Comments:  str("Необходима встреча для обсуждения деталей"),
	})

	log.Info().Msg("Demo data loaded into memory store")
}

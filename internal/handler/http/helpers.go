package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/project"
	"github.com/dealflow-platform/admin-api/internal/query"
	"github.com/dealflow-platform/admin-api/internal/request"
	"github.com/dealflow-platform/admin-api/internal/user"
)

// FieldError описывает одно нарушение схемы запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse — тело ответа 400 при ошибке валидации.
type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

// newValidator возвращает валидатор, который в ошибках использует
// json-имена полей вместо имен полей Go-структуры.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// respondWithError отправляет JSON ошибку
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON отправляет JSON ответ
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondWithValidationErrors отправляет 400 со списком нарушений по полям.
// Валидация выполняется до любого обращения к хранилищу.
func respondWithValidationErrors(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: formatValidationErrors(validationErrors),
		})
		return
	}
	log.Error().Err(err).Msg("unexpected error type during validation")
	respondWithError(w, http.StatusInternalServerError, "Internal validation error")
}

func formatValidationErrors(errs validator.ValidationErrors) []FieldError {
	details := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		details = append(details, FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return details
}

func fieldName(fe validator.FieldError) string {
	// Имя поля в ответе совпадает с json-тегом DTO, см. RegisterTagNameFunc.
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, project.ErrNotFound),
		errors.Is(err, request.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrUsernameExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam извлекает целочисленный id из пути.
func parseIDParam(r *http.Request) (int, error) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id parameter %q", idParam)
	}
	return id, nil
}

// categoricalParam читает категориальный фильтр из query string,
// нормализуя сентинел "ALL" в "фильтр не задан".
func categoricalParam(r *http.Request, name string) string {
	return query.NormalizeCategorical(r.URL.Query().Get(name))
}

// parseSortParams читает параметры сортировки: sort=newest|oldest как
// пресеты по createdAt либо пара sortBy + order для явной колонки.
func parseSortParams(r *http.Request) query.Sort {
	switch r.URL.Query().Get("sort") {
	case "newest":
		return query.Sort{Column: "createdAt", Direction: query.Descending}
	case "oldest":
		return query.Sort{Column: "createdAt", Direction: query.Ascending}
	}
	column := r.URL.Query().Get("sortBy")
	if column == "" {
		return query.Sort{}
	}
	direction := query.ParseDirection(r.URL.Query().Get("order"))
	if direction == query.Unsorted {
		direction = query.Ascending
	}
	return query.Sort{Column: column, Direction: direction}
}

// parseDateRange читает dateFrom/dateTo (YYYY-MM-DD); обе границы включительны.
func parseDateRange(r *http.Request) (from, to *time.Time, fieldErrs []FieldError) {
	if v := r.URL.Query().Get("dateFrom"); v != "" {
		t, err := query.ParseDay(v)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "dateFrom", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			from = &t
		}
	}
	if v := r.URL.Query().Get("dateTo"); v != "" {
		t, err := query.ParseDay(v)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "dateTo", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			to = &t
		}
	}
	return from, to, fieldErrs
}

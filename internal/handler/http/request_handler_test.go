package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminHttp "github.com/dealflow-platform/admin-api/internal/handler/http"
	"github.com/dealflow-platform/admin-api/internal/request"
	"github.com/dealflow-platform/admin-api/internal/types"
)

func newRequestRouter() chi.Router {
	repo := request.NewMemoryRepository()
	handler := adminHttp.NewRequestHandler(request.NewService(repo))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestRequestHandler_CreateForcesNewStatus(t *testing.T) {
	router := newRequestRouter()

	// Клиентский статус игнорируется: новое обращение всегда NEW.
	rr := doJSON(t, router, http.MethodPost, "/requests", map[string]interface{}{
		"userType": "BUYER",
		"topic":    "Покупка бизнеса",
		"fullName": "Смирнова Анна",
		"status":   "COMPLETED",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created request.Request
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, "NEW", string(created.Status))
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestRequestHandler_CreateValidation(t *testing.T) {
	router := newRequestRouter()

	rr := doJSON(t, router, http.MethodPost, "/requests", map[string]interface{}{
		"userType": "GUEST",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var response adminHttp.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, "Validation failed", response.Error)

	fields := make(map[string]string)
	for _, d := range response.Details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "must be one of: SELLER BUYER", fields["userType"])
	assert.Equal(t, "is required", fields["topic"])
	assert.Equal(t, "is required", fields["fullName"])
}

func TestRequestHandler_PatchStatus(t *testing.T) {
	router := newRequestRouter()

	rr := doJSON(t, router, http.MethodPost, "/requests", map[string]interface{}{
		"userType": "SELLER",
		"topic":    "Продажа завода",
		"fullName": "Козлов Дмитрий",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPatch, "/requests/1", map[string]interface{}{
		"status": "IN_PROGRESS",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var updated request.Request
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&updated))
	assert.Equal(t, "IN_PROGRESS", string(updated.Status))
	assert.Equal(t, "Продажа завода", updated.Topic)

	// Недопустимый статус — 400, запись не меняется.
	rr = doJSON(t, router, http.MethodPatch, "/requests/1", map[string]interface{}{
		"status": "ARCHIVED",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/requests/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&updated))
	assert.Equal(t, "IN_PROGRESS", string(updated.Status))

	rr = doJSON(t, router, http.MethodPatch, "/requests/42", map[string]interface{}{
		"status": "COMPLETED",
	})
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRequestHandler_ListFilters(t *testing.T) {
	router := newRequestRouter()

	for _, p := range []map[string]interface{}{
		{"userType": "BUYER", "topic": "Покупка бизнеса", "fullName": "Смирнова Анна"},
		{"userType": "SELLER", "topic": "Продажа завода", "fullName": "Козлов Дмитрий"},
	} {
		rr := doJSON(t, router, http.MethodPost, "/requests", p)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doJSON(t, router, http.MethodPatch, "/requests/2", map[string]interface{}{
		"status": "COMPLETED",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/requests?status=COMPLETED", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var requests []request.Request
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&requests))
	require.Len(t, requests, 1)
	assert.Equal(t, 2, requests[0].ID)

	rr = doJSON(t, router, http.MethodGet, "/requests?search=Смирнова", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "Смирнова Анна", requests[0].FullName)

	rr = doJSON(t, router, http.MethodGet, "/requests?status=ALL&userType=ALL", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&requests))
	assert.Len(t, requests, 2)

	rr = doJSON(t, router, http.MethodGet, "/requests?status=ARCHIVED", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/requests?dateTo=not-a-date", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequestHandler_ListSortPresets(t *testing.T) {
	repo := request.NewMemoryRepository()
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	for i, topic := range []string{"Первое", "Второе", "Третье"} {
		repo.Load(request.Request{
			ID:        i + 1,
			UserType:  types.UserTypeBuyer,
			Topic:     topic,
			CreatedAt: base.AddDate(0, 0, i),
			Status:    types.RequestStatusNew,
			FullName:  "Смирнова Анна",
		})
	}

	handler := adminHttp.NewRequestHandler(request.NewService(repo))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	// Без сортировки — порядок вставки.
	rr := doJSON(t, router, http.MethodGet, "/requests", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var requests []request.Request
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&requests))
	require.Len(t, requests, 3)
	assert.Equal(t, 1, requests[0].ID)

	rr = doJSON(t, router, http.MethodGet, "/requests?sort=newest", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&requests))
	require.Len(t, requests, 3)
	assert.Equal(t, 3, requests[0].ID)
}

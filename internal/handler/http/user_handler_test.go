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
	"github.com/dealflow-platform/admin-api/internal/types"
	"github.com/dealflow-platform/admin-api/internal/user"
)

func newUserRouter() chi.Router {
	repo := user.NewMemoryRepository()
	handler := adminHttp.NewUserHandler(user.NewService(repo))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func validUserPayload() map[string]interface{} {
	return map[string]interface{}{
		"userType":         "SELLER",
		"username":         "ivanov",
		"organizationName": "ООО Ромашка",
		"fullName":         "Иванов Иван",
	}
}

func TestUserHandler_CreateAndGet(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodPost, "/users", validUserPayload())
	require.Equal(t, http.StatusCreated, rr.Code)

	var created user.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "ivanov", created.Username)
	require.NotNil(t, created.LastAccess)

	rr = doJSON(t, router, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/users/username/ivanov", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var byUsername user.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&byUsername))
	assert.Equal(t, created.ID, byUsername.ID)

	rr = doJSON(t, router, http.MethodGet, "/users/username/petrov", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/users/99", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUserHandler_CreateValidation(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodPost, "/users", map[string]interface{}{
		"userType": "ADMIN",
		"username": "ivanov",
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
	assert.Equal(t, "is required", fields["organizationName"])
	assert.Equal(t, "is required", fields["fullName"])
}

func TestUserHandler_CreateUnknownFieldRejected(t *testing.T) {
	router := newUserRouter()

	payload := validUserPayload()
	payload["role"] = "admin"

	rr := doJSON(t, router, http.MethodPost, "/users", payload)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserHandler_CreateDuplicateUsername(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodPost, "/users", validUserPayload())
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/users", validUserPayload())
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestUserHandler_ListFilterAndSearch(t *testing.T) {
	router := newUserRouter()

	seller := validUserPayload()
	buyer := map[string]interface{}{
		"userType":         "BUYER",
		"username":         "petrov",
		"organizationName": "АО ТехИнвест",
		"fullName":         "Петров Петр",
	}
	for _, p := range []map[string]interface{}{seller, buyer} {
		rr := doJSON(t, router, http.MethodPost, "/users", p)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doJSON(t, router, http.MethodGet, "/users?userType=BUYER", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var users []user.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "petrov", users[0].Username)

	// Поиск без учета регистра по username / organizationName / fullName.
	rr = doJSON(t, router, http.MethodGet, "/users?search=техинвест", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "petrov", users[0].Username)

	rr = doJSON(t, router, http.MethodGet, "/users?userType=ALL", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
	assert.Len(t, users, 2)

	rr = doJSON(t, router, http.MethodGet, "/users?userType=ADMIN", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserHandler_ListSortNewestUsesLastAccess(t *testing.T) {
	repo := user.NewMemoryRepository()
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	for i, username := range []string{"oldest", "middle", "newest"} {
		lastAccess := base.AddDate(0, 0, i)
		repo.Load(user.User{
			ID:               i + 1,
			UserType:         types.UserTypeSeller,
			Username:         username,
			OrganizationName: "Org",
			FullName:         "Name",
			LastAccess:       &lastAccess,
		})
	}

	handler := adminHttp.NewUserHandler(user.NewService(repo))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	rr := doJSON(t, router, http.MethodGet, "/users?sort=newest", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var users []user.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
	require.Len(t, users, 3)
	assert.Equal(t, "newest", users[0].Username)
	assert.Equal(t, "oldest", users[2].Username)

	rr = doJSON(t, router, http.MethodGet, "/users?sort=oldest", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&users))
	require.Len(t, users, 3)
	assert.Equal(t, "oldest", users[0].Username)
}

func TestUserHandler_RefreshAccess(t *testing.T) {
	router := newUserRouter()

	rr := doJSON(t, router, http.MethodPost, "/users", validUserPayload())
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/users/1/access", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var refreshed user.User
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&refreshed))
	assert.NotNil(t, refreshed.LastAccess)

	rr = doJSON(t, router, http.MethodPost, "/users/99/access", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

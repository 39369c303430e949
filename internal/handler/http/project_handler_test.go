package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminHttp "github.com/dealflow-platform/admin-api/internal/handler/http"
	"github.com/dealflow-platform/admin-api/internal/project"
)

func newProjectRouter() chi.Router {
	repo := project.NewMemoryRepository()
	handler := adminHttp.NewProjectHandler(project.NewService(repo))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestProjectHandler_CreatePatchDeleteScenario(t *testing.T) {
	router := newProjectRouter()

	// Создание: дефолты isVisible=true, isCompleted=false, createdAt проставлен.
	rr := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
		"name":     "Plant",
		"dealType": "SALE",
		"industry": "Food",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created project.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.True(t, created.IsVisible)
	assert.False(t, created.IsCompleted)
	assert.False(t, created.CreatedAt.IsZero())

	// PATCH меняет только isCompleted, name не тронут.
	rr = doJSON(t, router, http.MethodPatch, "/projects/1", map[string]interface{}{
		"isCompleted": true,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var patched project.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&patched))
	assert.True(t, patched.IsCompleted)
	assert.Equal(t, "Plant", patched.Name)

	// DELETE возвращает 204, повторный GET — 404.
	rr = doJSON(t, router, http.MethodDelete, "/projects/1", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/projects/1", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/projects/1", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjectHandler_CreateValidation(t *testing.T) {
	router := newProjectRouter()

	rr := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
		"name":     "Plant",
		"dealType": "MERGER",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var response adminHttp.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, "Validation failed", response.Error)

	fields := make(map[string]string)
	for _, d := range response.Details {
		fields[d.Field] = d.Message
	}
	assert.Contains(t, fields, "dealType")
	assert.Contains(t, fields, "industry")
	assert.Equal(t, "is required", fields["industry"])
}

func TestProjectHandler_PatchInvalidEnumRejected(t *testing.T) {
	router := newProjectRouter()

	rr := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
		"name":     "Plant",
		"dealType": "SALE",
		"industry": "Food",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	// Недопустимый enum в PATCH — 400, запись не изменена.
	rr = doJSON(t, router, http.MethodPatch, "/projects/1", map[string]interface{}{
		"dealType": "MERGER",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/projects/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched project.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&fetched))
	assert.Equal(t, "SALE", string(fetched.DealType))
}

func TestProjectHandler_PatchMissingProject(t *testing.T) {
	router := newProjectRouter()

	rr := doJSON(t, router, http.MethodPatch, "/projects/42", map[string]interface{}{
		"isCompleted": true,
	})
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjectHandler_ListFilters(t *testing.T) {
	router := newProjectRouter()

	for _, p := range []map[string]interface{}{
		{"name": "Food Plant", "dealType": "SALE", "industry": "Food"},
		{"name": "Chip Factory", "dealType": "INVESTMENT", "industry": "Electronics"},
	} {
		rr := doJSON(t, router, http.MethodPost, "/projects", p)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doJSON(t, router, http.MethodGet, "/projects?dealType=INVESTMENT", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var projects []project.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Chip Factory", projects[0].Name)

	// Сентинел ALL означает отсутствие фильтра.
	rr = doJSON(t, router, http.MethodGet, "/projects?dealType=ALL", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&projects))
	assert.Len(t, projects, 2)

	// Недопустимое значение фильтра — 400.
	rr = doJSON(t, router, http.MethodGet, "/projects?dealType=MERGER", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/projects?isCompleted=maybe", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/projects?dateFrom=15-06-2025", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProjectHandler_ListSortByName(t *testing.T) {
	router := newProjectRouter()

	for _, name := range []string{"Beta", "Alpha"} {
		rr := doJSON(t, router, http.MethodPost, "/projects", map[string]interface{}{
			"name": name, "dealType": "SALE", "industry": "IT",
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doJSON(t, router, http.MethodGet, "/projects?sortBy=name&order=asc", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var projects []project.Project
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "Beta", projects[1].Name)
}

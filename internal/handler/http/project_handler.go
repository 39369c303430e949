package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/project"
	"github.com/dealflow-platform/admin-api/internal/types"
)

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	DealType    string `json:"dealType" validate:"required,oneof=SALE INVESTMENT"`
	Industry    string `json:"industry" validate:"required"`
	IsVisible   *bool  `json:"isVisible,omitempty"`
	IsCompleted *bool  `json:"isCompleted,omitempty"`

	ContactName1     *string `json:"contactName1,omitempty"`
	ContactPhone1    *string `json:"contactPhone1,omitempty"`
	ContactPosition1 *string `json:"contactPosition1,omitempty"`
	ContactPhone2    *string `json:"contactPhone2,omitempty"`
	INN              *string `json:"inn,omitempty"`
	Location         *string `json:"location,omitempty"`
	Revenue          *string `json:"revenue,omitempty"`
	EBITDA           *string `json:"ebitda,omitempty"`
	Price            *string `json:"price,omitempty"`
	SalePercent      *string `json:"salePercent,omitempty"`
	Website          *string `json:"website,omitempty"`
	HideUntilNDA     *bool   `json:"hideUntilNda,omitempty"`
	Comments         *string `json:"comments,omitempty"`
}

// UpdateProjectRequest — частичное обновление: nil-поля не трогают запись.
// Недопустимое значение dealType отклоняется с 400, а не игнорируется.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	DealType    *string `json:"dealType,omitempty" validate:"omitempty,oneof=SALE INVESTMENT"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,min=1"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`

	ContactName1     *string `json:"contactName1,omitempty"`
	ContactPhone1    *string `json:"contactPhone1,omitempty"`
	ContactPosition1 *string `json:"contactPosition1,omitempty"`
	ContactPhone2    *string `json:"contactPhone2,omitempty"`
	INN              *string `json:"inn,omitempty"`
	Location         *string `json:"location,omitempty"`
	Revenue          *string `json:"revenue,omitempty"`
	EBITDA           *string `json:"ebitda,omitempty"`
	Price            *string `json:"price,omitempty"`
	SalePercent      *string `json:"salePercent,omitempty"`
	Website          *string `json:"website,omitempty"`
	HideUntilNDA     *bool   `json:"hideUntilNda,omitempty"`
	Comments         *string `json:"comments,omitempty"`
}

type ProjectHandler struct {
	service  project.Service
	validate *validator.Validate
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *ProjectHandler) RegisterRoutes(router chi.Router) {
	router.Get("/projects", h.handleListProjects)
	router.Post("/projects", h.handleCreateProject)
	router.Get("/projects/{id}", h.handleGetProject)
	router.Patch("/projects/{id}", h.handleUpdateProject)
	router.Delete("/projects/{id}", h.handleDeleteProject)
}

// handleListProjects отдает проекты с необязательными фильтрами search,
// dealType, industry, isCompleted, phone, dateFrom/dateTo и сортировкой.
func (h *ProjectHandler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	var details []FieldError

	dealType := types.DealType(categoricalParam(r, "dealType"))
	if dealType != "" && !dealType.Valid() {
		details = append(details, FieldError{Field: "dealType", Message: "must be one of: SALE INVESTMENT"})
	}

	var isCompleted *bool
	if v := r.URL.Query().Get("isCompleted"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			details = append(details, FieldError{Field: "isCompleted", Message: "must be true or false"})
		} else {
			isCompleted = &parsed
		}
	}

	dateFrom, dateTo, dateErrs := parseDateRange(r)
	details = append(details, dateErrs...)

	if len(details) > 0 {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	filter := project.Filter{
		Search:      r.URL.Query().Get("search"),
		DealType:    dealType,
		Industry:    categoricalParam(r, "industry"),
		IsCompleted: isCompleted,
		Phone:       r.URL.Query().Get("phone"),
		DateFrom:    dateFrom,
		DateTo:      dateTo,
	}

	projects, err := h.service.List(r.Context(), filter, parseSortParams(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to list projects via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	respondWithJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	foundProject, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Error().Err(err).Msg("failed to get project by id via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to get project")
		return
	}

	respondWithJSON(w, http.StatusOK, foundProject)
}

func (h *ProjectHandler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateProjectRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("failed to decode create project payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	in := project.CreateInput{
		Name:        requestPayload.Name,
		DealType:    types.DealType(requestPayload.DealType),
		Industry:    requestPayload.Industry,
		IsVisible:   requestPayload.IsVisible,
		IsCompleted: requestPayload.IsCompleted,

		ContactName1:     requestPayload.ContactName1,
		ContactPhone1:    requestPayload.ContactPhone1,
		ContactPosition1: requestPayload.ContactPosition1,
		ContactPhone2:    requestPayload.ContactPhone2,
		INN:              requestPayload.INN,
		Location:         requestPayload.Location,
		Revenue:          requestPayload.Revenue,
		EBITDA:           requestPayload.EBITDA,
		Price:            requestPayload.Price,
		SalePercent:      requestPayload.SalePercent,
		Website:          requestPayload.Website,
		HideUntilNDA:     requestPayload.HideUntilNDA,
		Comments:         requestPayload.Comments,
	}

	createdProject, err := h.service.Create(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("failed to create project via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	respondWithJSON(w, http.StatusCreated, createdProject)
}

func (h *ProjectHandler) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var requestPayload UpdateProjectRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("failed to decode update project payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	patch := project.Patch{
		Name:        requestPayload.Name,
		Industry:    requestPayload.Industry,
		IsVisible:   requestPayload.IsVisible,
		IsCompleted: requestPayload.IsCompleted,

		ContactName1:     requestPayload.ContactName1,
		ContactPhone1:    requestPayload.ContactPhone1,
		ContactPosition1: requestPayload.ContactPosition1,
		ContactPhone2:    requestPayload.ContactPhone2,
		INN:              requestPayload.INN,
		Location:         requestPayload.Location,
		Revenue:          requestPayload.Revenue,
		EBITDA:           requestPayload.EBITDA,
		Price:            requestPayload.Price,
		SalePercent:      requestPayload.SalePercent,
		Website:          requestPayload.Website,
		HideUntilNDA:     requestPayload.HideUntilNDA,
		Comments:         requestPayload.Comments,
	}
	if requestPayload.DealType != nil {
		dealType := types.DealType(*requestPayload.DealType)
		patch.DealType = &dealType
	}

	updatedProject, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Error().Err(err).Msg("failed to update project via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	respondWithJSON(w, http.StatusOK, updatedProject)
}

func (h *ProjectHandler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Project not found")
			return
		}
		log.Error().Err(err).Msg("failed to delete project via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/request"
	"github.com/dealflow-platform/admin-api/internal/types"
)

type CreateRequestRequest struct {
	UserType string `json:"userType" validate:"required,oneof=SELLER BUYER"`
	Topic    string `json:"topic" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	// Статус принимается, но игнорируется: новое обращение всегда NEW.
	Status           string  `json:"status,omitempty"`
	OrganizationName *string `json:"organizationName,omitempty"`
	CNum             *string `json:"cnum,omitempty"`
	Login            *string `json:"login,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Comments         *string `json:"comments,omitempty"`
}

// UpdateRequestRequest — частичное обновление: nil-поля не трогают запись.
// Недопустимый статус отклоняется с 400, а не игнорируется молча.
type UpdateRequestRequest struct {
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=NEW IN_PROGRESS COMPLETED REJECTED"`
	Topic            *string `json:"topic,omitempty" validate:"omitempty,min=1"`
	FullName         *string `json:"fullName,omitempty" validate:"omitempty,min=1"`
	OrganizationName *string `json:"organizationName,omitempty"`
	CNum             *string `json:"cnum,omitempty"`
	Login            *string `json:"login,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Comments         *string `json:"comments,omitempty"`
}

type RequestHandler struct {
	service  request.Service
	validate *validator.Validate
}

func NewRequestHandler(service request.Service) *RequestHandler {
	return &RequestHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *RequestHandler) RegisterRoutes(router chi.Router) {
	router.Get("/requests", h.handleListRequests)
	router.Post("/requests", h.handleCreateRequest)
	router.Get("/requests/{id}", h.handleGetRequest)
	router.Patch("/requests/{id}", h.handleUpdateRequest)
}

// handleListRequests отдает обращения с необязательными фильтрами search,
// userType, status, phone, dateFrom/dateTo и сортировкой.
func (h *RequestHandler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	var details []FieldError

	userType := types.UserType(categoricalParam(r, "userType"))
	if userType != "" && !userType.Valid() {
		details = append(details, FieldError{Field: "userType", Message: "must be one of: SELLER BUYER"})
	}

	status := types.RequestStatus(categoricalParam(r, "status"))
	if status != "" && !status.Valid() {
		details = append(details, FieldError{Field: "status", Message: "must be one of: NEW IN_PROGRESS COMPLETED REJECTED"})
	}

	dateFrom, dateTo, dateErrs := parseDateRange(r)
	details = append(details, dateErrs...)

	if len(details) > 0 {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Details: details})
		return
	}

	filter := request.Filter{
		Search:   r.URL.Query().Get("search"),
		UserType: userType,
		Status:   status,
		Phone:    r.URL.Query().Get("phone"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}

	requests, err := h.service.List(r.Context(), filter, parseSortParams(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to list requests via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	foundRequest, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Request not found")
			return
		}
		log.Error().Err(err).Msg("failed to get request by id via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to get request")
		return
	}

	respondWithJSON(w, http.StatusOK, foundRequest)
}

func (h *RequestHandler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateRequestRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("failed to decode create request payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	in := request.CreateInput{
		UserType:         types.UserType(requestPayload.UserType),
		Topic:            requestPayload.Topic,
		FullName:         requestPayload.FullName,
		OrganizationName: requestPayload.OrganizationName,
		CNum:             requestPayload.CNum,
		Login:            requestPayload.Login,
		Phone:            requestPayload.Phone,
		Comments:         requestPayload.Comments,
	}

	createdRequest, err := h.service.Create(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("failed to create request via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}

	respondWithJSON(w, http.StatusCreated, createdRequest)
}

func (h *RequestHandler) handleUpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var requestPayload UpdateRequestRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("failed to decode update request payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	patch := request.Patch{
		Topic:            requestPayload.Topic,
		FullName:         requestPayload.FullName,
		OrganizationName: requestPayload.OrganizationName,
		CNum:             requestPayload.CNum,
		Login:            requestPayload.Login,
		Phone:            requestPayload.Phone,
		Comments:         requestPayload.Comments,
	}
	if requestPayload.Status != nil {
		status := types.RequestStatus(*requestPayload.Status)
		patch.Status = &status
	}

	updatedRequest, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Request not found")
			return
		}
		log.Error().Err(err).Msg("failed to update request via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to update request")
		return
	}

	respondWithJSON(w, http.StatusOK, updatedRequest)
}

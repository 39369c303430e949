package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/dealflow-platform/admin-api/internal/types"
	"github.com/dealflow-platform/admin-api/internal/user"
)

type CreateUserRequest struct {
	UserType         string  `json:"userType" validate:"required,oneof=SELLER BUYER"`
	Username         string  `json:"username" validate:"required"`
	OrganizationName string  `json:"organizationName" validate:"required"`
	FullName         string  `json:"fullName" validate:"required"`
	Phone            *string `json:"phone,omitempty"`
	Comments         *string `json:"comments,omitempty"`
}

type UserHandler struct {
	service  user.Service
	validate *validator.Validate
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *UserHandler) RegisterRoutes(router chi.Router) {
	router.Get("/users", h.handleListUsers)
	router.Post("/users", h.handleCreateUser)
	router.Get("/users/{id}", h.handleGetUser)
	router.Get("/users/username/{username}", h.handleGetUserByUsername)
	router.Post("/users/{id}/access", h.handleRefreshAccess)
}

// handleListUsers отдает пользователей с необязательными фильтрами
// search, userType, organization, phone и сортировкой.
func (h *UserHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	userType := types.UserType(categoricalParam(r, "userType"))
	if userType != "" && !userType.Valid() {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: []FieldError{{Field: "userType", Message: "must be one of: SELLER BUYER"}},
		})
		return
	}

	filter := user.Filter{
		Search:       r.URL.Query().Get("search"),
		UserType:     userType,
		Organization: categoricalParam(r, "organization"),
		Phone:        r.URL.Query().Get("phone"),
	}

	srt := parseSortParams(r)
	// У пользователей нет createdAt, пресеты newest/oldest сортируют
	// по lastAccess.
	if srt.Column == "createdAt" {
		srt.Column = "lastAccess"
	}

	users, err := h.service.List(r.Context(), filter, srt)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	foundUser, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("failed to get user by id via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondWithJSON(w, http.StatusOK, foundUser)
}

func (h *UserHandler) handleGetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		respondWithError(w, http.StatusBadRequest, "Username parameter cannot be empty")
		return
	}

	foundUser, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("failed to get user by username via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondWithJSON(w, http.StatusOK, foundUser)
}

func (h *UserHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateUserRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Warn().Err(err).Msg("failed to decode create user payload")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	in := user.CreateInput{
		UserType:         types.UserType(requestPayload.UserType),
		Username:         requestPayload.Username,
		OrganizationName: requestPayload.OrganizationName,
		FullName:         requestPayload.FullName,
		Phone:            requestPayload.Phone,
		Comments:         requestPayload.Comments,
	}

	createdUser, err := h.service.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, user.ErrUsernameExists) {
			respondWithError(w, http.StatusConflict, "Username already exists")
			return
		}
		log.Error().Err(err).Msg("failed to create user via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to create user")
		return
	}

	respondWithJSON(w, http.StatusCreated, createdUser)
}

// handleRefreshAccess обновляет отметку lastAccess и возвращает запись.
func (h *UserHandler) handleRefreshAccess(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	refreshed, err := h.service.RefreshAccess(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("failed to refresh user access via service")
		respondWithError(w, http.StatusInternalServerError, "Failed to refresh access")
		return
	}

	respondWithJSON(w, http.StatusOK, refreshed)
}

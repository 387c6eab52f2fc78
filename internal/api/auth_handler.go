package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/auth"
	"github.com/victorivanov/famhub/internal/service"
)

// AuthHandler handles registration, login, and profile endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if errs := req.validate(); errs != nil {
		return ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", errs)
	}

	result, err := h.service.Register(c.Request().Context(), service.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return OK(c, http.StatusCreated, result)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if errs := req.validate(); errs != nil {
		return ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", errs)
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(c, err)
	}

	return OK(c, http.StatusOK, result)
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.service.Me(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return OK(c, http.StatusOK, echo.Map{"user": user})
}

// UpdateProfile handles PUT /api/v1/auth/profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if errs := req.validate(); errs != nil {
		return ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", errs)
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), auth.GetUserID(c), service.ProfileUpdate{
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PreferredColor: req.PreferredColor.Value,
		SetColor:       req.PreferredColor.Set,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return OK(c, http.StatusOK, echo.Map{"user": user})
}

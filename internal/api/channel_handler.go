package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/auth"
	"github.com/victorivanov/famhub/internal/service"
)

// ChannelHandler handles channel endpoints.
type ChannelHandler struct {
	service *service.ChannelService
}

// NewChannelHandler creates a ChannelHandler.
func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{service: svc}
}

// List handles GET /api/v1/channels.
func (h *ChannelHandler) List(c echo.Context) error {
	channels, err := h.service.List(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return OK(c, http.StatusOK, channels)
}

// Get handles GET /api/v1/channels/:id.
func (h *ChannelHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_ID", "invalid channel ID")
	}

	ch, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return OK(c, http.StatusOK, ch)
}

// Create handles POST /api/v1/channels.
func (h *ChannelHandler) Create(c echo.Context) error {
	var req createChannelRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if errs := req.validate(); errs != nil {
		return ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", errs)
	}

	ch, err := h.service.Create(c.Request().Context(), service.CreateChannelInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	}, auth.GetUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	return OK(c, http.StatusCreated, ch)
}

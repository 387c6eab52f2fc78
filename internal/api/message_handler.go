package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/auth"
	"github.com/victorivanov/famhub/internal/service"
)

// MessageHandler handles message endpoints.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// List handles GET /api/v1/channels/:id/messages. Reading a public channel
// joins the caller implicitly.
func (h *MessageHandler) List(c echo.Context) error {
	channelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_ID", "invalid channel ID")
	}

	limit := 50
	if l := c.QueryParam("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 || parsed > 100 {
			return Error(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be 1-100")
		}
		limit = parsed
	}

	messages, err := h.service.List(c.Request().Context(), channelID, auth.GetUserID(c), limit)
	if err != nil {
		return mapServiceError(c, err)
	}

	return OK(c, http.StatusOK, messages)
}

// Create handles POST /api/v1/channels/:id/messages. Posting to a public
// channel joins the caller implicitly.
func (h *MessageHandler) Create(c echo.Context) error {
	channelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_ID", "invalid channel ID")
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if errs := req.validate(); errs != nil {
		return ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", errs)
	}

	msg, err := h.service.Create(c.Request().Context(), service.CreateMessageInput{
		Content:     req.Content,
		Attachments: req.Attachments,
	}, channelID, auth.GetUserID(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	return OK(c, http.StatusCreated, msg)
}

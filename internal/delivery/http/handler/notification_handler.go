package handler

import (
	"github.com/gofiber/fiber/v3"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	ucnotification "skillswap/internal/usecase/notification"
)

type NotificationHandler struct {
	uc *ucnotification.Service
}

func NewNotificationHandler(uc *ucnotification.Service) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/unread-count", h.UnreadCount)
	r.Post("/read-all", h.MarkAllRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	items, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromNotifications(items))
}

func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	count, err := h.uc.UnreadCount(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	if err := h.uc.MarkAllRead(c.Context(), userID); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.NoContent(c)
}

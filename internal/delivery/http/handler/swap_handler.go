package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/swap"
	"skillswap/internal/pkg/response"
	ucswap "skillswap/internal/usecase/swap"
)

type SwapHandler struct {
	uc *ucswap.Service
}

type proposeSwapRequest struct {
	ToUserID       int64  `json:"toUserId"`
	OfferedSkill   string `json:"offeredSkill"`
	RequestedSkill string `json:"requestedSkill"`
	Message        string `json:"message"`
}

type updateSwapStatusRequest struct {
	Status string `json:"status"`
}

type postSwapMessageRequest struct {
	Message string `json:"message"`
}

func NewSwapHandler(uc *ucswap.Service) *SwapHandler {
	return &SwapHandler{uc: uc}
}

func (h *SwapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/", h.Propose)
	r.Patch("/:id", h.UpdateStatus)
	r.Get("/:id/messages", h.Messages)
	r.Post("/:id/messages", h.PostMessage)
	r.Get("/:id/history", h.StatusHistory)
}

func (h *SwapHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	swaps, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapSwapError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromSwaps(swaps))
}

func (h *SwapHandler) Propose(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req proposeSwapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.Propose(c.Context(), userID, ucswap.ProposeInput{
		ToUserID:       req.ToUserID,
		OfferedSkill:   req.OfferedSkill,
		RequestedSkill: req.RequestedSkill,
		Message:        req.Message,
	})
	if err != nil {
		return mapSwapError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.FromSwap(created))
}

func (h *SwapHandler) UpdateStatus(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	swapID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req updateSwapStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), userID, swapID, swap.Status(req.Status))
	if err != nil {
		return mapSwapError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromSwap(updated))
}

func (h *SwapHandler) Messages(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	swapID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	msgs, err := h.uc.Messages(c.Context(), userID, swapID)
	if err != nil {
		return mapSwapError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromSwapMessages(msgs))
}

func (h *SwapHandler) PostMessage(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	swapID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req postSwapMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	m, err := h.uc.PostMessage(c.Context(), userID, swapID, req.Message)
	if err != nil {
		return mapSwapError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.FromSwapMessage(m))
}

func (h *SwapHandler) StatusHistory(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	swapID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	events, err := h.uc.StatusHistory(c.Context(), userID, swapID)
	if err != nil {
		return mapSwapError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromSwapStatusEvents(events))
}

func mapSwapError(err error) error {
	switch {
	case errors.Is(err, ucswap.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, ucswap.ErrSelfSwap):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot propose a swap with yourself", err)
	case errors.Is(err, ucswap.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Swap not found", err)
	case errors.Is(err, ucswap.ErrNotParticipant):
		return middleware.NewAppError(fiber.StatusForbidden, "Not a participant of this swap", err)
	case errors.Is(err, ucswap.ErrNotRecipient):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the recipient may respond", err)
	case errors.Is(err, ucswap.ErrSwapClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Swap already accepted or declined", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	ucuser "skillswap/internal/usecase/user"
)

type UserHandler struct {
	uc *ucuser.Service
}

type updateProfileRequest struct {
	Name   *string  `json:"name"`
	Skills []string `json:"skills"`
	Bio    *string  `json:"bio"`
	Avatar *string  `json:"avatar"`
}

func NewUserHandler(uc *ucuser.Service) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterPublicRoutes mounts the unauthenticated reads.
func (h *UserHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

// RegisterProtectedRoutes mounts the routes behind the auth middleware.
func (h *UserHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Put("/me", h.UpdateMe)
	r.Patch("/:id/availability", h.ToggleAvailability)
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	u, err := h.uc.UpdateProfile(c.Context(), actorID, ucuser.UpdateProfileInput{
		Name:   req.Name,
		Skills: req.Skills,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucuser.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
		case errors.Is(err, ucuser.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}
	return response.JSON(c, fiber.StatusOK, dto.FromUser(u))
}

func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromUsers(users))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	u, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, ucuser.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromUser(u))
}

func (h *UserHandler) ToggleAvailability(c fiber.Ctx) error {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	targetID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	available, err := h.uc.ToggleAvailability(c.Context(), actorID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, ucuser.ErrForbidden):
			return middleware.NewAppError(fiber.StatusForbidden, "Cannot change another user's availability", err)
		case errors.Is(err, ucuser.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"available": available})
}

func idParam(c fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", err)
	}
	return id, nil
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	ucauth "skillswap/internal/usecase/auth"
)

type AuthHandler struct {
	uc *ucauth.Service

	// onRegister runs after a successful registration, e.g. cache
	// invalidation so the new user appears in listings.
	onRegister func(fiber.Ctx)
}

type registerRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Skills   []string `json:"skills"`
	Bio      string   `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  dto.User `json:"user"`
	Token string   `json:"token"`
}

func NewAuthHandler(uc *ucauth.Service, onRegister func(fiber.Ctx)) *AuthHandler {
	return &AuthHandler{uc: uc, onRegister: onRegister}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Skills:   req.Skills,
		Bio:      req.Bio,
	})
	if err != nil {
		return mapAuthError(err)
	}

	if h.onRegister != nil {
		h.onRegister(c)
	}

	return response.JSON(c, fiber.StatusCreated, authResponse{User: dto.FromUser(usr), Token: token})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusOK, authResponse{User: dto.FromUser(usr), Token: token})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

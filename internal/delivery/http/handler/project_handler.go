package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/project"
	"skillswap/internal/pkg/response"
	ucproject "skillswap/internal/usecase/project"
)

type ProjectHandler struct {
	uc *ucproject.Service
}

type createProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
}

type applyRequest struct {
	Message string `json:"message"`
}

type reviewApplicationRequest struct {
	Status string `json:"status"`
}

func NewProjectHandler(uc *ucproject.Service) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *ProjectHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Post("/:id/join", h.Join)
	r.Get("/:id/applications", h.ListApplications)
	r.Post("/:id/applications", h.Apply)
}

// RegisterApplicationRoutes mounts the review endpoint, which is keyed
// by application id rather than project id.
func (h *ProjectHandler) RegisterApplicationRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Patch("/:id", h.ReviewApplication)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	projects, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromProjects(projects))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapProjectError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromProject(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req createProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	p, err := h.uc.Create(c.Context(), userID, ucproject.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return mapProjectError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.FromProject(p))
}

func (h *ProjectHandler) Join(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Join(c.Context(), userID, projectID); err != nil {
		return mapProjectError(err)
	}
	return response.NoContent(c)
}

func (h *ProjectHandler) Apply(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	a, err := h.uc.Apply(c.Context(), userID, projectID, req.Message)
	if err != nil {
		return mapProjectError(err)
	}
	return response.JSON(c, fiber.StatusCreated, dto.FromApplication(a))
}

func (h *ProjectHandler) ListApplications(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	projectID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	apps, err := h.uc.ListApplications(c.Context(), userID, projectID)
	if err != nil {
		return mapProjectError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromApplications(apps))
}

func (h *ProjectHandler) ReviewApplication(c fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	applicationID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req reviewApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	a, err := h.uc.ReviewApplication(c.Context(), userID, applicationID, project.ApplicationStatus(req.Status))
	if err != nil {
		return mapProjectError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromApplication(a))
}

func mapProjectError(err error) error {
	switch {
	case errors.Is(err, ucproject.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, ucproject.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", err)
	case errors.Is(err, ucproject.ErrAppNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	case errors.Is(err, ucproject.ErrNotCreator):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the project creator may do this", err)
	case errors.Is(err, ucproject.ErrAlreadyReviewed):
		return middleware.NewAppError(fiber.StatusConflict, "Application already reviewed", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

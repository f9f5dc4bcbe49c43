package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/M-N-Hossain/bookverse-backend/internal/services"
)

// GenreHandler handles HTTP requests for genres.
type GenreHandler struct {
	service  *services.GenreService
	validate *validator.Validate
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(service *services.GenreService) *GenreHandler {
	return &GenreHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the genre routes with the Fiber app.
func (h *GenreHandler) RegisterRoutes(router fiber.Router) {
	genreRoutes := router.Group("/genres")
	genreRoutes.Get("/", h.HandleList)
	genreRoutes.Get("/:id", h.HandleGetByID)
	genreRoutes.Post("/", h.HandleCreate)
	genreRoutes.Put("/:id", h.HandleUpdate)
	genreRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns all genres with their book counts.
func (h *GenreHandler) HandleList(c *fiber.Ctx) error {
	genres, err := h.service.List()
	if err != nil {
		return err
	}
	return c.JSON(genres)
}

// HandleGetByID returns one genre with its book count.
func (h *GenreHandler) HandleGetByID(c *fiber.Ctx) error {
	genre, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(genre)
}

// GenreRequest represents the request body for creating or renaming a genre.
type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// HandleCreate creates a new genre.
func (h *GenreHandler) HandleCreate(c *fiber.Ctx) error {
	var req GenreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	genre, err := h.service.Create(req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(genre)
}

// HandleUpdate renames an existing genre.
func (h *GenreHandler) HandleUpdate(c *fiber.Ctx) error {
	var req GenreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	genre, err := h.service.Update(c.Params("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(genre)
}

// HandleDelete removes a genre with no remaining book references.
func (h *GenreHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
	"github.com/M-N-Hossain/bookverse-backend/internal/repositories"
	"github.com/M-N-Hossain/bookverse-backend/internal/services"
)

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	service  *services.BookService
	validate *validator.Validate
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service *services.BookService) *BookHandler {
	return &BookHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the book routes with the Fiber app. The search
// route is registered before the id route so "search" is not captured as an
// id parameter.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleList)
	bookRoutes.Get("/search", h.HandleSearch)
	bookRoutes.Get("/:id", h.HandleGetByID)
	bookRoutes.Post("/", h.HandleCreate)
	bookRoutes.Put("/:id", h.HandleUpdate)
	bookRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns all books with their genre embedded.
func (h *BookHandler) HandleList(c *fiber.Ctx) error {
	books, err := h.service.List()
	if err != nil {
		return err
	}
	return c.JSON(books)
}

// HandleGetByID returns one book with its genre embedded.
func (h *BookHandler) HandleGetByID(c *fiber.Ctx) error {
	book, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(book)
}

// CreateBookRequest represents the request body for creating a book.
type CreateBookRequest struct {
	Title      string  `json:"title" validate:"required"`
	Author     string  `json:"author" validate:"required"`
	GenreID    string  `json:"genreId" validate:"required"`
	Status     string  `json:"status" validate:"omitempty,oneof=to_read in_progress read"`
	CoverImage *string `json:"coverImage"`
}

// HandleCreate creates a new book.
func (h *BookHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateBookRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	book, err := h.service.Create(req.Title, req.Author, req.GenreID, models.BookStatus(req.Status), req.CoverImage)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

// UpdateBookRequest represents the partial request body for updating a book.
// CoverImage is raw so an explicit null can be told apart from an absent
// key: nil means not supplied, "null" means clear.
type UpdateBookRequest struct {
	Title      *string         `json:"title"`
	Author     *string         `json:"author"`
	GenreID    *string         `json:"genreId"`
	Status     *string         `json:"status"`
	CoverImage json.RawMessage `json:"coverImage"`
}

// HandleUpdate applies a partial patch to an existing book.
func (h *BookHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateBookRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	patch := services.BookPatch{
		Title:   req.Title,
		Author:  req.Author,
		GenreID: req.GenreID,
		Status:  req.Status,
	}
	if req.CoverImage != nil {
		patch.CoverImageSet = true
		var cover *string
		if err := json.Unmarshal(req.CoverImage, &cover); err != nil {
			return apperrors.Wrap(apperrors.KindValidation, "coverImage must be a string or null", err)
		}
		// An empty string clears the field the same way null does.
		if cover != nil && *cover == "" {
			cover = nil
		}
		patch.CoverImage = cover
	}

	book, err := h.service.Update(c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(book)
}

// HandleDelete removes a book.
func (h *BookHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSearch returns books matching every supplied query parameter.
func (h *BookHandler) HandleSearch(c *fiber.Ctx) error {
	filter := repositories.BookFilter{
		Query:   c.Query("query"),
		Status:  c.Query("status"),
		GenreID: c.Query("genreId"),
	}
	books, err := h.service.Search(filter)
	if err != nil {
		return err
	}
	return c.JSON(books)
}

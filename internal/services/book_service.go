package services

import (
	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
	"github.com/M-N-Hossain/bookverse-backend/internal/repositories"
)

// BookPatch describes a partial book update. Nil pointer fields were not
// supplied and keep their stored values. CoverImage is tri-state: it is only
// applied when CoverImageSet is true, and a nil value then clears the field.
type BookPatch struct {
	Title         *string
	Author        *string
	GenreID       *string
	Status        *string
	CoverImage    *string
	CoverImageSet bool
}

// BookService handles business logic related to books.
type BookService struct {
	bookRepo  repositories.BookRepository
	genreRepo repositories.GenreRepository
	events    EventPublisher
}

// NewBookService creates a new BookService. events may be nil, in which
// case no change events are published.
func NewBookService(bookRepo repositories.BookRepository, genreRepo repositories.GenreRepository, events EventPublisher) *BookService {
	return &BookService{
		bookRepo:  bookRepo,
		genreRepo: genreRepo,
		events:    events,
	}
}

// List returns all books with their genre embedded.
func (s *BookService) List() ([]models.BookWithGenre, error) {
	return s.bookRepo.GetAll()
}

// GetByID returns one book with its genre embedded.
func (s *BookService) GetByID(id string) (*models.BookWithGenre, error) {
	return s.bookRepo.GetByID(id)
}

// checkGenreExists verifies the genre reference before an insert or update,
// so a bad genreId surfaces as a validation error instead of a storage-level
// foreign key failure.
func (s *BookService) checkGenreExists(genreID string) error {
	exists, err := s.genreRepo.Exists(genreID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.New(apperrors.KindValidation, "genre does not exist")
	}
	return nil
}

// Create inserts a new book. Status defaults to to_read when not supplied.
func (s *BookService) Create(title, author, genreID string, status models.BookStatus, coverImage *string) (*models.BookWithGenre, error) {
	if title == "" || author == "" || genreID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "title, author, and genreId are required")
	}
	if status == "" {
		status = models.StatusToRead
	}
	if !status.Valid() {
		return nil, apperrors.New(apperrors.KindValidation, "status must be one of: to_read, in_progress, read")
	}
	if err := s.checkGenreExists(genreID); err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:      title,
		Author:     author,
		GenreID:    genreID,
		Status:     status,
		CoverImage: coverImage,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	publishEvent(s.events, "book.created", book)

	return s.bookRepo.GetByID(book.ID)
}

// Update applies a partial patch to an existing book. Fields absent from
// the patch keep their stored values; an explicitly cleared cover image is
// set to null.
func (s *BookService) Update(id string, patch BookPatch) (*models.BookWithGenre, error) {
	book, err := s.bookRepo.GetRaw(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperrors.New(apperrors.KindValidation, "title must not be empty")
		}
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		if *patch.Author == "" {
			return nil, apperrors.New(apperrors.KindValidation, "author must not be empty")
		}
		book.Author = *patch.Author
	}
	if patch.GenreID != nil {
		if err := s.checkGenreExists(*patch.GenreID); err != nil {
			return nil, err
		}
		book.GenreID = *patch.GenreID
	}
	if patch.Status != nil {
		status := models.BookStatus(*patch.Status)
		if !status.Valid() {
			return nil, apperrors.New(apperrors.KindValidation, "status must be one of: to_read, in_progress, read")
		}
		book.Status = status
	}
	if patch.CoverImageSet {
		book.CoverImage = patch.CoverImage
	}

	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}
	publishEvent(s.events, "book.updated", book)

	return s.bookRepo.GetByID(id)
}

// Delete removes a book by ID. Books have no dependents so the delete is
// unconditional.
func (s *BookService) Delete(id string) error {
	if err := s.bookRepo.Delete(id); err != nil {
		return err
	}
	publishEvent(s.events, "book.deleted", map[string]string{"id": id})
	return nil
}

// Search returns books matching every supplied filter condition.
func (s *BookService) Search(filter repositories.BookFilter) ([]models.BookWithGenre, error) {
	if filter.Status != "" && !models.BookStatus(filter.Status).Valid() {
		return nil, apperrors.New(apperrors.KindValidation, "status must be one of: to_read, in_progress, read")
	}
	return s.bookRepo.Search(filter)
}

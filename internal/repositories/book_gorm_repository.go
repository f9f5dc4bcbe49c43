package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{db: db}
}

func shapeBooks(books []models.Book) []models.BookWithGenre {
	out := make([]models.BookWithGenre, 0, len(books))
	for i := range books {
		out = append(out, books[i].WithGenre())
	}
	return out
}

// GetAll retrieves all books with their genre embedded.
func (r *GORMBookRepository) GetAll() ([]models.BookWithGenre, error) {
	var books []models.Book
	if err := r.db.Preload("Genre").Find(&books).Error; err != nil {
		return nil, apperrors.Internal("failed to get books", err)
	}
	return shapeBooks(books), nil
}

// GetByID retrieves a single book with its genre embedded.
func (r *GORMBookRepository) GetByID(id string) (*models.BookWithGenre, error) {
	var book models.Book
	if err := r.db.Preload("Genre").First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "book not found")
		}
		return nil, apperrors.Internal("failed to get book", err)
	}
	shaped := book.WithGenre()
	return &shaped, nil
}

// GetRaw retrieves the stored book row without shaping.
func (r *GORMBookRepository) GetRaw(id string) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "book not found")
		}
		return nil, apperrors.Internal("failed to get book", err)
	}
	return &book, nil
}

// Create inserts a new book, generating an ID when none is set. A foreign
// key violation on genre_id maps to a validation error.
func (r *GORMBookRepository) Create(book *models.Book) error {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	if err := r.db.Create(book).Error; err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.KindValidation, "genre does not exist", err)
		}
		return apperrors.Internal("failed to create book", err)
	}
	return nil
}

// Update saves the full book row. Save writes every column, which is what
// lets an explicit nil CoverImage clear the stored value.
func (r *GORMBookRepository) Update(book *models.Book) error {
	res := r.db.Omit("Genre").Save(book)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return apperrors.Wrap(apperrors.KindValidation, "genre does not exist", res.Error)
		}
		return apperrors.Internal("failed to update book", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "book not found")
	}
	return nil
}

// Delete removes a book by ID.
func (r *GORMBookRepository) Delete(id string) error {
	res := r.db.Delete(&models.Book{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Internal("failed to delete book", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "book not found")
	}
	return nil
}

// Search returns books matching every supplied filter condition.
func (r *GORMBookRepository) Search(filter BookFilter) ([]models.BookWithGenre, error) {
	q := r.db.Preload("Genre")
	if filter.Query != "" {
		q = q.Where("title LIKE ?", "%"+filter.Query+"%")
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.GenreID != "" {
		q = q.Where("genre_id = ?", filter.GenreID)
	}

	var books []models.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, apperrors.Internal("failed to search books", err)
	}
	return shapeBooks(books), nil
}

package repositories

import "github.com/M-N-Hossain/bookverse-backend/internal/models"

// BookFilter holds the optional search conditions for books. Empty fields
// are not applied; all supplied conditions are ANDed together.
type BookFilter struct {
	Query   string // substring match on title
	Status  string // exact status match
	GenreID string // exact genre match
}

// BookRepository defines the interface for book data access.
type BookRepository interface {
	GetAll() ([]models.BookWithGenre, error)
	GetByID(id string) (*models.BookWithGenre, error)
	// GetRaw returns the stored row without the genre projection, for
	// merging partial updates.
	GetRaw(id string) (*models.Book, error)
	Create(book *models.Book) error
	Update(book *models.Book) error
	Delete(id string) error
	Search(filter BookFilter) ([]models.BookWithGenre, error)
}

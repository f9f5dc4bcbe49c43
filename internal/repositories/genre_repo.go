package repositories

import "github.com/M-N-Hossain/bookverse-backend/internal/models"

// GenreRepository defines the interface for genre data access.
type GenreRepository interface {
	// GetAll returns every genre joined with its current book count.
	GetAll() ([]models.GenreWithCount, error)
	GetByID(id string) (*models.GenreWithCount, error)
	GetByName(name string) (*models.Genre, error)
	Exists(id string) (bool, error)
	Create(genre *models.Genre) error
	Update(genre *models.Genre) error
	// Delete removes a genre. It fails with an integrity error while any
	// book still references the genre.
	Delete(id string) error
}

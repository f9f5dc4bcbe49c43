package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
)

// GORMGenreRepository is a GORM implementation of GenreRepository.
type GORMGenreRepository struct {
	db *gorm.DB
}

// NewGORMGenreRepository creates a new instance of GORMGenreRepository.
func NewGORMGenreRepository(db *gorm.DB) *GORMGenreRepository {
	return &GORMGenreRepository{db: db}
}

// GetAll returns every genre with its book count. A left join keeps genres
// with zero books in the result, counted as 0.
func (r *GORMGenreRepository) GetAll() ([]models.GenreWithCount, error) {
	genres := make([]models.GenreWithCount, 0)
	err := r.db.Model(&models.Genre{}).
		Select("genres.id, genres.name, COUNT(books.id) AS book_count").
		Joins("LEFT JOIN books ON books.genre_id = genres.id").
		Group("genres.id, genres.name").
		Scan(&genres).Error
	if err != nil {
		return nil, apperrors.Internal("failed to get genres", err)
	}
	return genres, nil
}

// GetByID returns one genre with its book count.
func (r *GORMGenreRepository) GetByID(id string) (*models.GenreWithCount, error) {
	var genre models.GenreWithCount
	res := r.db.Model(&models.Genre{}).
		Select("genres.id, genres.name, COUNT(books.id) AS book_count").
		Joins("LEFT JOIN books ON books.genre_id = genres.id").
		Where("genres.id = ?", id).
		Group("genres.id, genres.name").
		Scan(&genre)
	if res.Error != nil {
		return nil, apperrors.Internal("failed to get genre", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "genre not found")
	}
	return &genre, nil
}

// GetByName retrieves a genre by its exact name.
func (r *GORMGenreRepository) GetByName(name string) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.First(&genre, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "genre not found")
		}
		return nil, apperrors.Internal("failed to get genre by name", err)
	}
	return &genre, nil
}

// Exists reports whether a genre with the given ID exists.
func (r *GORMGenreRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Genre{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Internal("failed to check genre existence", err)
	}
	return count > 0, nil
}

// Create inserts a new genre, generating an ID when none is set. A unique
// index violation on the name maps to a conflict.
func (r *GORMGenreRepository) Create(genre *models.Genre) error {
	if genre.ID == "" {
		genre.ID = uuid.New().String()
	}
	if err := r.db.Create(genre).Error; err != nil {
		if isDuplicateKey(err) {
			return apperrors.Wrap(apperrors.KindConflict, "genre with this name already exists", err)
		}
		return apperrors.Internal("failed to create genre", err)
	}
	return nil
}

// Update saves a genre's new name.
func (r *GORMGenreRepository) Update(genre *models.Genre) error {
	res := r.db.Model(&models.Genre{}).Where("id = ?", genre.ID).Update("name", genre.Name)
	if res.Error != nil {
		if isDuplicateKey(res.Error) {
			return apperrors.Wrap(apperrors.KindConflict, "genre with this name already exists", res.Error)
		}
		return apperrors.Internal("failed to update genre", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "genre not found")
	}
	return nil
}

// Delete removes a genre. The existence check, reference count, and delete
// run in one transaction so a book created concurrently cannot slip past the
// integrity check.
func (r *GORMGenreRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var genre models.Genre
		if err := tx.First(&genre, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.KindNotFound, "genre not found")
			}
			return apperrors.Internal("failed to get genre", err)
		}

		var bookCount int64
		if err := tx.Model(&models.Book{}).Where("genre_id = ?", id).Count(&bookCount).Error; err != nil {
			return apperrors.Internal("failed to count books for genre", err)
		}
		if bookCount > 0 {
			return apperrors.New(apperrors.KindIntegrity,
				"cannot delete genre with associated books, update or delete the books first")
		}

		if err := tx.Delete(&models.Genre{}, "id = ?", id).Error; err != nil {
			return apperrors.Internal("failed to delete genre", err)
		}
		return nil
	})
}

package services

import (
	"strings"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
	"github.com/M-N-Hossain/bookverse-backend/internal/repositories"
)

// GenreService handles business logic related to genres.
type GenreService struct {
	repo   repositories.GenreRepository
	events EventPublisher
}

// NewGenreService creates a new GenreService. events may be nil, in which
// case no change events are published.
func NewGenreService(repo repositories.GenreRepository, events EventPublisher) *GenreService {
	return &GenreService{repo: repo, events: events}
}

// List returns every genre with its book count.
func (s *GenreService) List() ([]models.GenreWithCount, error) {
	return s.repo.GetAll()
}

// GetByID returns one genre with its book count.
func (s *GenreService) GetByID(id string) (*models.GenreWithCount, error) {
	return s.repo.GetByID(id)
}

// Create inserts a new genre. The name lookup is a pre-check only; the
// unique index is what guarantees at most one of two concurrent creations
// with the same name succeeds.
func (s *GenreService) Create(name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.KindValidation, "name is required")
	}

	if existing, err := s.repo.GetByName(name); err == nil && existing != nil {
		return nil, apperrors.New(apperrors.KindConflict, "genre with this name already exists")
	} else if err != nil && apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	genre := &models.Genre{Name: name}
	if err := s.repo.Create(genre); err != nil {
		return nil, err
	}
	publishEvent(s.events, "genre.created", genre)
	return genre, nil
}

// Update renames a genre. The new name must not belong to another genre.
func (s *GenreService) Update(id, name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.KindValidation, "name is required")
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByName(name); err == nil && existing != nil && existing.ID != id {
		return nil, apperrors.New(apperrors.KindConflict, "genre with this name already exists")
	} else if err != nil && apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	genre := &models.Genre{ID: id, Name: name}
	if err := s.repo.Update(genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Delete removes a genre. The repository blocks the delete while any book
// still references it.
func (s *GenreService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishEvent(s.events, "genre.deleted", map[string]string{"id": id})
	return nil
}

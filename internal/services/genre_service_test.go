package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
	"github.com/M-N-Hossain/bookverse-backend/internal/services"
)

// MockGenreRepository is a mock implementation of repositories.GenreRepository
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) GetAll() ([]models.GenreWithCount, error) {
	args := m.Called()
	return args.Get(0).([]models.GenreWithCount), args.Error(1)
}

func (m *MockGenreRepository) GetByID(id string) (*models.GenreWithCount, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenreWithCount), args.Error(1)
}

func (m *MockGenreRepository) GetByName(name string) (*models.Genre, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockGenreRepository) Create(genre *models.Genre) error {
	args := m.Called(genre)
	return args.Error(0)
}

func (m *MockGenreRepository) Update(genre *models.Genre) error {
	args := m.Called(genre)
	return args.Error(0)
}

func (m *MockGenreRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var errGenreNotFound = apperrors.New(apperrors.KindNotFound, "genre not found")

func TestGenreService_Create(t *testing.T) {
	mockRepo := new(MockGenreRepository)
	service := services.NewGenreService(mockRepo, nil)

	// Empty and whitespace-only names are rejected
	_, err := service.Create("")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	_, err = service.Create("   ")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	// Successful creation
	mockRepo.On("GetByName", "Fantasy").Return(nil, errGenreNotFound).Once()
	mockRepo.On("Create", mock.MatchedBy(func(g *models.Genre) bool {
		return g.Name == "Fantasy"
	})).Return(nil).Once()

	genre, err := service.Create("Fantasy")
	assert.NoError(t, err)
	assert.Equal(t, "Fantasy", genre.Name)
	mockRepo.AssertExpectations(t)
}

func TestGenreService_CreateDuplicateName(t *testing.T) {
	mockRepo := new(MockGenreRepository)
	service := services.NewGenreService(mockRepo, nil)

	mockRepo.On("GetByName", "Fantasy").Return(&models.Genre{ID: "g1", Name: "Fantasy"}, nil).Once()

	_, err := service.Create("Fantasy")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestGenreService_Update(t *testing.T) {
	mockRepo := new(MockGenreRepository)
	service := services.NewGenreService(mockRepo, nil)

	// Renaming to a name owned by another genre conflicts
	mockRepo.On("GetByID", "g1").Return(&models.GenreWithCount{ID: "g1", Name: "Fantasy"}, nil).Once()
	mockRepo.On("GetByName", "Mystery").Return(&models.Genre{ID: "g2", Name: "Mystery"}, nil).Once()

	_, err := service.Update("g1", "Mystery")
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// Renaming a genre to its own current name is a no-op, not a conflict
	mockRepo.On("GetByID", "g1").Return(&models.GenreWithCount{ID: "g1", Name: "Fantasy"}, nil).Once()
	mockRepo.On("GetByName", "Fantasy").Return(&models.Genre{ID: "g1", Name: "Fantasy"}, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(g *models.Genre) bool {
		return g.ID == "g1" && g.Name == "Fantasy"
	})).Return(nil).Once()

	genre, err := service.Update("g1", "Fantasy")
	assert.NoError(t, err)
	assert.Equal(t, "Fantasy", genre.Name)

	// Unknown genre
	mockRepo.On("GetByID", "g99").Return(nil, errGenreNotFound).Once()
	_, err = service.Update("g99", "Horror")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestGenreService_DeleteBlockedByBooks(t *testing.T) {
	mockRepo := new(MockGenreRepository)
	service := services.NewGenreService(mockRepo, nil)

	blocked := apperrors.New(apperrors.KindIntegrity,
		"cannot delete genre with associated books, update or delete the books first")
	mockRepo.On("Delete", "g1").Return(blocked).Once()

	err := service.Delete("g1")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindIntegrity, apperrors.KindOf(err))

	mockRepo.On("Delete", "g1").Return(nil).Once()
	assert.NoError(t, service.Delete("g1"))
	mockRepo.AssertExpectations(t)
}

package repositories

import "github.com/M-N-Hossain/bookverse-backend/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// FindByUsernameOrEmail returns the first user matching either field.
	// Used as the registration pre-check; the unique indexes remain the
	// authoritative guard against races.
	FindByUsernameOrEmail(username, email string) (*models.User, error)
}

package services

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
	"github.com/M-N-Hossain/bookverse-backend/internal/models"
	"github.com/M-N-Hossain/bookverse-backend/internal/repositories"
)

// AuthService handles registration, login, and bearer token verification.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. Tokens are valid for one hour.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Hour,
	}
}

// Register creates a new user with a bcrypt-hashed password. The lookup on
// username or email is a pre-check only; the unique indexes catch the race
// where two identical registrations pass it concurrently.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperrors.New(apperrors.KindValidation, "username, email, and password are required")
	}

	if existing, err := s.userRepo.FindByUsernameOrEmail(username, email); err == nil && existing != nil {
		return nil, apperrors.New(apperrors.KindConflict, "user with this username or email already exists")
	} else if err != nil && apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token carrying the user ID.
// Unknown email and wrong password produce the same error so the response
// does not reveal which one failed.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.New(apperrors.KindValidation, "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return "", apperrors.New(apperrors.KindAuth, "invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.New(apperrors.KindAuth, "invalid credentials")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.Internal("failed to sign token", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token, returning the user ID it
// carries. Expired and otherwise invalid tokens yield distinguishable
// messages, both of auth kind.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Newf(apperrors.KindAuth, "unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", apperrors.Wrap(apperrors.KindAuth, "token expired", err)
		}
		return "", apperrors.Wrap(apperrors.KindAuth, "invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", apperrors.New(apperrors.KindAuth, "invalid token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", apperrors.New(apperrors.KindAuth, "invalid token payload")
	}
	return userID, nil
}

package services

import (
	"context"
	"errors"

	"github.com/staffhub-dev/staffhub/internal/logger"
	"github.com/staffhub-dev/staffhub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on login failure. It deliberately does not
// distinguish a missing account from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user account. The password is hashed before it
// reaches the store; the duplicate pre-check is advisory only, the unique
// constraint at the store boundary is what settles a race.
func (svc *AuthService) Register(ctx context.Context, in models.UserCreate) (*models.UserDB, error) {
	if err := validateUserCreate(&in); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", in.Email, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}
	in.Password = string(hashed)

	user, err := svc.writer.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", in.Email, "error", err)
		return nil, mapUniqueViolation(err)
	}

	return user, nil
}

// Login authenticates a user by email and password and returns a JWT token
// together with the user record.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return "", nil, err
	}

	return token, user, nil
}

package services

import (
	"context"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser checks the password of the user identified by username or email.
	// Unknown users, inactive users and wrong passwords all yield apperrors.ErrUnauthorized.
	AuthenticateUser(ctx context.Context, login, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
}

// TokenSvc issues access tokens.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (*dto.LoginResponse, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/utils"
	"github.com/google/uuid"
)

const (
	welcomeTitle   = "Welcome to Portfel"
	welcomeMessage = "Start by recording today's income and expenses, then set a goal for this month."
)

type userService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	notifications portssvc.NotificationSvcFacade
	now           func() time.Time
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithWelcomeNotifications makes Register leave a welcome notification for the new user.
func WithWelcomeNotifications(notifications portssvc.NotificationSvcFacade) UserServiceOption {
	return func(s *userService) {
		s.notifications = notifications
	}
}

// NewUserService creates a new user service with the provided options
func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{
		userRepo: userRepo,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a new active user. Email and username must be unused.
func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	if len(req.Password) < utils.MinPasswordLength {
		return nil, apperrors.Validationf("password must be at least %d characters", utils.MinPasswordLength)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		FullName:     req.FullName,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Registration with taken email or username", slog.String("username", user.Username))
			return nil, fmt.Errorf("email or username already registered: %w", err)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.notifications != nil {
		if _, err := s.notifications.CreateNotification(ctx, userID, welcomeTitle, welcomeMessage, domain.NotificationInfo); err != nil {
			s.LogError(ctx, err, "Failed to create welcome notification", slog.String("user_id", userID))
		}
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", userID))
	return &user, nil
}

// AuthenticateUser resolves login as an email when it contains "@" and as a username otherwise.
func (s *userService) AuthenticateUser(ctx context.Context, login, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = s.userRepo.FindUserByEmail(ctx, strings.ToLower(login))
	} else {
		user, err = s.userRepo.FindUserByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login for unknown user")
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	now := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record last login", slog.String("user_id", user.UserID))
	} else {
		user.LastLoginAt = &now
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

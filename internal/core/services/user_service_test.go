package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/core/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/platform/config"
	"github.com/SscSPs/portfel_tracker/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo         *MockUserRepository
	mockNotificationRepo *MockNotificationRepository
	service              portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotificationRepo = new(MockNotificationRepository)
	notifications := services.NewNotificationService(suite.mockNotificationRepo)
	suite.service = services.NewUserService(suite.mockUserRepo, services.WithWelcomeNotifications(notifications))
}

func (suite *UserServiceTestSuite) storedUser(password string, active bool) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ania@example.com",
		Username:     "ania",
		PasswordHash: hash,
		IsActive:     active,
	}
}

// --- Register Tests ---
func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Email:    "  Ania@Example.com ",
		Username: "ania",
		Password: "password123",
		FullName: "Ania Nowak",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "ania@example.com" &&
			user.Username == "ania" &&
			user.IsActive &&
			user.PasswordHash != "" && user.PasswordHash != req.Password
	})).Return(nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Title != "" && !n.IsRead && n.NotificationType == domain.NotificationInfo
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_WelcomeNotificationFailureIsIgnored() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Email: "b@example.com", Username: "bartek", Password: "password123"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.Anything).Return(assert.AnError).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(user)
}

func (suite *UserServiceTestSuite) TestRegister_Duplicate() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Email: "taken@example.com", Username: "taken", Password: "password123"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_ShortPassword() {
	user, err := suite.service.Register(context.Background(), dto.RegisterUserRequest{
		Email: "c@example.com", Username: "cezary", Password: "short",
	})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_ByUsername() {
	ctx := context.Background()
	stored := suite.storedUser("password123", true)

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ania").Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", ctx, stored.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ania", "password123")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.NotNil(user.LastLoginAt)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_ByEmailIsCaseInsensitive() {
	ctx := context.Background()
	stored := suite.storedUser("password123", true)

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ania@example.com").Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", ctx, stored.UserID, mock.Anything).Return(assert.AnError).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ANIA@example.com", "password123")

	suite.Require().NoError(err)
	suite.Nil(user.LastLoginAt)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Rejections() {
	ctx := context.Background()

	suite.Run("unknown user", func() {
		suite.SetupTest()
		suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
		_, err := suite.service.AuthenticateUser(ctx, "ghost", "password123")
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
	})

	suite.Run("wrong password", func() {
		suite.SetupTest()
		suite.mockUserRepo.On("FindUserByUsername", ctx, "ania").Return(suite.storedUser("password123", true), nil).Once()
		_, err := suite.service.AuthenticateUser(ctx, "ania", "password124")
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
		suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("inactive user", func() {
		suite.SetupTest()
		suite.mockUserRepo.On("FindUserByUsername", ctx, "ania").Return(suite.storedUser("password123", false), nil).Once()
		_, err := suite.service.AuthenticateUser(ctx, "ania", "password123")
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
	})

	suite.Run("repository failure", func() {
		suite.SetupTest()
		suite.mockUserRepo.On("FindUserByUsername", ctx, "ania").Return(nil, assert.AnError).Once()
		_, err := suite.service.AuthenticateUser(ctx, "ania", "password123")
		suite.ErrorIs(err, assert.AnError)
		suite.NotErrorIs(err, apperrors.ErrUnauthorized)
	})
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedUser := &domain.User{UserID: userID, Username: "found"}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "token-service-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "portfel-test",
	}
	svc := services.NewTokenService(cfg)
	user := &domain.User{UserID: uuid.NewString(), Username: "ania", Email: "ania@example.com"}

	resp, err := svc.GenerateAccessToken(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, user.UserID, resp.User.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(resp.Token, cfg.JWTSecret)
	assert.NoError(t, err)
	assert.Equal(t, user.UserID, claims.Subject)
	assert.Equal(t, cfg.JWTIssuer, claims.Issuer)
}

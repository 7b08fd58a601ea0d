package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/core/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	service              portssvc.NotificationSvcFacade
	userID               string
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.service = services.NewNotificationService(suite.mockNotificationRepo)
	suite.userID = "user-notifications"
}

func (suite *NotificationServiceTestSuite) TestCreateNotification_DefaultsToInfo() {
	ctx := context.Background()
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == suite.userID && n.NotificationType == domain.NotificationInfo && !n.IsRead
	})).Return(nil).Once()

	n, err := suite.service.CreateNotification(ctx, suite.userID, "Goal reached", "You met your income goal", "")

	suite.Require().NoError(err)
	suite.NotEmpty(n.NotificationID)
	suite.False(n.CreatedAt.IsZero())
}

func (suite *NotificationServiceTestSuite) TestListNotifications_ClampsPaging() {
	ctx := context.Background()
	suite.mockNotificationRepo.On("ListNotifications", ctx, suite.userID, false, 50, 0).Return([]domain.Notification{}, nil).Once()
	suite.mockNotificationRepo.On("ListNotifications", ctx, suite.userID, true, 100, 0).Return([]domain.Notification{}, nil).Once()

	_, err := suite.service.ListNotifications(ctx, suite.userID, dto.ListNotificationsParams{})
	suite.Require().NoError(err)
	_, err = suite.service.ListNotifications(ctx, suite.userID, dto.ListNotificationsParams{UnreadOnly: true, Limit: 500, Offset: -3})
	suite.Require().NoError(err)

	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead() {
	ctx := context.Background()
	unread := &domain.Notification{NotificationID: "n1", UserID: suite.userID}
	suite.mockNotificationRepo.On("FindNotificationByID", ctx, "n1").Return(unread, nil).Once()
	suite.mockNotificationRepo.On("MarkNotificationRead", ctx, "n1").Return(nil).Once()

	n, err := suite.service.MarkRead(ctx, suite.userID, "n1")

	suite.Require().NoError(err)
	suite.True(n.IsRead)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_AlreadyReadSkipsWrite() {
	ctx := context.Background()
	read := &domain.Notification{NotificationID: "n1", UserID: suite.userID, IsRead: true}
	suite.mockNotificationRepo.On("FindNotificationByID", ctx, "n1").Return(read, nil).Once()

	n, err := suite.service.MarkRead(ctx, suite.userID, "n1")

	suite.Require().NoError(err)
	suite.True(n.IsRead)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkNotificationRead", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestOwnership() {
	ctx := context.Background()
	foreign := &domain.Notification{NotificationID: "n2", UserID: "someone-else"}
	suite.mockNotificationRepo.On("FindNotificationByID", ctx, "n2").Return(foreign, nil)
	suite.mockNotificationRepo.On("FindNotificationByID", ctx, "gone").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.MarkRead(ctx, suite.userID, "n2")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.DeleteNotification(ctx, suite.userID, "n2"), apperrors.ErrForbidden)

	_, err = suite.service.MarkRead(ctx, suite.userID, "gone")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkNotificationRead", mock.Anything, mock.Anything)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkNotificationDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestMarkAllReadAndUnreadCount() {
	ctx := context.Background()
	suite.mockNotificationRepo.On("MarkAllNotificationsRead", ctx, suite.userID).Return(3, nil).Once()
	suite.mockNotificationRepo.On("CountUnread", ctx, suite.userID).Return(0, nil).Once()

	updated, err := suite.service.MarkAllRead(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(3, updated)

	count, err := suite.service.UnreadCount(ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *NotificationServiceTestSuite) TestDeleteNotification() {
	ctx := context.Background()
	own := &domain.Notification{NotificationID: "n3", UserID: suite.userID}
	suite.mockNotificationRepo.On("FindNotificationByID", ctx, "n3").Return(own, nil).Once()
	suite.mockNotificationRepo.On("MarkNotificationDeleted", ctx, "n3", mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.NoError(suite.service.DeleteNotification(ctx, suite.userID, "n3"))
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

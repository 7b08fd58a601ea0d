package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/core/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo *MockGoalRepository
	service      portssvc.GoalSvcFacade
	userID       string
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.userID = "user-goals"
	suite.service = services.NewGoalService(suite.mockGoalRepo, services.GoalDefaultsFromConfig(&config.Config{
		DefaultMonthlyIncomeGoal:     d("5000"),
		DefaultMonthlyGoldGoal:       d("2"),
		DefaultMonthlySilverGoal:     d("50"),
		DefaultMonthlyInvestmentGoal: d("1000"),
	}))
}

func (suite *GoalServiceTestSuite) TestGetMonthlyGoal_DefaultsWhenNothingSaved() {
	ctx := context.Background()
	suite.mockGoalRepo.On("MonthlyGoal", ctx, suite.userID, 2024, 7).Return(nil, nil).Once()

	goal, err := suite.service.GetMonthlyGoal(ctx, suite.userID, 2024, 7)

	suite.Require().NoError(err)
	suite.Empty(goal.GoalID)
	suite.True(dto.ToMonthlyGoalResponse(goal).IsDefault)
	suite.True(goal.IncomeGoal.Equal(d("5000")))
	suite.True(goal.SilverGoal.Equal(d("50")))
	suite.Equal(7, goal.Month)
}

func (suite *GoalServiceTestSuite) TestGetMonthlyGoal_Saved() {
	ctx := context.Background()
	saved := &domain.MonthlyGoal{GoalID: "g1", Year: 2024, Month: 7, IncomeGoal: d("9000")}
	suite.mockGoalRepo.On("MonthlyGoal", ctx, suite.userID, 2024, 7).Return(saved, nil).Once()

	goal, err := suite.service.GetMonthlyGoal(ctx, suite.userID, 2024, 7)

	suite.Require().NoError(err)
	suite.Same(saved, goal)
}

func (suite *GoalServiceTestSuite) TestGetMonthlyGoal_InvalidMonth() {
	_, err := suite.service.GetMonthlyGoal(context.Background(), suite.userID, 2024, 0)
	suite.ErrorIs(err, apperrors.ErrInvalidArgument)
}

func (suite *GoalServiceTestSuite) TestUpsertMonthlyGoal_NewGoalMergesOntoDefaults() {
	ctx := context.Background()
	income := d("7500")
	suite.mockGoalRepo.On("MonthlyGoal", ctx, suite.userID, 2024, 8).Return(nil, nil).Once()
	suite.mockGoalRepo.On("UpsertMonthlyGoal", ctx, mock.MatchedBy(func(g domain.MonthlyGoal) bool {
		return g.GoalID != "" &&
			g.IncomeGoal.Equal(income) &&
			g.GoldGoal.Equal(d("2")) &&
			g.InvestmentGoal.Equal(d("1000")) &&
			g.CreatedBy == suite.userID
	})).Return(func(ctx context.Context, g domain.MonthlyGoal) *domain.MonthlyGoal {
		return &g
	}, nil).Once()

	goal, err := suite.service.UpsertMonthlyGoal(ctx, suite.userID, 2024, 8, dto.UpsertMonthlyGoalRequest{IncomeGoal: &income})

	suite.Require().NoError(err)
	suite.NotEmpty(goal.GoalID)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestUpsertMonthlyGoal_ExistingGoalKeepsID() {
	ctx := context.Background()
	existing := &domain.MonthlyGoal{GoalID: "g1", UserID: suite.userID, Year: 2024, Month: 8, IncomeGoal: d("9000"), GoldGoal: d("3")}
	zero := decimal.Zero
	suite.mockGoalRepo.On("MonthlyGoal", ctx, suite.userID, 2024, 8).Return(existing, nil).Once()
	suite.mockGoalRepo.On("UpsertMonthlyGoal", ctx, mock.MatchedBy(func(g domain.MonthlyGoal) bool {
		return g.GoalID == "g1" && g.IncomeGoal.Equal(d("9000")) && g.GoldGoal.IsZero()
	})).Return(existing, nil).Once()

	_, err := suite.service.UpsertMonthlyGoal(ctx, suite.userID, 2024, 8, dto.UpsertMonthlyGoalRequest{GoldGoal: &zero})

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestUpsertMonthlyGoal_NegativeTarget() {
	ctx := context.Background()
	negative := d("-5")
	suite.mockGoalRepo.On("MonthlyGoal", ctx, suite.userID, 2024, 8).Return(nil, nil).Once()

	goal, err := suite.service.UpsertMonthlyGoal(ctx, suite.userID, 2024, 8, dto.UpsertMonthlyGoalRequest{SilverGoal: &negative})

	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "UpsertMonthlyGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestListYearlyGoals() {
	ctx := context.Background()
	suite.mockGoalRepo.On("GoalsByYear", ctx, suite.userID, 2024).Return([]domain.MonthlyGoal{{Month: 1}, {Month: 3}}, nil).Once()
	suite.mockGoalRepo.On("GoalsByYear", ctx, suite.userID, 2025).Return(nil, assert.AnError).Once()

	goals, err := suite.service.ListYearlyGoals(ctx, suite.userID, 2024)
	suite.Require().NoError(err)
	suite.Len(goals, 2)

	_, err = suite.service.ListYearlyGoals(ctx, suite.userID, 2025)
	suite.ErrorIs(err, assert.AnError)
}

func TestGoalService(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}

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

type InvestmentServiceTestSuite struct {
	suite.Suite
	mockInvestmentRepo *MockInvestmentRepository
	service            portssvc.InvestmentSvcFacade
	userID             string
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockInvestmentRepo = new(MockInvestmentRepository)
	suite.service = services.NewInvestmentService(suite.mockInvestmentRepo)
	suite.userID = "user-investments"
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_Success() {
	ctx := context.Background()
	quantity := d("2.5")
	req := dto.CreateInvestmentRequest{
		InvestmentType: domain.InvestmentGold,
		Name:           "Gold bar",
		Amount:         d("1200"),
		Quantity:       &quantity,
		PurchaseDate:   "2024-02-01",
	}

	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.UserID == suite.userID &&
			inv.Quantity.Valid && inv.Quantity.Decimal.Equal(quantity) &&
			!inv.CurrentValue.Valid
	})).Return(nil).Once()

	inv, err := suite.service.CreateInvestment(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(inv.InvestmentID)
	suite.Equal("2024-02-01", inv.PurchaseDate.Format(dto.DateLayout))
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestment_Invalid() {
	ctx := context.Background()
	negative := d("-1")
	cases := map[string]dto.CreateInvestmentRequest{
		"unknown type":           {InvestmentType: "ART", Name: "x", Amount: d("1"), PurchaseDate: "2024-01-01"},
		"missing name":           {InvestmentType: domain.InvestmentETF, Amount: d("1"), PurchaseDate: "2024-01-01"},
		"zero amount":            {InvestmentType: domain.InvestmentETF, Name: "x", PurchaseDate: "2024-01-01"},
		"negative current value": {InvestmentType: domain.InvestmentETF, Name: "x", Amount: d("1"), PurchaseDate: "2024-01-01", CurrentValue: &negative},
		"bad date":               {InvestmentType: domain.InvestmentETF, Name: "x", Amount: d("1"), PurchaseDate: "yesterday"},
	}
	for name, req := range cases {
		inv, err := suite.service.CreateInvestment(ctx, suite.userID, req)
		suite.Nil(inv, name)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "SaveInvestment", mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestUpdateInvestment_SetsCurrentValue() {
	ctx := context.Background()
	existing := &domain.Investment{
		InvestmentID:   "inv-1",
		UserID:         suite.userID,
		InvestmentType: domain.InvestmentStocks,
		Name:           "ACME",
		Amount:         d("500"),
	}
	current := d("640")

	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, suite.userID, "inv-1").Return(existing, nil).Once()
	suite.mockInvestmentRepo.On("UpdateInvestment", ctx, mock.MatchedBy(func(inv domain.Investment) bool {
		return inv.CurrentValue.Valid && inv.CurrentValue.Decimal.Equal(current) && inv.Name == "ACME"
	})).Return(nil).Once()

	inv, err := suite.service.UpdateInvestment(ctx, suite.userID, "inv-1", dto.UpdateInvestmentRequest{CurrentValue: &current})

	suite.Require().NoError(err)
	suite.Equal(suite.userID, inv.LastUpdatedBy)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestGetAndDelete_NotFound() {
	ctx := context.Background()
	suite.mockInvestmentRepo.On("FindInvestmentByID", ctx, suite.userID, "nope").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvestmentRepo.On("MarkInvestmentDeleted", ctx, suite.userID, "nope", mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.GetInvestment(ctx, suite.userID, "nope")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.DeleteInvestment(ctx, suite.userID, "nope"), apperrors.ErrNotFound)
}

func (suite *InvestmentServiceTestSuite) TestListInvestments() {
	ctx := context.Background()
	suite.mockInvestmentRepo.On("InvestmentsByUser", ctx, suite.userID).Return([]domain.Investment{{InvestmentID: "a"}}, nil).Once()

	investments, err := suite.service.ListInvestments(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(investments, 1)
}

func TestInvestmentService(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}

package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	handlerSuite
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: suite.userID, Username: "alice", Email: "alice@example.com", IsActive: true}
	token := &dto.LoginResponse{Token: "signed", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour), User: dto.ToUserResponse(user)}
	suite.users.On("AuthenticateUser", mock.Anything, "alice", "correct-horse").Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return(token, nil).Once()

	w := suite.doAnonymous(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Login: "alice", Password: "correct-horse"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("signed", resp.Token)
	suite.Equal("alice", resp.User.Username)
}

func (suite *AuthHandlerTestSuite) TestLogin_Rejected() {
	suite.users.On("AuthenticateUser", mock.Anything, "alice", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.doAnonymous(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Login: "alice", Password: "wrong"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.doAnonymous(http.MethodPost, "/api/v1/auth/login", `{"login":"alice"}`)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.tokens.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister() {
	req := dto.RegisterUserRequest{Email: "bob@example.com", Username: "bob", Password: "long-enough-password"}
	user := &domain.User{UserID: "new-user", Username: "bob", Email: "bob@example.com", IsActive: true}
	suite.users.On("Register", mock.Anything, req).Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return(&dto.LoginResponse{Token: "t", User: dto.ToUserResponse(user)}, nil).Once()

	w := suite.doAnonymous(http.MethodPost, "/api/v1/auth/register", req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("new-user", resp.User.UserID)
}

func (suite *AuthHandlerTestSuite) TestRegister_Errors() {
	dup := dto.RegisterUserRequest{Email: "bob@example.com", Username: "bob", Password: "long-enough-password"}
	suite.users.On("Register", mock.Anything, dup).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doAnonymous(http.MethodPost, "/api/v1/auth/register", dup)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.doAnonymous(http.MethodPost, "/api/v1/auth/register", dto.RegisterUserRequest{Email: "not-an-email", Username: "bob", Password: "long-enough-password"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestGetMe() {
	user := &domain.User{UserID: suite.userID, Username: "alice"}
	suite.users.On("GetUserByID", mock.Anything, suite.userID).Return(user, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.UserResponse
	suite.decode(w, &resp)
	suite.Equal("alice", resp.Username)
}

func (suite *AuthHandlerTestSuite) TestInvalidToken() {
	req := suite.newRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.users.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestHealth() {
	w := suite.doAnonymous(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type InvestmentHandlerTestSuite struct {
	handlerSuite
}

func (suite *InvestmentHandlerTestSuite) TestCreateInvestment() {
	inv := &domain.Investment{InvestmentID: "inv-1", InvestmentType: domain.InvestmentGold, Name: "Gold bar", Amount: d("1200"),
		PurchaseDate: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)}
	suite.investments.On("CreateInvestment", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreateInvestmentRequest) bool {
		return req.InvestmentType == domain.InvestmentGold && req.CurrentValue == nil
	})).Return(inv, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/investments", `{"investmentType":"GOLD","name":"Gold bar","amount":"1200","purchaseDate":"2024-02-01"}`)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.InvestmentResponse
	suite.decode(w, &resp)
	suite.Equal("2024-02-01", resp.PurchaseDate)
	suite.Nil(resp.CurrentValue)
}

func (suite *InvestmentHandlerTestSuite) TestCreateInvestment_UnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/investments", `{"investmentType":"ART","name":"x","amount":"1","purchaseDate":"2024-02-01"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.investments.AssertNotCalled(suite.T(), "CreateInvestment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentHandlerTestSuite) TestListGetUpdateDelete() {
	suite.investments.On("ListInvestments", mock.Anything, suite.userID).Return([]domain.Investment{{InvestmentID: "inv-1"}}, nil).Once()
	suite.investments.On("GetInvestment", mock.Anything, suite.userID, "inv-9").Return(nil, apperrors.ErrNotFound).Once()
	suite.investments.On("UpdateInvestment", mock.Anything, suite.userID, "inv-1", mock.MatchedBy(func(req dto.UpdateInvestmentRequest) bool {
		return req.CurrentValue != nil && req.CurrentValue.Equal(d("640"))
	})).Return(&domain.Investment{InvestmentID: "inv-1"}, nil).Once()
	suite.investments.On("DeleteInvestment", mock.Anything, suite.userID, "inv-1").Return(assert.AnError).Once()

	w := suite.do(http.MethodGet, "/api/v1/investments", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListInvestmentsResponse
	suite.decode(w, &list)
	suite.Len(list.Investments, 1)

	w = suite.do(http.MethodGet, "/api/v1/investments/inv-9", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/investments/inv-1", `{"currentValue":640}`)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/investments/inv-1", nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to delete investment"}`, w.Body.String())
}

func TestInvestmentHandler(t *testing.T) {
	suite.Run(t, new(InvestmentHandlerTestSuite))
}

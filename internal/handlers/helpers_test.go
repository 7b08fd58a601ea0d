package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/handlers"
	"github.com/SscSPs/portfel_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// handlerSuite wires every route against mock services behind the real auth middleware.
type handlerSuite struct {
	suite.Suite
	router       *gin.Engine
	analytics    *MockAnalyticsService
	entries      *MockEntryService
	investments  *MockInvestmentService
	goals        *MockGoalService
	notification *MockNotificationService
	users        *MockUserService
	tokens       *MockTokenService
	userID       string
}

func (suite *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.userID = "user-handler-test"

	suite.analytics = new(MockAnalyticsService)
	suite.entries = new(MockEntryService)
	suite.investments = new(MockInvestmentService)
	suite.goals = new(MockGoalService)
	suite.notification = new(MockNotificationService)
	suite.users = new(MockUserService)
	suite.tokens = new(MockTokenService)

	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Analytics:    suite.analytics,
		Entry:        suite.entries,
		Investment:   suite.investments,
		Goal:         suite.goals,
		Notification: suite.notification,
		User:         suite.users,
		Token:        suite.tokens,
	})
	suite.Require().NoError(err)
}

// generateTestToken creates a signed JWT for the given user.
func (suite *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "portfel-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// do serves an authenticated request. A nil body sends no payload.
func (suite *handlerSuite) do(method, target string, body any) *httptest.ResponseRecorder {
	req := suite.newRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	return suite.serve(req)
}

// doAnonymous serves a request without credentials.
func (suite *handlerSuite) doAnonymous(method, target string, body any) *httptest.ResponseRecorder {
	return suite.serve(suite.newRequest(method, target, body))
}

func (suite *handlerSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *handlerSuite) newRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewBuffer(payload)
	}
	req, err := http.NewRequest(method, target, reader)
	suite.Require().NoError(err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req
}

func (suite *handlerSuite) decode(w *httptest.ResponseRecorder, into any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), into), w.Body.String())
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

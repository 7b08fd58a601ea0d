package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventName(t *testing.T) {
	tests := map[string]string{
		"/api/v1/analytics/monthly/:year/:month":     "api_v1_analytics_monthly",
		"/api/v1/entries":                            "api_v1_entries",
		"/api/v1/notifications/:notificationID/read": "api_v1_notifications_read",
		"/swagger/*any":                              "swagger",
	}
	for route, want := range tests {
		assert.Equal(t, want, eventName(route), route)
	}
}

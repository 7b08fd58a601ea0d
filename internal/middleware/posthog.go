package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/portfel_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedRoutes are route patterns never sent to PostHog.
var untrackedRoutes = map[string]bool{
	"/health":            true,
	"/api/v1/health":     true,
	"/swagger/*any":      true,
	"/api/v1/auth/login": true,
}

// PosthogMiddleware reports successful authenticated API calls to PostHog.
// The event name is derived from the route pattern, e.g. "/api/v1/analytics/monthly/:year/:month"
// becomes "api_v1_analytics_monthly".
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		if route == "" || untrackedRoutes[route] {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName(route), props)
	}
}

func eventName(route string) string {
	segments := strings.Split(strings.TrimPrefix(route, "/"), "/")
	kept := segments[:0]
	for _, s := range segments {
		if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "*") {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "_")
}

package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key holding the authenticated user id.
const userIDKey = "user_id"

// HeaderUserID is the header the upstream identity service sets after
// authenticating the request.
const HeaderUserID = "X-User-ID"

// errorBody matches the error response shape used by all handlers.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func abortWithError(c *gin.Context, code string, message string, status int) {
	resp := errorBody{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.AbortWithStatusJSON(status, resp)
}

// Required returns a middleware that rejects requests without an
// authenticated user id.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			abortWithError(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireAdmin returns a middleware that rejects non-admin callers.
// Must be chained after Required.
func RequireAdmin(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			abortWithError(c, "UNAUTHENTICATED", "user identity is required", http.StatusUnauthorized)
			return
		}
		if !auth.IsAdmin(c.Request.Context(), userID) {
			abortWithError(c, "FORBIDDEN", "admin access required", http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id stored by Required.
func UserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

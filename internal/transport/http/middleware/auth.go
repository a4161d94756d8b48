package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bokasafn/internal/model"
	"bokasafn/internal/pkg/jwtutil"
)

const (
	contextUserKey          = "auth_user"
	contextAuthenticatedKey = "authenticated"
	contextReasonKey        = "auth_reason"

	ReasonExpiredToken = "expired token"
	ReasonInvalidToken = "invalid token"
)

// UserLoader resolves the user a token claim points at.
type UserLoader interface {
	GetByID(id uint) (*model.User, error)
}

// Authenticate never rejects a request on its own. It records whether the
// bearer token resolved to a user so that RequireAuth (or a handler) can
// decide per route. A valid token whose user row is gone counts as invalid.
func Authenticate(secret string, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			markUnauthenticated(c, ReasonInvalidToken)
			c.Next()
			return
		}

		userID, err := jwtutil.Parse(secret, token)
		if err != nil {
			reason := ReasonInvalidToken
			if errors.Is(err, jwtutil.ErrTokenExpired) {
				reason = ReasonExpiredToken
			}
			markUnauthenticated(c, reason)
			c.Next()
			return
		}

		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			markUnauthenticated(c, ReasonInvalidToken)
			c.Next()
			return
		}

		user.Password = ""
		c.Set(contextUserKey, user)
		c.Set(contextAuthenticatedKey, true)
		c.Next()
	}
}

func RequireAuth(c *gin.Context) {
	if !c.GetBool(contextAuthenticatedKey) {
		reason := c.GetString(contextReasonKey)
		if reason == "" {
			reason = ReasonInvalidToken
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
		return
	}
	c.Next()
}

// CurrentUser returns the authenticated user, or nil on soft-fail routes
// where the request carried no usable token.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func markUnauthenticated(c *gin.Context, reason string) {
	c.Set(contextAuthenticatedKey, false)
	c.Set(contextReasonKey, reason)
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/service"
)

const msgSignInRequired = "You need to be signed in to access this resource. Please log in"

// currentUserKey is the gin context key the authenticated user is stored under.
const currentUserKey = "currentUser"

// authenticateUser resolves the Authorization header to a user record and
// aborts the chain with 401 when the token matches no one. The header carries
// the raw access token; a Bearer prefix is tolerated and stripped.
func (h *Handler) authenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		token = strings.TrimPrefix(token, "Bearer ")

		user, err := h.users.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnknownToken) {
				h.metrics.AuthRejectionsTotal.Inc()
				respondError(c, http.StatusUnauthorized, msgSignInRequired)
				c.Abort()
				return
			}
			h.logger.WithError(err).Error("token lookup")
			respondError(c, http.StatusBadRequest, msgBadRequest)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser returns the user attached by authenticateUser, if any.
func currentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

// principalKey is the gin context key holding the resolved *auth.Principal
const principalKey = "principal"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	resolver auth.Resolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver auth.Resolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// JWTAuth resolves the caller from the Authorization header or the access
// token cookie and rejects the request with 401 when that fails.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := m.resolver.Resolve(c.Request)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RoleRequired rejects callers without the given role. It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			return
		}

		if !principal.HasRole(role) {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrPermissionDenied,
				"This operation requires the "+string(role)+" role"))
			return
		}

		c.Next()
	}
}

// PrincipalFrom returns the principal stored by JWTAuth
func PrincipalFrom(c *gin.Context) (*auth.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*auth.Principal)
	return principal, ok && principal.Valid()
}

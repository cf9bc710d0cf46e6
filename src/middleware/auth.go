package middleware

import (
	"net/http"
	"strings"

	"github.com/ARQAP/ARQAP-Catalog/src/models"
	"github.com/gin-gonic/gin"
)

// RoleHeader is the legacy unsigned role header.
const RoleHeader = "x-user-role"

const roleKey = "role"

// TokenVerifier checks a bearer token and returns the role it grants.
type TokenVerifier interface {
	VerifyToken(token string) (models.Role, error)
}

// ResolveRole stores the caller's role in the context. A verified bearer token
// wins; the unsigned role header is only honoured when trustHeader is set.
// Callers without a valid credential carry no role.
func ResolveRole(verifier TokenVerifier, trustHeader bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if role, err := verifier.VerifyToken(strings.TrimSpace(parts[1])); err == nil {
					ctx.Set(roleKey, role)
				}
			}
			ctx.Next()
			return
		}

		if trustHeader {
			if role, ok := models.ParseRole(ctx.GetHeader(RoleHeader)); ok {
				ctx.Set(roleKey, role)
			}
		}
		ctx.Next()
	}
}

// RoleFromContext returns the role resolved for this request, if any.
func RoleFromContext(ctx *gin.Context) (models.Role, bool) {
	v, ok := ctx.Get(roleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

// RequireCapability rejects callers whose role does not grant c.
func RequireCapability(c models.Capability) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, ok := RoleFromContext(ctx)
		if !ok || !role.Can(c) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient role permissions"})
			return
		}
		ctx.Next()
	}
}

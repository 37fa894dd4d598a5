package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/user"
	"github.com/lakbayhr/ems-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleAdmin)
}

// RequireHR requires the hr or admin role. Payroll processing, employee
// management and recruitment actions sit behind this.
func RequireHR(next http.Handler) http.Handler {
	return requireRoles(next, user.RoleAdmin, user.RoleHR)
}

func requireRoles(next http.Handler, roles ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		role := user.Role(roleStr)
		for _, allowed := range roles {
			if role == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.Forbidden(w, "Insufficient permissions")
	})
}

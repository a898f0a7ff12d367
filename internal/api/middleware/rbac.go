package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

// RBAC enforces role-based access control on routes behind Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequireElevated is RBAC for the admin-only surface: pharmacists and
// admins pass, customers do not.
func RequireElevated() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin, domain.RolePharmacist)
}

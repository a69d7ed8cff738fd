package backoffice

import "context"

// Dashboard landing routes by role.
const (
	RouteAdminHome = "/admin/clients"
	RouteDashboard = "/dashboard"
	RoutePinEntry  = "/tablet/pin"
)

// RouteForRole resolves the post-login landing route: superadmins land on
// the back office, managers on the general dashboard, and every other role
// (waiters included) on the PIN-based tablet entry.
func RouteForRole(role Role) string {
	switch role {
	case RoleSuperadmin:
		return RouteAdminHome
	case RoleManager:
		return RouteDashboard
	default:
		return RoutePinEntry
	}
}

// NavigateAfterLogin dispatches to the role's landing route once the
// presentation layer signals that its confirmation sequence finished. The
// signal replaces any fixed-delay timer, so navigation timing is owned by
// whoever plays the animation, not by this package.
func NavigateAfterLogin(ctx context.Context, role Role, presented <-chan struct{}, navigate func(route string)) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-presented:
	}

	navigate(RouteForRole(role))
	return nil
}

package httpx

import (
	"net/http"
)

// RequireAnyRole lets the request through when the caller holds one of roles.
// It must run after AuthnMiddleware.
func RequireAnyRole(roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, s := range roles {
		want[s] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[RoleFromContext(r.Context())]; ok {
				next.ServeHTTP(w, r)
				return
			}
			WriteError(w, http.StatusForbidden, "forbidden", "Insufficient role for this action")
		})
	}
}

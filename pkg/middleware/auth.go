package middleware

import (
	"net/http"
	"strings"

	"shop-portal/internal/data/repository"
	"shop-portal/internal/policy"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the session token for browser
// clients; API clients send the same token as a Bearer header.
const SessionCookieName = "sessionid"

// LoginPath is where browser routes redirect anonymous visitors.
const LoginPath = "/accounts/login"

// AuthSession resolves the acting identity from the session token, when one
// is present. Requests without a valid token continue anonymously; the
// gating middlewares below decide whether that is acceptable per route.
func AuthSession(repo *repository.Repository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := repo.Session.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				// Expired or revoked token: treat as anonymous.
				next.ServeHTTP(w, r)
				return
			}

			user, err := repo.User.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err), zap.Int64("user_id", session.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			codenames, err := repo.User.GetPermissions(r.Context(), user.ID)
			if err != nil {
				logger.Error("Failed to load permissions",
					zap.Error(err), zap.Int64("user_id", user.ID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			perms := make(map[string]struct{}, len(codenames))
			for _, codename := range codenames {
				perms[codename] = struct{}{}
			}

			identity := &policy.Identity{
				ID:        user.ID,
				Username:  user.Username,
				Staff:     user.Staff,
				Superuser: user.Superuser,
				Perms:     perms,
			}

			ctx := policy.WithIdentity(r.Context(), identity)
			ctx = utils.SetUserContext(ctx, user.ID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginRequired gates a route on authentication. Browser routes redirect to
// the login page; API routes answer 401.
func LoginRequired(redirect bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := policy.FromContext(r.Context())
			if !id.IsAuthenticated() {
				if redirect {
					http.Redirect(w, r, LoginPath+"?next="+r.URL.Path, http.StatusFound)
					return
				}
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// StaffRequired gates a route on the staff flag.
func StaffRequired(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := policy.FromContext(r.Context())
			if !id.IsAuthenticated() {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			if !id.Staff {
				logger.Warn("Staff check: non-staff access attempt",
					zap.Int64("user_id", id.ID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Staff access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SuperuserRequired gates a route on the superuser flag.
func SuperuserRequired(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := policy.FromContext(r.Context())
			if !id.IsAuthenticated() {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			if !id.Superuser {
				logger.Warn("Superuser check: access attempt",
					zap.Int64("user_id", id.ID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Superuser access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PermissionRequired gates a route on a granted permission codename.
// Superusers pass implicitly.
func PermissionRequired(codename string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := policy.FromContext(r.Context())
			if !id.IsAuthenticated() {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			if !id.HasPerm(codename) {
				logger.Warn("Permission check failed",
					zap.Int64("user_id", id.ID),
					zap.String("permission", codename),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Permission required: "+codename)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

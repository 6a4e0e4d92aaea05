package main

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/DarshanRT1/Hotel-Booking/internal/auth"
	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
)

type ctxKey string

const claimsCtx ctxKey = "claims"

func (app *application) rateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(clientIP(r)); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// authenticate attaches the claims of a valid bearer token to the request.
// Requests without one, or with an invalid one, pass through anonymously.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := app.authenticator.ValidateToken(token)
		if err != nil {
			app.logger.Debugw("ignoring invalid bearer token", "path", r.URL.Path, "error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtx, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if getClaimsFromCtx(r) == nil {
			app.unauthorizedResponse(w, r, domain.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireRole only lets through bearers holding one of roles.
func (app *application) requireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := getClaimsFromCtx(r)
			if claims == nil {
				app.unauthorizedResponse(w, r, domain.ErrUnauthorized)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			app.forbiddenResponse(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}

	return strings.TrimSpace(parts[1]), true
}

func getClaimsFromCtx(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsCtx).(*auth.Claims)
	return claims
}

// actorID names the caller for audit purposes, empty when anonymous.
func actorID(r *http.Request) string {
	if claims := getClaimsFromCtx(r); claims != nil {
		return claims.UserID
	}
	return ""
}

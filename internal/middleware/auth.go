package middleware

import (
	"context"
	"net/http"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/portfolio-dev/portfolio-api/internal/handler"
	"github.com/portfolio-dev/portfolio-api/internal/jwt"
)

// Key to store the admin claims in the request context
type key int

const adminEmailKey key = 0

// Auth guards the administrative surface. The site has a single admin
// identity, so there is no user lookup: a valid token with the admin claim
// is the whole check.
type Auth struct {
	tokens jwt.TokenService
}

func NewAuth(tokens jwt.TokenService) *Auth {
	return &Auth{tokens: tokens}
}

// AdminOnly returns middleware that requires a valid admin session cookie.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessCookie, err := r.Cookie("accessToken")
			if err == http.ErrNoCookie {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			} else if err != nil {
				http.Error(w, "Invalid cookie", http.StatusInternalServerError)
				return
			}

			token, err := a.tokens.DecodeToken(accessCookie.Value)
			if err != nil {
				handler.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwtlib.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			isAdmin, ok := claims["admin"].(bool)
			if !ok || !isAdmin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			email, _ := claims["email"].(string)
			ctx := context.WithValue(r.Context(), adminEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminFromContext returns the authenticated admin email, or "" when the
// request did not pass thru AdminOnly.
func GetAdminFromContext(r *http.Request) string {
	email, _ := r.Context().Value(adminEmailKey).(string)
	return email
}

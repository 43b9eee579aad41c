package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vadimbarashkov/linkstats/pkg/response"
)

const accessTokenCookie = "accessToken"

type ctxKey int

const accountIDKey ctxKey = iota

var errMissingToken = errors.New("missing access token")

// authenticator accepts HS256 tokens from the Authorization header or the
// access token cookie and stores the token subject as the account id.
func authenticator(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, err := verifyToken(r, secret)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Unauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyToken(r *http.Request, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errMissingToken
	}

	tokenString := bearerToken(r)
	if tokenString == "" {
		return "", errMissingToken
	}

	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", jwt.ErrTokenInvalidSubject
	}

	return claims.Subject, nil
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

func accountIDFromContext(ctx context.Context) string {
	accountID, _ := ctx.Value(accountIDKey).(string)
	return accountID
}

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName — имя cookie с JWT-токеном сессии.
const AuthCookieName = "auth_token"

type contextKey string

const userIDKey contextKey = "user_id"

// Claims — полезная нагрузка токена: только идентификатор пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

const tokenTTL = 24 * time.Hour

// BuildJWT формирует подписанный HS256 токен для пользователя.
func BuildJWT(userID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(secret))
}

// SetLoginCookie выставляет auth cookie с токеном для userID.
func SetLoginCookie(w http.ResponseWriter, userID, secret string) error {
	value, err := BuildJWT(userID, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(tokenTTL.Seconds()),
	})
	return nil
}

// parseToken валидирует токен и возвращает userID.
func parseToken(tokenString, secret string) (string, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

// WithAuth извлекает auth cookie и при валидном токене кладёт user_id в контекст.
// Доступ не запрещает: решение принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(AuthCookieName); err == nil && c.Value != "" {
				if uid, ok := parseToken(c.Value, secret); ok {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает user_id, установленный WithAuth.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userIDKey).(string)
	return uid, ok && uid != ""
}

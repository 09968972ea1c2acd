package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"unimarket/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys written by the auth middlewares.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// RequireAuth validates the Bearer token and aborts with 401 when it is
// missing or invalid. On success the user id and email are placed in the gin
// context.
func RequireAuth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return func(c *gin.Context) {
		claims, err := parseBearer(c, secret)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth parses the Bearer token when one is present but never rejects
// the request. Endpoints treat a missing identity as a valid empty state.
func OptionalAuth() gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return func(c *gin.Context) {
		if claims, err := parseBearer(c, secret); err == nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (jwt.MapClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Set(ContextUserID, sub)
	}
	if email, ok := claims["email"].(string); ok {
		c.Set(ContextUserEmail, email)
	}
}

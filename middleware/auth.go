package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextPseudoKey is where AuthRequired stores the authenticated handle.
const ContextPseudoKey = "pseudo"

func jwtKey() []byte {
	key := os.Getenv("JWT_KEY")
	if key == "" {
		key = "secret"
	}
	return []byte(key)
}

// GenerateToken mints the JWT handed out at signup/signin.
func GenerateToken(pseudo string, subject uint) (string, error) {
	claims := jwt.MapClaims{
		"pseudo":  pseudo,
		"subject": subject,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// JWT_decoder extracts and validates the bearer token of a request,
// returning the pseudo it was issued for.
func JWT_decoder(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return "", errors.New("Authorization header is not a Bearer token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	pseudo, ok := claims["pseudo"].(string)
	if !ok {
		return "", errors.New("token carries no pseudo")
	}
	return pseudo, nil
}

// Socketio_JWT_decoder validates the token found in socket.io handshake
// auth data, returning the pseudo it was issued for.
func Socketio_JWT_decoder(authData map[string]interface{}) (string, error) {
	header, ok := authData["authorization"].(string)
	if !ok {
		return "", errors.New("missing authorization field")
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	pseudo, ok := claims["pseudo"].(string)
	if !ok {
		return "", errors.New("token carries no pseudo")
	}
	return pseudo, nil
}

// AuthRequired is the middleware guarding the authenticated route group.
func AuthRequired(c *gin.Context) {
	pseudo, err := JWT_decoder(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(ContextPseudoKey, pseudo)
	c.Next()
}

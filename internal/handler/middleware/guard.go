package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"voicefront/internal/handler/dto/response"
	"voicefront/internal/pkg/config"
	"voicefront/internal/pkg/errs"
)

const internalTokenHeader = "x-internal-token"

// Guard authenticates calls from the voice platform. Either the shared
// internal token or an HS256 bearer token is accepted. With neither secret
// configured the guard is open, which is only sensible in local development.
func Guard(cfg config.GuardConfig) gin.HandlerFunc {
	open := cfg.InternalToken == "" && cfg.JWTSecret == ""
	return func(c *gin.Context) {
		if open {
			c.Next()
			return
		}

		if cfg.InternalToken != "" && c.GetHeader(internalTokenHeader) == cfg.InternalToken {
			c.Next()
			return
		}

		if cfg.JWTSecret != "" {
			if token := bearerToken(c); token != "" {
				if err := verifyHS256(token, cfg.JWTSecret); err == nil {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Voice{
			Code:   response.CodeUnauthorised,
			Speech: "Sorry, I can't take this request.",
		})
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

func verifyHS256(tokenString, secret string) error {
	_, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.Newf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	return err
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/logger"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string
}

// APIKeyAuth returns a gin middleware validating the Authorization header
// against the configured API keys. The expected format is "APIKey <key>".
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	apiKeyMap := make(map[string]bool, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	return func(c *gin.Context) {
		if err := validateAuthHeader(c.GetHeader("Authorization"), apiKeyMap); err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication failed",
			})
			return
		}

		c.Next()
	}
}

func validateAuthHeader(authHeader string, validKeys map[string]bool) error {
	if len(validKeys) == 0 {
		return errors.New("no API keys configured")
	}
	if authHeader == "" {
		return errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "apikey") {
		return errors.New("invalid Authorization header format")
	}
	if !validKeys[parts[1]] {
		return errors.New("invalid API key")
	}
	return nil
}

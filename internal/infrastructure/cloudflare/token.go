package cloudflare

import (
	"os"

	"github.com/lite-lake/cfman/internal/domain"
	"github.com/lite-lake/cfman/internal/infrastructure/logger"
)

// TokenEnvVar supplies the default API credential when no explicit token is
// given on the command line.
const TokenEnvVar = "CLOUDFLARE_API_TOKEN"

// ResolveToken prefers the explicit value and falls back to the environment.
// No network I/O. The token is never logged in full.
func ResolveToken(explicit string) (string, error) {
	token := explicit
	if token == "" {
		token = os.Getenv(TokenEnvVar)
	}
	if token == "" {
		logger.Error("no token found", "hint", "provide --api-token or set "+TokenEnvVar)
		return "", domain.ErrMissingCredential
	}
	logger.Debug("API token resolved", "token", redactToken(token))
	return token, nil
}

func redactToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

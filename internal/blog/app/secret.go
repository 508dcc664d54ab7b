package app

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/inkwell/pkg/cryptox"
	"github.com/aussiebroadwan/inkwell/pkg/jwtx"
)

// LoadSigningSecret returns the HS256 secret from INKWELL_SECRET_KEY or
// INKWELL_SECRET_FILE. Without either, a random secret is generated for this
// process only, so every restart invalidates outstanding tokens.
func LoadSigningSecret(cfg Config, logger *slog.Logger) ([]byte, error) {
	var secret []byte

	switch {
	case cfg.SecretKey != "":
		secret = []byte(cfg.SecretKey)
		logger.Info("signing secret loaded from environment")

	case cfg.SecretFile != "":
		data, err := os.ReadFile(filepath.Clean(cfg.SecretFile))
		if err != nil {
			return nil, fmt.Errorf("read signing secret: %w", err)
		}
		secret = bytes.TrimSpace(data)
		logger.Info("signing secret loaded from file", "path", cfg.SecretFile)

	default:
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("generate signing secret: %w", err)
		}
		secret = []byte(token)
		logger.Warn("no signing secret configured, using an ephemeral one; tokens will not survive a restart")
	}

	if len(secret) < jwtx.MinSecretLength {
		return nil, jwtx.ErrWeakSecret
	}
	return secret, nil
}

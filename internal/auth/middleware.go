package auth

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MacaroonHeader     = "macaroon"
	EncodingTypeHeader = "encodingtype"

	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// EnsureValidMacaroon rejects requests that do not carry a macaroon accepted
// by v. The macaroon is read from the macaroon header, hex encoded unless
// the encodingtype header says base64.
func EnsureValidMacaroon(v Verifier, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		encoded := strings.TrimSpace(c.GetHeader(MacaroonHeader))
		if encoded == "" {
			unauthorized(c, log, ErrMissingMacaroon)
			return
		}

		raw, err := decodeMacaroon(encoded, c.GetHeader(EncodingTypeHeader))
		if err != nil {
			unauthorized(c, log, err)
			return
		}
		if err := v.Verify(raw); err != nil {
			unauthorized(c, log, err)
			return
		}

		c.Set("authType", "macaroon")
		c.Next()
	}
}

func decodeMacaroon(encoded, encodingType string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encodingType)) {
	case "", EncodingHex:
		raw, err := hex.DecodeString(encoded)
		if err != nil {
			return nil, ErrInvalidMacaroon
		}
		return raw, nil
	case EncodingBase64:
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			if raw, err = base64.RawURLEncoding.DecodeString(encoded); err != nil {
				return nil, ErrInvalidMacaroon
			}
		}
		return raw, nil
	default:
		return nil, ErrUnsupportedEncoding
	}
}

func unauthorized(c *gin.Context, log *zap.Logger, err error) {
	log.Warn("Macaroon authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	message := ErrInvalidMacaroon.Error()
	switch {
	case errors.Is(err, ErrMissingMacaroon):
		message = ErrMissingMacaroon.Error()
	case errors.Is(err, ErrUnsupportedEncoding):
		message = ErrUnsupportedEncoding.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

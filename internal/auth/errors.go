package auth

import "errors"

var (
	ErrMissingMacaroon     = errors.New("missing macaroon header")
	ErrInvalidMacaroon     = errors.New("invalid macaroon")
	ErrUnsupportedEncoding = errors.New("unsupported macaroon encoding type")
)

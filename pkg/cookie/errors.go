package cookie

import "errors"

var (
	ErrCookieNotFound   = errors.New("cookie.not_found")
	ErrInvalidEncoding  = errors.New("cookie.invalid_encoding")
	ErrInvalidJSON      = errors.New("cookie.invalid_json")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrInvalidCookie    = errors.New("cookie.invalid_cookie")
	ErrTooLarge         = errors.New("cookie.too_large")
	ErrSecretTooShort   = errors.New("cookie.secret_too_short")
	ErrUnknownSigner    = errors.New("cookie.unknown_signer")
	ErrInvalidValue     = errors.New("cookie.invalid_value")
)

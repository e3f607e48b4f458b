package keysign

import (
	"errors"

	"github.com/gorilla/securecookie"
)

const (
	secureCookiePurpose = "cookiekit-securecookie-v1"
	// securecookie binds the value to a name; the cookie name is already
	// part of the Set-Cookie line, so one fixed name is used.
	secureCookieName = "cookiekit"
)

// SecureCookie signs and encrypts tokens with gorilla/securecookie. Tokens
// carry a timestamp and expire after the securecookie default max age
// unless WithSecureCookieMaxAge says otherwise.
type SecureCookie struct {
	codecs []securecookie.Codec
}

type SecureCookieOption func(*securecookie.SecureCookie)

// WithSecureCookieMaxAge bounds token age in seconds. Zero disables the check.
func WithSecureCookieMaxAge(seconds int) SecureCookieOption {
	return func(s *securecookie.SecureCookie) {
		s.MaxAge(seconds)
	}
}

// NewSecureCookie builds one securecookie codec per key, newest first. The
// key is the HMAC key; the AES block key is derived from it.
func NewSecureCookie(keys [][]byte, opts ...SecureCookieOption) (*SecureCookie, error) {
	cleaned := cleanKeys(keys)
	if len(cleaned) == 0 {
		return nil, ErrNoKeys
	}

	codecs := make([]securecookie.Codec, 0, len(cleaned))
	for _, hashKey := range cleaned {
		blockKey, err := deriveKey(hashKey, secureCookiePurpose)
		if err != nil {
			return nil, err
		}
		sc := securecookie.New(hashKey, blockKey).SetSerializer(securecookie.NopEncoder{})
		for _, opt := range opts {
			opt(sc)
		}
		codecs = append(codecs, sc)
	}

	return &SecureCookie{codecs: codecs}, nil
}

func (s *SecureCookie) Sign(data string) (string, error) {
	encoded, err := securecookie.EncodeMulti(secureCookieName, []byte(data), s.codecs...)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}
	return encoded, nil
}

func (s *SecureCookie) Verify(encoded string) (string, error) {
	var out []byte
	if err := securecookie.DecodeMulti(secureCookieName, encoded, &out, s.codecs...); err != nil {
		return "", errors.Join(ErrInvalidSignature, err)
	}
	return string(out), nil
}

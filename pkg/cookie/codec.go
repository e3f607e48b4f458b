package cookie

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
)

// Browsers cap name+value at roughly 4096 bytes.
const maxNamePlusValue = 4096

var tokenEncoding = base64.RawURLEncoding.Strict()

const (
	headerCookie    = "Cookie"
	headerSetCookie = "Set-Cookie"
)

// HeaderReader reads request headers. http.Header satisfies it.
type HeaderReader interface {
	Get(key string) string
}

// HeaderWriter appends response headers. http.Header satisfies it.
type HeaderWriter interface {
	Add(key, value string)
}

// Signer authenticates cookie tokens. Sign returns the token with its tag
// attached; Verify returns the original token when the tag matches any key.
type Signer interface {
	Sign(value string) (string, error)
	Verify(signed string) (string, error)
}

// Codec reads cookies from a single request and writes them to its response.
// Create one per request; it must not be shared between requests.
type Codec struct {
	header   HeaderReader
	signer   Signer
	defaults Options
	logger   *slog.Logger
}

// NewCodec binds a codec to the request headers h. A nil signer disables signing.
func NewCodec(h HeaderReader, s Signer, opts ...Option) *Codec {
	return &Codec{
		header:   h,
		signer:   s,
		defaults: applyOptions(defaultOptions(), opts),
		logger:   discardLogger(),
	}
}

// WithLogger returns a copy of the codec that reports rejected cookies to l.
func (c *Codec) WithLogger(l *slog.Logger) *Codec {
	cc := *c
	if l != nil {
		cc.logger = l.With(logger.Component("cookie"))
	}
	return &cc
}

// Encode returns the unpadded base64url form of the JSON text of v.
// A nil Value encodes to an empty string.
func (c *Codec) Encode(v Value) string {
	if v == nil {
		return ""
	}
	return tokenEncoding.EncodeToString(appendJSON(nil, v))
}

// Decode reverses Encode. Any malformed token yields false.
func (c *Codec) Decode(token string) (Value, bool) {
	v, err := c.decode(token)
	if err != nil {
		c.logger.Debug("cookie token rejected", logger.Reason(err))
		return nil, false
	}
	return v, true
}

func (c *Codec) decode(token string) (Value, error) {
	// The base64 decoder skips CR and LF; Encode never emits them.
	if strings.ContainsAny(token, "\r\n") {
		return nil, ErrInvalidEncoding
	}
	data, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncoding, err)
	}
	return ParseValue(data)
}

// Seal returns the cookie token for v, signed when the codec has a signer.
func (c *Codec) Seal(v Value) (string, error) {
	token := c.Encode(v)
	if c.signer == nil {
		return token, nil
	}
	signed, err := c.signer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("sign cookie token: %w", err)
	}
	return signed, nil
}

// Stringify returns the Set-Cookie header value for name and v.
func (c *Codec) Stringify(name string, v Value, opts ...Option) (string, error) {
	token, err := c.Seal(v)
	if err != nil {
		return "", err
	}

	ck := newCookie(name, token, applyOptions(c.defaults, opts))
	if err := validateCookie(ck); err != nil {
		return "", err
	}
	return ck.String(), nil
}

// Set appends a Set-Cookie header for name to w. Earlier cookies are kept.
func (c *Codec) Set(w HeaderWriter, name string, v Value, opts ...Option) error {
	header, err := c.Stringify(name, v, opts...)
	if err != nil {
		return err
	}
	w.Add(headerSetCookie, header)
	return nil
}

// Get returns the value of the named request cookie. Missing, tampered and
// malformed cookies all yield false.
func (c *Codec) Get(name string) (Value, bool) {
	v, err := c.lookup(name)
	if err != nil {
		if !errors.Is(err, ErrCookieNotFound) {
			c.logger.Debug("cookie rejected", logger.Cookie(name), logger.Reason(err))
		}
		return nil, false
	}
	return v, true
}

func (c *Codec) lookup(name string) (Value, error) {
	if c.header == nil {
		return nil, ErrCookieNotFound
	}
	raw, ok := ParseHeader(c.header.Get(headerCookie))[name]
	if !ok {
		return nil, ErrCookieNotFound
	}

	if c.signer != nil {
		token, err := c.signer.Verify(raw)
		if err != nil {
			return nil, errors.Join(ErrInvalidSignature, err)
		}
		raw = token
	}

	return c.decode(raw)
}

// Delete appends a Set-Cookie header that expires the named cookie.
// Path and Domain must match the ones the cookie was set with.
func (c *Codec) Delete(w HeaderWriter, name string, opts ...Option) {
	options := applyOptions(c.defaults, opts)
	ck := newCookie(name, "", options)
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)

	if err := ck.Valid(); err != nil {
		c.logger.Warn("cookie not deleted", logger.Cookie(name), logger.Error(err))
		return
	}
	w.Add(headerSetCookie, ck.String())
}

// ParseHeader splits a Cookie header into name/value pairs. Pairs that are
// not valid cookies are skipped and the first occurrence of a name wins.
func ParseHeader(raw string) map[string]string {
	if raw == "" {
		return map[string]string{}
	}

	r := &http.Request{Header: http.Header{headerCookie: {raw}}}
	cookies := r.Cookies()

	pairs := make(map[string]string, len(cookies))
	for _, ck := range cookies {
		if _, ok := pairs[ck.Name]; !ok {
			pairs[ck.Name] = ck.Value
		}
	}
	return pairs
}

func newCookie(name, value string, o Options) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
}

func validateCookie(ck *http.Cookie) error {
	if len(ck.Name)+len(ck.Value) > maxNamePlusValue {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(ck.Name)+len(ck.Value), maxNamePlusValue)
	}
	if err := ck.Valid(); err != nil {
		return errors.Join(ErrInvalidCookie, err)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

package cookie

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/cookiekit/pkg/config"
	"github.com/dmitrymomot/cookiekit/pkg/keysign"
)

const minSecretLength = 32

// Signer kinds accepted by Config.Signer.
const (
	SignerHMAC   = "hmac"
	SignerCipher = "cipher"
	// SignerSecureCookie tokens embed a timestamp and stop verifying after
	// gorilla/securecookie's default max age of 30 days, whatever MaxAge says.
	SignerSecureCookie = "securecookie"
)

// Config holds cookie manager configuration
type Config struct {
	// Secrets is a comma-separated list, newest first.
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Signer   string        `env:"COOKIE_SIGNER" envDefault:"hmac"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Signer:   SignerHMAC,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseSecrets splits the secrets string into a slice
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

func (c Config) newSigner(secrets []string) (Signer, error) {
	keys := make([][]byte, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		keys[i] = []byte(s)
	}

	switch strings.ToLower(c.Signer) {
	case "", SignerHMAC:
		k, err := keysign.New(keys)
		if err != nil {
			return nil, err
		}
		return k, nil
	case SignerCipher:
		k, err := keysign.NewCipher(keys)
		if err != nil {
			return nil, err
		}
		return k, nil
	case SignerSecureCookie:
		k, err := keysign.NewSecureCookie(keys)
		if err != nil {
			return nil, err
		}
		return k, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSigner, c.Signer)
	}
}

// NewFromConfig creates a new Manager from the provided Config.
// Only non-zero values from the config are applied, except HttpOnly which is
// always applied so COOKIE_HTTP_ONLY=false can turn it off. Without secrets the
// manager writes unsigned cookies.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	var signer Signer
	if secrets := cfg.parseSecrets(); len(secrets) > 0 {
		s, err := cfg.newSigner(secrets)
		if err != nil {
			return nil, err
		}
		signer = s
	}

	configOpts := make([]Option, 0, 6+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.MaxAge != 0 {
		configOpts = append(configOpts, WithMaxAge(cfg.MaxAge))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(cfg.Secure))
	}
	configOpts = append(configOpts, WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(signer, configOpts...), nil
}

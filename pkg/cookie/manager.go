package cookie

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
)

// Manager holds the signer and attribute defaults shared by all requests and
// hands out a fresh Codec per request.
type Manager struct {
	signer   Signer
	defaults Options
	logger   *slog.Logger
}

// New creates a Manager. A nil signer produces plain, unsigned cookies.
func New(signer Signer, opts ...Option) *Manager {
	return &Manager{
		signer:   signer,
		defaults: applyOptions(defaultOptions(), opts),
		logger:   discardLogger(),
	}
}

// WithLogger returns a copy of the manager whose codecs log to l.
func (m *Manager) WithLogger(l *slog.Logger) *Manager {
	mm := *m
	if l != nil {
		mm.logger = l.With(logger.Component("cookie"))
	}
	return &mm
}

// Codec binds a new Codec to the request headers h.
func (m *Manager) Codec(h HeaderReader) *Codec {
	return &Codec{
		header:   h,
		signer:   m.signer,
		defaults: m.defaults,
		logger:   m.logger,
	}
}

// Middleware attaches a request-scoped Codec to every request context.
// Handlers retrieve it with FromContext.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), m.Codec(r.Header))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

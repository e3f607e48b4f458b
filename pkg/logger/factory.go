package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config describes a logger in environment terms.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Service string `env:"LOG_SERVICE" envDefault:""`
}

// Option configures logger creation.
type Option func(*options)

type options struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets output format. It panics on unknown formats so that a
// misconfigured logger fails at startup.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option { return WithFormat(FormatText) }

func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithDevelopment logs text at debug level.
func WithDevelopment(service string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.format = FormatText
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
	}
}

// WithProduction logs JSON at info level.
func WithProduction(service string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.format = FormatJSON
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New creates a configured slog.Logger. Without options it writes JSON at
// info level to stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(handler)
}

// NewFromConfig builds a logger from cfg. Empty fields fall back to info
// level and JSON output. Extra options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	level := slog.LevelInfo
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, cfg.Level)
		}
	}

	format := Format(strings.ToLower(cfg.Format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatText {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	base := []Option{WithLevel(level), WithFormat(format)}
	if cfg.Service != "" {
		base = append(base, WithAttr(slog.String("service", cfg.Service)))
	}

	return New(append(base, opts...)...), nil
}

package logging

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// ReplaceFunc is the slog.HandlerOptions.ReplaceAttr signature.
type ReplaceFunc = func(groups []string, a slog.Attr) slog.Attr

// Common regex patterns for sensitive data.
var (
	// JWT pattern: three base64 segments separated by dots. Session cookies match it.
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)

	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)

	// bcrypt hashes, in case a user row is ever logged whole.
	bcryptPattern = regexp.MustCompile(`^\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}$`)
)

// DefaultRedactOptions returns the masq options applied to every handler.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("PasswordHash"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("Secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("accessToken"),
		masq.WithFieldName("access_token"),
		masq.WithFieldName("credential"),
		masq.WithFieldName("credentials"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("auth"),
		masq.WithFieldName("bearer"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("session"),
		masq.WithFieldName("dsn"),
		masq.WithFieldName("DSN"),
		masq.WithFieldName("privateKey"),
		masq.WithFieldName("secretKey"),
		masq.WithFieldName("secret_key"),

		masq.WithFieldPrefix("password"),
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
		masq.WithRegex(bcryptPattern),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions
// that redacts sensitive data. Extra options extend DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) ReplaceFunc {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}

// RedactingHandler applies a ReplaceAttr function in front of handlers that
// do not accept one, such as the pretty terminal handler.
type RedactingHandler struct {
	next    slog.Handler
	replace ReplaceFunc
	groups  []string
}

// NewRedactingHandler wraps next.
func NewRedactingHandler(next slog.Handler, replace ReplaceFunc) *RedactingHandler {
	return &RedactingHandler{next: next, replace: replace}
}

// Enabled defers to the wrapped handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle rewrites the record's attributes before passing it on.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.replace(h.groups, a))
		return true
	})

	return h.next.Handle(ctx, out)
}

// WithAttrs redacts attrs once, when they are bound.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.replace(h.groups, a)
	}

	return &RedactingHandler{next: h.next.WithAttrs(redacted), replace: h.replace, groups: h.groups}
}

// WithGroup records the group so replace sees the same path slog would pass.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	groups := append(append([]string{}, h.groups...), name)
	return &RedactingHandler{next: h.next.WithGroup(name), replace: h.replace, groups: groups}
}

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feedback-analyzer/internal/adapters/http/dto"
	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/logging"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/session"
)

// ContextKeyPrincipal is the gin context key for the caller's principal.
const ContextKeyPrincipal = "principal"

// Sessions evaluates the session cookie once per request and issues or
// clears it on login and logout.
type Sessions struct {
	manager    *session.Manager
	cookieName string
	secure     bool
}

// NewSessions creates the session middleware. Secure cookies are sent with
// SameSite=None so a frontend on another origin can use them; otherwise Lax.
func NewSessions(manager *session.Manager, cookieName string, secure bool) *Sessions {
	return &Sessions{manager: manager, cookieName: cookieName, secure: secure}
}

// Middleware stores the caller's principal in the gin and request contexts.
// A missing, expired or forged cookie yields the anonymous principal.
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Principal

		if token, err := c.Cookie(s.cookieName); err == nil && token != "" {
			parsed, parseErr := s.manager.Parse(token)
			if parseErr != nil {
				logging.FromContext(c.Request.Context()).DebugContext(c.Request.Context(), "session rejected",
					slog.Any("error", parseErr),
				)
			} else {
				p = parsed
			}
		}

		setPrincipal(c, p)
		c.Next()
	}
}

// Start issues a session for p and sets the cookie.
func (s *Sessions) Start(c *gin.Context, p domain.Principal) error {
	token, expires, err := s.manager.Issue(p)
	if err != nil {
		return err
	}

	s.setCookie(c, token, int(time.Until(expires).Seconds()))
	setPrincipal(c, p)

	return nil
}

// End clears the session cookie.
func (s *Sessions) End(c *gin.Context) {
	s.setCookie(c, "", -1)
	setPrincipal(c, domain.Principal{})
}

func (s *Sessions) setCookie(c *gin.Context, value string, maxAge int) {
	if s.secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}

	c.SetCookie(s.cookieName, value, maxAge, "/", "", s.secure, true)
}

func setPrincipal(c *gin.Context, p domain.Principal) {
	c.Set(ContextKeyPrincipal, p)

	if p.Role != domain.RoleAnonymous {
		c.Request = c.Request.WithContext(logging.With(c.Request.Context(), slog.String("role", string(p.Role))))
	}
}

// GetPrincipal returns the caller's principal; anonymous when the session
// middleware did not run.
func GetPrincipal(c *gin.Context) domain.Principal {
	if v, ok := c.Get(ContextKeyPrincipal); ok {
		if p, ok := v.(domain.Principal); ok {
			return p
		}
	}

	return domain.Principal{}
}

// RequireAdmin rejects callers without an admin session: 401 when signed
// out, 403 when signed in as a user.
func RequireAdmin() gin.HandlerFunc {
	return requirePrincipal(domain.Principal.IsAdmin, "admin session required")
}

func requirePrincipal(allowed func(domain.Principal) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)

		switch {
		case allowed(p):
			c.Next()
		case p.Role == domain.RoleAnonymous:
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, message)
		default:
			dto.AbortWithCode(c, dto.ErrorCodeForbidden, message)
		}
	}
}

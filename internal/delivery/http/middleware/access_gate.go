package middleware

import (
	"strings"

	"career-compass/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"

	// Single credential cookie pair; the gate reads CookieToken and logout
	// clears both.
	CookieToken        = "token"
	CookieRefreshToken = "refresh_token"

	PathDashboard = "/dashboard"
	PathLogin     = "/auth/login"
	PathRegister  = "/auth/register"
)

var publicExact = map[string]struct{}{
	"/":          {},
	"/health":    {},
	PathLogin:    {},
	PathRegister: {},
}

var publicPrefixes = []string{
	"/assets/",
	"/api/auth/",
	"/api/test/",
}

// Decision is the outcome of classifying one request path.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is the pure core of the gate: a two-state public/protected
// classifier with one side condition. Signed-in visitors are bounced off
// the auth pages; anonymous visitors are bounced off everything protected,
// carrying the original destination in the `from` parameter.
func Decide(path string, hasValidToken bool) Decision {
	if isPublic(path) {
		if hasValidToken && (path == PathLogin || path == PathRegister) {
			return Decision{RedirectTo: PathDashboard}
		}
		return Decision{Allow: true}
	}

	if hasValidToken {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: PathLogin + "?from=" + path}
}

func isPublic(path string) bool {
	if _, ok := publicExact[path]; ok {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AccessGate applies Decide to every request. Presence of the cookie is not
// enough: the token's HMAC signature and expiry are verified, and valid
// claims are exposed to downstream handlers via request locals.
type AccessGate struct {
	jwt jwt.Service
}

func NewAccessGate(jwtSvc jwt.Service) *AccessGate {
	return &AccessGate{jwt: jwtSvc}
}

func (g *AccessGate) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		var claims jwt.Claims
		valid := false
		if raw := c.Cookies(CookieToken); raw != "" {
			if parsed, err := g.jwt.ValidateAccessToken(raw); err == nil {
				claims = parsed
				valid = true
			}
		}

		d := Decide(c.Path(), valid)
		if !d.Allow {
			return c.Redirect().To(d.RedirectTo)
		}

		if valid {
			c.Locals(CtxUserIDKey, claims.UserID)
			c.Locals(CtxEmailKey, claims.Email)
		}
		return c.Next()
	}
}

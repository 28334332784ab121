package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"mizan/auth"
	"mizan/lang"
	"mizan/models"
)

const (
	sessionCookie = "session_id"
	tokenCookie   = "mizan_token"
	langCookie    = "hl"
)

// Context keys set by the middleware
const (
	ctxSessionID     = "session_id"
	ctxAuthView      = "auth_view"
	ctxUserGUID      = "user_guid"
	ctxAuthenticated = "authenticated"
	ctxLang          = "lang"
)

// SessionMiddleware gives every browser a session id cookie.
// UI state for the navigation bar is keyed on it.
func SessionMiddleware(c rweb.Context) error {
	sessionID, err := c.GetCookie(sessionCookie)
	if err != nil || uuid.Validate(sessionID) != nil {
		sessionID = uuid.NewString()
		if err := c.SetCookie(sessionCookie, sessionID); err != nil {
			logger.LogErr(err, "failed to set session cookie")
		}
	}
	c.Set(ctxSessionID, sessionID)
	return c.Next()
}

// JWTAuthMiddleware resolves the visitor's authentication view.
// The token comes from the session cookie or, for API clients, from a
// Bearer Authorization header. A missing or invalid token leaves the
// request as a guest; use RequireAuth to block.
func JWTAuthMiddleware(c rweb.Context) error {
	tokenString := ""
	if authHeader := c.Request().Header("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else if v, err := c.GetCookie(tokenCookie); err == nil {
		tokenString = v
	}

	view := auth.Guest
	if tokenString != "" {
		// Invalid tokens are not logged; they are routine after a secret rotation
		if claims, err := models.ValidateToken(tokenString); err == nil {
			view = claims.View()
		}
	}

	c.Set(ctxAuthView, view)
	c.Set(ctxAuthenticated, view.Authenticated)
	if view.User != nil {
		c.Set(ctxUserGUID, view.User.GUID)
	} else {
		c.Set(ctxUserGUID, "")
	}
	return c.Next()
}

// RequireAuth redirects guests to the sign-in page.
// Use after JWTAuthMiddleware.
func RequireAuth(c rweb.Context) error {
	if !authView(c).Authenticated {
		return redirect(c, "/login")
	}
	return c.Next()
}

// LanguageMiddleware picks the language for the request.
// Order: ?hl= override (persisted to the cookie), the hl cookie,
// Accept-Language, then the configured default.
func LanguageMiddleware(bundle *lang.Bundle, fallback lang.Code) rweb.Handler {
	return func(c rweb.Context) error {
		code, ok := lang.Parse(c.Request().QueryParam(langCookie))
		if ok {
			if err := c.SetCookie(langCookie, string(code)); err != nil {
				logger.LogErr(err, "failed to set language cookie")
			}
		} else if v, err := c.GetCookie(langCookie); err == nil {
			code, ok = lang.Parse(v)
		}
		if !ok {
			code = bundle.Resolve(c.Request().Header("Accept-Language"), fallback)
		}

		c.Set(ctxLang, code)
		c.Response().SetHeader("Content-Language", string(code))
		return c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	csp := []string{
		"default-src 'self'",
		"script-src 'self'",
		"style-src 'self'",
		"img-src 'self' data:",
		"connect-src 'self'",
		"form-action 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"ip", c.Request().Header("X-Forwarded-For"),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start),
		"error", err,
	)

	return err
}

// redirect answers with 303 See Other, the status for a GET after a POST.
func redirect(c rweb.Context, location string) error {
	c.Response().SetHeader("Location", location)
	c.SetStatus(http.StatusSeeOther)
	return nil
}

// Context accessors. They tolerate missing values so handlers keep
// working when mounted without the full middleware chain.

func sessionID(c rweb.Context) string {
	id, _ := c.Get(ctxSessionID).(string)
	return id
}

func authView(c rweb.Context) auth.View {
	v, ok := c.Get(ctxAuthView).(auth.View)
	if !ok {
		return auth.Guest
	}
	return v
}

func langCode(c rweb.Context) lang.Code {
	code, ok := c.Get(ctxLang).(lang.Code)
	if !ok {
		return lang.Primary
	}
	return code
}

package web

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"mizan/auth"
	"mizan/lang"
)

// languageFor returns the request's language provider.
// Toggling persists the new code in the hl cookie.
func languageFor(c rweb.Context) *lang.Preference {
	return lang.NewPreference(langCode(c), func(code lang.Code) {
		c.Set(ctxLang, code)
		if err := c.SetCookie(langCookie, string(code)); err != nil {
			logger.LogErr(err, "failed to set language cookie")
		}
	})
}

// cookieSession is the session provider backed by the JWT cookie.
type cookieSession struct {
	c    rweb.Context
	view auth.View
}

func sessionFor(c rweb.Context) *cookieSession {
	return &cookieSession{c: c, view: authView(c)}
}

func (s *cookieSession) View() auth.View {
	return s.view
}

// Logout clears the token cookie. The request continues as a guest.
func (s *cookieSession) Logout() {
	if err := s.c.SetCookie(tokenCookie, ""); err != nil {
		logger.LogErr(err, "failed to clear token cookie")
	}
	s.view = auth.Guest
	s.c.Set(ctxAuthView, s.view)
	s.c.Set(ctxAuthenticated, false)
	s.c.Set(ctxUserGUID, "")
}

var (
	_ lang.Provider = (*lang.Preference)(nil)
	_ auth.Provider = (*cookieSession)(nil)
)

package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"mizan/lang"
	"mizan/models"
	"mizan/ui"
	"mizan/web/api"
	"mizan/web/pages"
	authpages "mizan/web/pages/auth"
	"mizan/web/pages/shared"
)

// setupRoutes configures all application routes
func (st *site) setupRoutes(s *rweb.Server) {
	// Pages
	s.Get("/", st.page("", func(c rweb.Context, tr lang.Translator) element.Component {
		return pages.Home{Tr: tr}
	}))
	s.Get("/about", st.page("about.title", func(c rweb.Context, tr lang.Translator) element.Component {
		return pages.About{Tr: tr}
	}))
	s.Get("/services", st.page("services.title", func(c rweb.Context, tr lang.Translator) element.Component {
		return pages.Services{Tr: tr}
	}))
	s.Get("/contact", st.page("contact.title", func(c rweb.Context, tr lang.Translator) element.Component {
		return pages.Contact{Tr: tr}
	}))
	s.Get("/dashboard", st.dashboard)

	// Client portal session
	s.Get("/login", st.loginPage)
	s.Post("/login", st.login)
	s.Post("/logout", st.logout)

	// Navigation bar interactions
	s.Post("/ui/events", st.uiEvent)

	// JSON API
	s.Post("/api/v1/auth/login", api.Login)
	s.Get("/api/v1/auth/me", api.GetCurrentUser)
}

type contentFunc func(c rweb.Context, tr lang.Translator) element.Component

// page renders content inside the shell. Every full page load mounts a
// fresh navigation bar for the session, so both menus start closed.
func (st *site) page(titleKey string, content contentFunc) rweb.Handler {
	return func(c rweb.Context) error {
		tr := st.bundle.For(langCode(c))
		return c.WriteHTML(st.shell(c, tr, titleKey).Document(content(c, tr)))
	}
}

func (st *site) shell(c rweb.Context, tr lang.Translator, titleKey string) shared.Page {
	title := ""
	if titleKey != "" {
		title = tr.T(titleKey)
	}
	return shared.Page{
		Title:   title,
		Path:    c.Request().Path(),
		Tr:      tr,
		Nav:     st.store.Mount(sessionID(c)),
		Account: shared.AccountAreaFor(authView(c), tr, csrfToken(c)),
		Now:     st.now,
		CSRF:    csrfToken(c),
	}
}

func (st *site) dashboard(c rweb.Context) error {
	view := authView(c)
	if !view.Authenticated || view.User == nil {
		return redirect(c, "/login")
	}
	return st.page("dashboard.title", func(c rweb.Context, tr lang.Translator) element.Component {
		return pages.Dashboard{Tr: tr, User: *view.User}
	})(c)
}

func (st *site) loginPage(c rweb.Context) error {
	if authView(c).Authenticated {
		return redirect(c, "/dashboard")
	}
	return st.page("login.title", func(c rweb.Context, tr lang.Translator) element.Component {
		return authpages.LoginForm{Tr: tr, CSRF: csrfToken(c)}
	})(c)
}

// login handles the sign-in form post.
// A rejected attempt re-renders the form without saying which field was wrong.
func (st *site) login(c rweb.Context) error {
	form, err := url.ParseQuery(string(c.Request().Body()))
	if err != nil {
		form = url.Values{}
	}
	input := models.LoginInput{
		Username: strings.TrimSpace(form.Get("username")),
		Password: form.Get("password"),
	}

	failed := func(status int) error {
		c.SetStatus(status)
		return st.page("login.title", func(c rweb.Context, tr lang.Translator) element.Component {
			return authpages.LoginForm{Tr: tr, Failed: true, Username: input.Username, CSRF: csrfToken(c)}
		})(c)
	}

	if input.Username == "" || input.Password == "" {
		return failed(http.StatusBadRequest)
	}

	user, err := models.AuthenticateUser(input)
	if err != nil {
		if strings.Contains(err.Error(), "disabled") {
			return failed(http.StatusForbidden)
		}
		logger.LogErr(serr.Wrap(err, "authentication error"), "username", input.Username)
		return failed(http.StatusInternalServerError)
	}
	if user == nil {
		return failed(http.StatusUnauthorized)
	}

	token, err := models.GenerateToken(user)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to generate token"), "user_guid", user.GUID)
		return failed(http.StatusInternalServerError)
	}
	if err := c.SetCookie(tokenCookie, token); err != nil {
		logger.LogErr(err, "failed to set token cookie")
		return failed(http.StatusInternalServerError)
	}

	logger.Info("User signed in", "username", user.Username)
	return redirect(c, "/dashboard")
}

// logout is the sign-out control of the navigation bar.
func (st *site) logout(c rweb.Context) error {
	session := sessionFor(c)
	err := st.store.With(sessionID(c), func(p ui.Page) error {
		p.Nav.SignOut(session)
		return nil
	})
	if err != nil {
		logger.LogErr(err, "failed to sign out")
	}
	return redirect(c, "/")
}

// uiEvent applies one browser interaction to the session's navigation bar
// and answers with the re-rendered bar.
// A language change also sets X-Reload, since the whole document changes
// direction.
func (st *site) uiEvent(c rweb.Context) error {
	req := c.Request()
	ev, err := ui.DecodeEvent(req.Body(), ui.IsMsgPack(req.Header("Content-Type"), req.Header("X-Body-Encoding")))
	if err != nil {
		logger.Debug("Rejected UI event", "error", err.Error())
		return api.WriteError(c, http.StatusBadRequest, "invalid event")
	}

	language := languageFor(c)
	before := language.Current()

	var snap ui.Snapshot
	err = st.store.With(sessionID(c), func(p ui.Page) error {
		if err := ui.Apply(ev, p.Nav, p.Hub, language); err != nil {
			return err
		}
		snap = p.Nav.Snapshot()
		return nil
	})
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to apply UI event"), "type", string(ev.Type))
		return api.WriteError(c, http.StatusBadRequest, "invalid event")
	}

	if language.Current() != before {
		c.Response().SetHeader("X-Reload", "1")
	}

	tr := st.bundle.For(language.Current())
	page := shared.Page{
		Path:    eventLocation(ev),
		Tr:      tr,
		Nav:     snap,
		Account: shared.AccountAreaFor(authView(c), tr, csrfToken(c)),
		Now:     st.now,
	}
	return c.WriteHTML(page.NavFragment())
}

// eventLocation is the page an event came from, "/" unless it names a
// page of the site.
func eventLocation(ev ui.Event) string {
	loc := ev.Location
	if i := strings.IndexAny(loc, "?#"); i >= 0 {
		loc = loc[:i]
	}
	if !shared.KnownPath(loc) {
		return "/"
	}
	return loc
}

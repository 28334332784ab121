// Package auth holds the client-portal sign-in page.
package auth

import (
	"html"

	"github.com/rohanthewiz/element"

	"mizan/lang"
	"mizan/web/pages/comps"
	"mizan/web/pages/shared"
)

// LoginForm is the content of /login. Failed re-renders the form with an
// error after a rejected attempt, keeping the username.
type LoginForm struct {
	Tr       lang.Translator
	Failed   bool
	Username string
	CSRF     string
}

func (p LoginForm) Render(b *element.Builder) (x any) {
	b.DivClass("auth-card").R(
		element.RenderComponents(b, comps.Heading{Title: p.Tr.T("login.title")}),

		b.Wrap(func() {
			if p.Failed {
				b.Div("class", "auth-error", "id", "error-message", "role", "alert").T(p.Tr.T("login.failed"))
			}
		}),

		b.Form("class", "auth-form", "id", "login-form", "method", "post", "action", "/login").R(
			shared.CSRFField(b, p.CSRF),
			b.DivClass("form-group").R(
				b.LabelClass("form-label", "for", "username").T(p.Tr.T("login.username")),
				b.Input("type", "text", "class", "form-input", "id", "username",
					"name", "username", "required", "required", "autocomplete", "username",
					"value", html.EscapeString(p.Username)),
			),
			b.DivClass("form-group").R(
				b.LabelClass("form-label", "for", "password").T(p.Tr.T("login.password")),
				b.Input("type", "password", "class", "form-input", "id", "password",
					"name", "password", "required", "required", "autocomplete", "current-password"),
			),
			b.Button("type", "submit", "class", "btn btn-primary auth-submit").T(p.Tr.T("login.submit")),
		),
	)
	return
}

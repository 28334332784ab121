package shared

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rohanthewiz/element"

	"mizan/auth"
	"mizan/lang"
)

// FallbackGlyph is shown in the avatar when the user has no first name.
const FallbackGlyph = "?"

// AvatarGlyph is the upper-cased first letter of the first name.
func AvatarGlyph(firstName string) string {
	firstName = strings.TrimSpace(firstName)
	r, _ := utf8.DecodeRuneInString(firstName)
	if r == utf8.RuneError {
		return FallbackGlyph
	}
	return string(unicode.ToUpper(r))
}

// AccountArea is the authentication-dependent part of the navigation bar.
// GuestArea and MemberArea are the only implementations.
type AccountArea interface {
	Render(b *element.Builder) any
	RenderMobile(b *element.Builder) any
	accountArea()
}

// AccountAreaFor picks the variant for the session view. csrf is the
// request token the sign-out form posts back.
func AccountAreaFor(v auth.View, tr lang.Translator, csrf string) AccountArea {
	if !v.Authenticated {
		return GuestArea{Tr: tr}
	}
	name := v.FirstName()
	if name == "" && v.User != nil {
		name = v.User.Username
	}
	return MemberArea{Tr: tr, Glyph: AvatarGlyph(v.FirstName()), Name: name, CSRF: csrf}
}

// GuestArea offers the sign-in link.
type GuestArea struct {
	Tr lang.Translator
}

func (GuestArea) accountArea() {}

func (g GuestArea) Render(b *element.Builder) any {
	b.DivClass("account-area guest").R(
		b.A("href", "/login", "class", "btn btn-outline sign-in").T(g.Tr.T("nav.signin")),
	)
	return nil
}

func (g GuestArea) RenderMobile(b *element.Builder) any {
	b.DivClass("mobile-account guest").R(
		b.A("href", "/login", "class", "mobile-link sign-in", "data-ui-event", "navigate").T(g.Tr.T("nav.signin")),
	)
	return nil
}

// MemberArea shows the dashboard link, the avatar and the sign-out control.
type MemberArea struct {
	Tr    lang.Translator
	Glyph string
	Name  string
	CSRF  string
}

func (MemberArea) accountArea() {}

func (m MemberArea) Render(b *element.Builder) any {
	b.DivClass("account-area member").R(
		b.A("href", "/dashboard", "class", "dashboard-link").T(m.Tr.T("nav.dashboard")),
		b.Span("class", "avatar").T(html.EscapeString(m.Glyph)),
		b.Form("method", "post", "action", "/logout", "class", "sign-out-form").R(
			CSRFField(b, m.CSRF),
			b.Button("type", "submit", "class", "btn btn-link sign-out").T(m.Tr.T("nav.signout")),
		),
	)
	return nil
}

func (m MemberArea) RenderMobile(b *element.Builder) any {
	b.DivClass("mobile-account member").R(
		b.DivClass("mobile-user").R(
			b.Span("class", "avatar").T(html.EscapeString(m.Glyph)),
			b.Span("class", "mobile-user-name").T(html.EscapeString(m.Name)),
		),
		b.A("href", "/dashboard", "class", "mobile-link dashboard-link", "data-ui-event", "navigate").T(m.Tr.T("nav.dashboard")),
		b.Form("method", "post", "action", "/logout", "class", "sign-out-form").R(
			CSRFField(b, m.CSRF),
			b.Input("type", "hidden", "name", "from", "value", "mobile"),
			b.Button("type", "submit", "class", "mobile-link sign-out").T(m.Tr.T("nav.signout")),
		),
	)
	return nil
}

// CSRFFieldName is the form field carrying the request token.
const CSRFFieldName = "csrf_token"

// CSRFField renders the hidden request-token input of a POST form.
func CSRFField(b *element.Builder, token string) any {
	b.Input("type", "hidden", "name", CSRFFieldName, "value", html.EscapeString(token))
	return nil
}

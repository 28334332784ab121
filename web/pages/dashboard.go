package pages

import (
	"html"

	"github.com/rohanthewiz/element"

	"mizan/auth"
	"mizan/lang"
	"mizan/web/pages/comps"
)

// Dashboard is the client portal landing page for signed-in users.
type Dashboard struct {
	Tr   lang.Translator
	User auth.User
}

func (d Dashboard) Render(b *element.Builder) (x any) {
	name := d.User.FirstName
	if name == "" {
		name = d.User.Username
	}

	element.RenderComponents(b, comps.Heading{Title: d.Tr.T("dashboard.title")})
	b.DivClass("dashboard").R(
		b.PClass("welcome").T(d.Tr.T("dashboard.welcome")+", "+html.EscapeString(name)),
		b.PClass("empty-state").T(d.Tr.T("dashboard.empty")),
	)
	return
}

// Package pages contains the content rendered inside the site shell.
package pages

import (
	"github.com/rohanthewiz/element"

	"mizan/lang"
	"mizan/web/pages/comps"
)

// Home is the landing page content.
type Home struct {
	Tr lang.Translator
}

func (h Home) Render(b *element.Builder) (x any) {
	b.DivClass("home").R(
		element.RenderComponents(b,
			comps.Heading{Title: h.Tr.T("home.title"), Lead: h.Tr.T("home.lead")},
		),
		b.A("href", "/contact", "class", "btn btn-primary cta").T(h.Tr.T("home.cta")),
		element.RenderComponents(b, comps.CardList{Items: serviceNames(h.Tr)}),
	)
	return
}

func serviceNames(tr lang.Translator) []string {
	keys := []string{
		"services.corporate",
		"services.litigation",
		"services.contracts",
		"services.arbitration",
		"services.ip",
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, tr.T(k))
	}
	return out
}

package pages

import (
	"github.com/rohanthewiz/element"

	"mizan/lang"
	"mizan/web/pages/comps"
)

type About struct {
	Tr lang.Translator
}

func (a About) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, comps.Heading{Title: a.Tr.T("about.title"), Lead: a.Tr.T("about.lead")})
	return
}

type Services struct {
	Tr lang.Translator
}

func (s Services) Render(b *element.Builder) (x any) {
	element.RenderComponents(b,
		comps.Heading{Title: s.Tr.T("services.title"), Lead: s.Tr.T("services.lead")},
		comps.CardList{Items: serviceNames(s.Tr)},
	)
	return
}

type Contact struct {
	Tr lang.Translator
}

func (c Contact) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, comps.Heading{Title: c.Tr.T("contact.title"), Lead: c.Tr.T("contact.lead")})
	b.DivClass("contact-hours").T(c.Tr.T("contact.hours"))
	return
}

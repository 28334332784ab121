package shared

import (
	"strconv"
	"time"

	"github.com/rohanthewiz/element"

	"mizan/lang"
)

// Footer is stateless: it reads the clock on every render.
type Footer struct {
	Tr  lang.Translator
	Now func() time.Time
}

var footerServices = []string{
	"services.corporate",
	"services.litigation",
	"services.contracts",
	"services.arbitration",
	"services.ip",
}

type socialLink struct {
	Name string
	Href string
	Icon string
}

var socialLinks = []socialLink{
	{Name: "LinkedIn", Href: "https://www.linkedin.com/company/mizan-legal", Icon: "in"},
	{Name: "X", Href: "https://x.com/mizanlegal", Icon: "X"},
	{Name: "Instagram", Href: "https://www.instagram.com/mizanlegal", Icon: "ig"},
}

// Placeholder contact details
const (
	contactPhone = "+966 11 000 0000"
	contactEmail = "info@mizan-legal.example"
)

// CopyrightLine is the footer's last line for the given year.
func CopyrightLine(tr lang.Translator, year int) string {
	return "&copy; " + strconv.Itoa(year) + " " + tr.T("site.name") + ". " + tr.T("footer.rights")
}

func (f Footer) Render(b *element.Builder) any {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	b.Footer("id", "site-footer", "class", "site-footer", "dir", string(lang.DirectionOf(f.Tr.Code()))).R(
		b.DivClass("footer-grid").R(
			b.DivClass("footer-brand").R(
				b.A("href", "/", "class", "brand").R(
					b.T(logoSVG),
					b.SpanClass("brand-name").T(f.Tr.T("site.name")),
				),
				b.PClass("footer-about").T(f.Tr.T("footer.about")),
			),
			b.DivClass("footer-services").R(
				b.H3().T(f.Tr.T("footer.services")),
				b.Ul().R(
					element.ForEach(footerServices, func(key string) {
						b.Li().T(f.Tr.T(key))
					}),
				),
			),
			b.DivClass("footer-contact").R(
				b.H3().T(f.Tr.T("footer.contact")),
				b.Ul().R(
					b.Li().R(
						b.Span("class", "contact-label").T(f.Tr.T("contact.phone")),
						b.A("href", "tel:+966110000000", "dir", "ltr").T(contactPhone),
					),
					b.Li().R(
						b.Span("class", "contact-label").T(f.Tr.T("contact.email")),
						b.A("href", "mailto:"+contactEmail).T(contactEmail),
					),
					b.Li().R(
						b.Span("class", "contact-label").T(f.Tr.T("contact.address")),
						b.Span().T(f.Tr.T("contact.address.value")),
					),
					b.Li("class", "contact-hours").T(f.Tr.T("contact.hours")),
				),
			),
			b.DivClass("footer-social").R(
				b.H3().T(f.Tr.T("footer.follow")),
				b.DivClass("social-links").R(
					element.ForEach(socialLinks, func(s socialLink) {
						b.A("href", s.Href, "class", "social-link", "aria-label", s.Name,
							"target", "_blank", "rel", "noopener noreferrer").T(s.Icon)
					}),
				),
			),
		),
		b.P("class", "copyright").T(CopyrightLine(f.Tr, now().Year())),
	)
	return nil
}

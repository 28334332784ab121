package shared

import (
	"html"

	"github.com/rohanthewiz/element"

	"mizan/lang"
	"mizan/ui"
)

// NavigationBar renders the site header from a snapshot of its state.
// Interactive controls carry data-ui-event attributes that the page script
// posts to /ui/events; the response replaces the #site-nav element.
type NavigationBar struct {
	CurrentPath string
	Tr          lang.Translator
	State       ui.Snapshot
	Account     AccountArea
}

func (n NavigationBar) Render(b *element.Builder) any {
	listening := "false"
	if n.State.Listening {
		listening = "true"
	}

	b.Nav("id", "site-nav", "class", "navbar",
		"dir", string(n.Tr.Dir()),
		"data-listening", listening,
		"data-mobile", n.State.Mobile.String(),
		"data-location", html.EscapeString(n.CurrentPath)).R(
		b.DivClass("nav-inner").R(
			n.renderBrand(b),
			n.renderLinks(b),
			b.DivClass("nav-actions").R(
				n.renderLanguageMenu(b),
				b.Wrap(func() {
					if n.Account != nil {
						n.Account.Render(b)
					}
				}),
				n.renderMobileToggle(b),
			),
		),
		n.renderMobileMenu(b),
	)
	return nil
}

func (n NavigationBar) renderBrand(b *element.Builder) any {
	b.A("href", "/", "class", "brand", "id", "brand").R(
		b.T(logoSVG),
		b.SpanClass("brand-name").T(n.Tr.T("site.name")),
	)
	return nil
}

func (n NavigationBar) renderLinks(b *element.Builder) any {
	b.UlClass("nav-links").R(
		element.ForEach(MainLinks, func(l NavLink) {
			b.Li().R(
				b.A("href", l.Path, "id", "nav-"+l.ID, "class", linkClass(l.Path, n.CurrentPath)).T(n.Tr.T(l.LabelKey)),
			)
		}),
	)
	return nil
}

func (n NavigationBar) renderLanguageMenu(b *element.Builder) any {
	expanded := "false"
	if n.State.Language == ui.Open {
		expanded = "true"
	}

	b.Div("id", n.State.MenuID, "class", "lang-menu").R(
		b.Button("type", "button", "id", "lang-toggle", "class", "lang-toggle",
			"data-ui-event", "lang-toggle",
			"aria-haspopup", "true",
			"aria-expanded", expanded,
			"aria-label", n.Tr.T("lang.switch")).R(
			b.T(globeSVG),
			b.Span("class", "lang-current").T(n.Tr.T("lang."+string(n.Tr.Code()))),
		),
		b.Wrap(func() {
			if n.State.Language != ui.Open {
				return
			}
			b.Ul("class", "lang-options", "role", "menu").R(
				element.ForEach([]lang.Code{lang.Arabic, lang.English}, func(c lang.Code) {
					class := "lang-option"
					if c == n.Tr.Code() {
						class += " current"
					}
					b.Li().R(
						b.Button("type", "button", "id", "lang-option-"+string(c), "class", class,
							"role", "menuitem",
							"data-ui-event", "lang-select",
							"data-target", string(c)).T(n.Tr.T("lang."+string(c))),
					)
				}),
			)
		}),
	)
	return nil
}

func (n NavigationBar) renderMobileToggle(b *element.Builder) any {
	label, icon, expanded := n.Tr.T("nav.menu"), menuSVG, "false"
	if n.State.Mobile == ui.Open {
		label, icon, expanded = n.Tr.T("nav.close"), closeSVG, "true"
	}

	b.Button("type", "button", "id", "mobile-toggle", "class", "mobile-toggle",
		"data-ui-event", "mobile-toggle",
		"aria-controls", "mobile-menu",
		"aria-expanded", expanded,
		"aria-label", label).R(
		b.T(icon),
	)
	return nil
}

func (n NavigationBar) renderMobileMenu(b *element.Builder) any {
	if n.State.Mobile != ui.Open {
		return nil
	}

	b.Div("id", "mobile-menu", "class", "mobile-menu").R(
		b.UlClass("mobile-links").R(
			element.ForEach(MainLinks, func(l NavLink) {
				b.Li().R(
					b.A("href", l.Path, "class", "mobile-"+linkClass(l.Path, n.CurrentPath),
						"data-ui-event", "navigate").T(n.Tr.T(l.LabelKey)),
				)
			}),
		),
		b.Wrap(func() {
			if n.Account != nil {
				n.Account.RenderMobile(b)
			}
		}),
	)
	return nil
}

const logoSVG = `<svg class="logo" width="36" height="36" viewBox="0 0 48 48" aria-hidden="true"><rect width="48" height="48" rx="10" fill="#1f3a5f"/><path d="M24 9v28M14 37h20M12 16h24M12 16l-5 11h10zM36 16l-5 11h10z" stroke="#d4af37" stroke-width="2.2" fill="none" stroke-linecap="round" stroke-linejoin="round"/></svg>`

const globeSVG = `<svg width="18" height="18" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><circle cx="12" cy="12" r="10"/><path d="M2 12h20M12 2a15 15 0 0 1 0 20M12 2a15 15 0 0 0 0 20"/></svg>`

const menuSVG = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M3 6h18M3 12h18M3 18h18"/></svg>`

const closeSVG = `<svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M6 6l12 12M18 6L6 18"/></svg>`

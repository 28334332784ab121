// Package shared contains the site shell shared by every page:
// navigation bar, footer and the layout that composes them.
package shared

import (
	"html"
	"time"

	"github.com/rohanthewiz/element"

	"mizan/lang"
	"mizan/ui"
)

// Page carries what every page needs to render the shell around its
// content. Embed it in page types.
type Page struct {
	Title   string
	Path    string
	Tr      lang.Translator
	Nav     ui.Snapshot
	Account AccountArea
	Now     func() time.Time
	CSRF    string // request token, read by the page script
}

// NavigationBar builds the header for this page.
func (p Page) NavigationBar() NavigationBar {
	return NavigationBar{CurrentPath: p.Path, Tr: p.Tr, State: p.Nav, Account: p.Account}
}

func (p Page) Footer() Footer {
	return Footer{Tr: p.Tr, Now: p.Now}
}

// Document renders the full HTML document with content in the shell.
func (p Page) Document(content element.Component) string {
	b := element.NewBuilder()

	title := p.Tr.T("site.name")
	if p.Title != "" {
		title = p.Title + " | " + title
	}

	b.Html("lang", string(p.Tr.Code()), "dir", string(p.Tr.Dir())).R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			b.Link("rel", "icon", "href", "/favicon.ico"),
			b.Meta("name", "csrf-token", "content", html.EscapeString(p.CSRF)),
			b.Link("rel", "stylesheet", "href", "/static/css/site.css?v=1"),
		),
		b.Body().R(
			element.RenderComponents(b, Shell{
				Header:  p.NavigationBar(),
				Content: content,
				Footer:  p.Footer(),
			}),
			b.Script("src", "/static/js/shell.js?v=2", "defer").R(),
		),
	)

	return b.String()
}

// NavFragment renders only the navigation bar, for event responses.
func (p Page) NavFragment() string {
	b := element.NewBuilder()
	p.NavigationBar().Render(b)
	return b.String()
}

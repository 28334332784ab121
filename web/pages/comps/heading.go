package comps

import "github.com/rohanthewiz/element"

// Heading is the title block at the top of a content page.
type Heading struct {
	Title string
	Lead  string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.Div("class", "page-heading").R(
		b.H1().T(h.Title),
		b.Wrap(func() {
			if h.Lead != "" {
				b.PClass("lead").T(h.Lead)
			}
		}),
	)
	return
}

// CardList renders a grid of titled cards.
type CardList struct {
	Items []string
}

func (c CardList) Render(b *element.Builder) (x any) {
	b.UlClass("card-list").R(
		element.ForEach(c.Items, func(item string) {
			b.Li("class", "card").T(item)
		}),
	)
	return
}

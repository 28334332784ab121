package shared

import "github.com/rohanthewiz/element"

// Shell stacks header, content and footer; the content region grows to
// fill the viewport while header and footer keep their natural height.
type Shell struct {
	Header  element.Component
	Content element.Component
	Footer  element.Component
}

func (s Shell) Render(b *element.Builder) any {
	b.Div("id", "page-shell", "class", "page-shell").R(
		renderSlot(b, s.Header),
		b.Main("id", "main", "class", "page-content").R(
			renderSlot(b, s.Content),
		),
		renderSlot(b, s.Footer),
	)
	return nil
}

func renderSlot(b *element.Builder, c element.Component) any {
	if c == nil {
		return nil
	}
	return c.Render(b)
}

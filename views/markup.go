package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes one component's HTML. The first write error sticks and
// every later call becomes a no-op, so component bodies read top to bottom
// without error checks.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

// component turns a markup body into a templ.Component.
func component(body func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		body(m)
		return m.err
	})
}

// raw writes trusted markup verbatim.
func (m *markup) raw(parts ...string) {
	for _, p := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, p)
	}
}

// text writes s escaped for element content.
func (m *markup) text(parts ...string) {
	for _, p := range parts {
		m.raw(templ.EscapeString(p))
	}
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a URL attribute. Values with an unsafe scheme are replaced by
// templ's sanitised placeholder.
func (m *markup) url(name, u string) {
	m.attr(name, string(templ.URL(u)))
}

// flag writes a boolean attribute when on is set.
func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" ", name)
	}
}

// render writes a child component.
func (m *markup) render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// hidden writes a hidden form input.
func (m *markup) hidden(name, value string) {
	m.raw(`<input type="hidden"`)
	m.attr("name", name)
	m.attr("value", value)
	m.raw(">")
}

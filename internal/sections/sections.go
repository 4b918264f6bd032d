// Package sections renders the landing page sections as gomponents nodes.
//
// Every editable text node carries data-editable with the key of the content
// field it shows, so an external editor can address it.
package sections

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Component adapts a node to templ.Component for the page framework.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Editable is a span showing text under an editable key.
func Editable(key, text string) g.Node {
	return Span(g.Attr("data-editable", key), g.Text(text))
}

// editableHref marks a link target as editable.
func editableHref(key, href string) g.Node {
	return g.Group([]g.Node{
		Href(href),
		g.Attr("data-editable-href", key),
		g.Attr("data-href", href),
	})
}

func icon(name, class string) g.Node {
	return Span(
		Class(strings.TrimSpace("iconify inline-block "+class)),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// classes joins the non-empty class names.
func classes(names ...string) g.Node {
	var parts []string
	for _, n := range names {
		if n != "" {
			parts = append(parts, n)
		}
	}
	return Class(strings.Join(parts, " "))
}

func sectionHeader(badge, title, highlight, description string, extra ...g.Node) g.Node {
	return Div(
		Class("text-center max-w-3xl mx-auto mb-16"),
		Span(Class("badge badge-outline mb-4 px-4 py-2"), Editable("badge", badge)),
		H2(
			Class("text-3xl sm:text-4xl lg:text-5xl font-bold mb-6"),
			Editable("mainTitle", title),
			Span(
				Class("block bg-gradient-to-r from-primary to-primary/60 bg-clip-text text-transparent"),
				Editable("mainTitleHighlight", highlight),
			),
		),
		P(Class("text-lg text-muted-foreground leading-relaxed mb-8"), Editable("mainDescription", description)),
		g.Group(extra),
	)
}

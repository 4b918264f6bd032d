package sections

import (
	"net/http"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorFragment is swapped into the page when an htmx request fails.
func ErrorFragment(status int, message string) g.Node {
	return Div(
		Class("alert alert-error my-4"),
		g.Attr("role", "alert"),
		icon("lucide:alert-triangle", "size-5"),
		Span(g.Text(message)),
		g.If(status >= http.StatusInternalServerError, Span(Class("text-xs opacity-70"), g.Textf("(%d)", status))),
	)
}

func ErrorPage(status int, message string) g.Node {
	return Layout(PageConfig{Title: http.StatusText(status) + " - WarehousePro"},
		Main(
			Class("container mx-auto px-4 py-32 text-center"),
			P(Class("text-6xl font-bold text-primary"), g.Textf("%d", status)),
			H1(Class("mt-4 text-2xl font-semibold"), g.Text(message)),
			A(Href("/"), Class("btn btn-primary mt-8"), g.Text("Back to home")),
		),
	)
}

package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/warehousepro/landing/internal/content"
)

func FeaturesSection(cfg content.Features) g.Node {
	return Section(
		ID("features"),
		Class("py-24 bg-muted/30"),
		g.Attr("data-editable", "features"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeader(cfg.Badge, cfg.MainTitle, cfg.MainTitleHighlight, cfg.MainDescription),
			Div(
				Class("grid grid-cols-1 gap-6 sm:grid-cols-2 lg:grid-cols-4 max-w-7xl mx-auto"),
				g.Group(g.Map(cfg.Items(), func(f content.FeatureItem) g.Node {
					return Div(
						Class("card border-border/50 p-6 hover:border-primary/20 transition-colors"),
						Div(
							Class("mb-4 size-12 rounded-lg bg-primary/10 flex items-center justify-center"),
							icon(f.Icon, "size-6 text-primary"),
						),
						H3(Class("font-semibold mb-2"), Editable(f.Key+"Title", f.Title)),
						P(Class("text-sm text-muted-foreground"), Editable(f.Key+"Description", f.Description)),
					)
				})),
			),
		),
	)
}

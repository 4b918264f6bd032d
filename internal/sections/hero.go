package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/warehousepro/landing/internal/content"
)

func HeroSection(cfg content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("relative overflow-hidden bg-background"),
		g.Attr("data-editable", "hero"),

		Div(Class("absolute inset-0 bg-gradient-to-br from-primary/5 via-transparent to-accent/10")),

		Div(
			Class("container relative mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("grid items-center gap-12 py-20 sm:py-24 lg:grid-cols-2 lg:gap-20 lg:py-32"),

				Div(
					Class("flex flex-col justify-center"),
					Div(
						Class("mb-4 inline-flex w-fit items-center gap-2 rounded-full border border-primary/20 bg-primary/10 px-3 py-1.5 text-sm font-medium text-primary"),
						icon("lucide:shield", "h-3 w-3"),
						Editable("badge", cfg.Badge),
					),
					H1(
						Class("text-4xl font-bold tracking-tight sm:text-5xl lg:text-6xl"),
						Editable("title", cfg.Title),
						Span(
							Class("block bg-gradient-to-r from-primary to-primary/60 bg-clip-text text-transparent"),
							g.Attr("data-editable", "titleHighlight"),
							g.Text(cfg.TitleHighlight),
						),
					),
					P(
						Class("mt-6 max-w-xl text-lg leading-relaxed text-muted-foreground"),
						g.Attr("data-editable", "description"),
						g.Text(cfg.Description),
					),
					Ul(
						Class("mt-6 grid gap-3 text-sm text-muted-foreground sm:grid-cols-2"),
						g.Group(heroFeatures(cfg.Features)),
					),
					Div(
						Class("mt-8 flex flex-col gap-4 sm:flex-row"),
						A(
							Class("btn btn-primary btn-lg group px-7 text-base"),
							editableHref("primaryCTAHref", cfg.PrimaryCTAHref),
							Editable("primaryCTA", cfg.PrimaryCTA),
							icon("lucide:arrow-right", "ml-2 size-5 transition-transform group-hover:translate-x-1"),
						),
						A(
							Class("btn btn-outline btn-lg text-base"),
							editableHref("secondaryCTAHref", cfg.SecondaryCTAHref),
							icon("lucide:play", "mr-2 size-5"),
							Editable("secondaryCTA", cfg.SecondaryCTA),
						),
					),
					Div(
						Class("mt-8 flex flex-wrap items-center gap-6 text-sm text-muted-foreground"),
						Div(Class("flex items-center gap-2"), icon("lucide:shield", "size-4 text-primary"), Editable("trustBadge1", cfg.TrustBadge1)),
						Div(Class("flex items-center gap-2"), icon("lucide:clock", "size-4 text-primary"), Editable("trustBadge2", cfg.TrustBadge2)),
					),
				),

				Div(
					Class("relative"),
					Div(
						Class("relative overflow-hidden rounded-2xl border bg-card shadow-2xl"),
						Div(
							Class("aspect-[16/10] relative"),
							Img(
								Src(cfg.ImageURL),
								Alt(cfg.ImageAlt),
								Class("absolute inset-0 h-full w-full object-cover"),
								g.Attr("data-editable-src", "imageUrl"),
							),
						),
						Div(
							Class("absolute left-4 top-4 rounded-full bg-background/80 px-3 py-1 text-xs font-medium shadow"),
							Editable("imageAlt", cfg.ImageAlt),
						),
					),
					statCard("absolute -right-6 -top-6", "Cost Reduction", "40% Savings"),
					statCard("absolute -left-6 -bottom-6", "Efficiency Boost", "Real-time Data"),
				),
			),
		),
	)
}

func statCard(position, label, value string) g.Node {
	return Div(
		Class(position+" hidden w-36 rounded-xl border bg-background/90 p-3 shadow-xl sm:block"),
		P(Class("text-xs text-muted-foreground"), g.Text(label)),
		P(Class("text-sm"), Span(Class("font-semibold text-primary"), g.Text(value))),
	)
}

func heroFeatures(features []string) []g.Node {
	items := make([]g.Node, 0, len(features))
	for i, item := range features {
		items = append(items, Li(
			Class("flex items-center gap-2"),
			icon("lucide:check-circle-2", "size-4 text-primary"),
			Editable(fmt.Sprintf("features[%d]", i), item),
		))
	}
	return items
}

package sections

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/warehousepro/landing/internal/content"
	"github.com/warehousepro/landing/internal/demo"
)

const (
	toggleActive   = "bg-background text-foreground shadow-sm"
	toggleInactive = "text-muted-foreground hover:text-foreground"
)

// PricingSection renders the plans with the given billing cycle selected.
// The toggle buttons fetch pricingURL?billing=<cycle> and swap the section.
func PricingSection(cfg content.Pricing, cycle demo.BillingCycle, pricingURL string) g.Node {
	return Section(
		ID("pricing"),
		Class("py-24 bg-background"),
		g.Attr("data-billing", cycle.String()),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeader(cfg.Badge, cfg.MainTitle, cfg.MainTitleHighlight, cfg.MainDescription,
				Div(
					Class("inline-flex items-center p-1 bg-muted rounded-lg"),
					g.Attr("role", "group"),
					billingButton(pricingURL, demo.Monthly, cycle, "",
						Editable("billingMonthly", cfg.BillingMonthly),
					),
					billingButton(pricingURL, demo.Annual, cycle, "flex items-center gap-2",
						Editable("billingAnnual", cfg.BillingAnnual),
						Span(Class("badge badge-secondary text-xs"), Editable("billingAnnualBadge", cfg.BillingAnnualBadge)),
					),
				),
			),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-3 gap-8 max-w-7xl mx-auto"),
				g.Group(g.Map(cfg.Plans(), func(p content.Plan) g.Node {
					return planCard(p, cfg.Plan2Trial)
				})),
			),
			Div(
				Class("text-center mt-16 max-w-2xl mx-auto"),
				H3(Class("text-xl font-semibold mb-4"), Editable("bottomTitle", cfg.BottomTitle)),
				P(Class("text-muted-foreground mb-6"), Editable("bottomDescription", cfg.BottomDescription)),
				A(
					Class("btn btn-outline btn-lg"),
					editableHref("bottomCTAHref", cfg.BottomCTAHref),
					Editable("bottomCTA", cfg.BottomCTA),
				),
			),
		),
	)
}

func billingButton(pricingURL string, cycle, selected demo.BillingCycle, extra string, children ...g.Node) g.Node {
	state := toggleInactive
	if cycle == selected {
		state = toggleActive
	}
	return Button(
		Type("button"),
		classes("px-4 py-2 text-sm font-medium rounded-md transition-all", extra, state),
		g.Attr("aria-pressed", boolString(cycle == selected)),
		g.Attr("hx-get", pricingURL+"?"+url.Values{"billing": {cycle.String()}}.Encode()),
		g.Attr("hx-target", "#pricing"),
		g.Attr("hx-swap", "outerHTML"),
		g.Group(children),
	)
}

func planCard(p content.Plan, trial string) g.Node {
	state := "border-border/50 hover:border-primary/20"
	if p.Popular {
		state = "border-primary/50 shadow-lg shadow-primary/10 lg:scale-105"
	}
	btn := "btn btn-outline w-full text-base py-6"
	if p.Popular {
		btn = "btn btn-primary w-full text-base py-6 bg-primary hover:bg-primary/90"
	}
	return Div(
		classes("card relative overflow-hidden transition-all duration-300 hover:shadow-lg", state),
		g.If(p.Popular, g.Group([]g.Node{
			Div(
				Class("absolute top-0 left-1/2 transform -translate-x-1/2 -translate-y-1/2 z-10"),
				Span(
					Class("badge bg-primary text-primary-foreground px-4 py-1 shadow-lg"),
					icon("lucide:star", "size-3 mr-1 fill-current"),
					Editable(p.Key+"Badge", p.Badge),
				),
			),
			Div(Class("absolute inset-0 bg-gradient-to-br from-primary/5 via-transparent to-accent/5 pointer-events-none")),
		})),
		Div(
			classes("relative text-center pb-8", pick(p.Popular, "pt-10", "")),
			g.If(p.Badge != "" && !p.Popular,
				Span(Class("badge badge-outline mb-4 mx-auto w-fit"), Editable(p.Key+"Badge", p.Badge)),
			),
			H3(Class("text-2xl mb-2 font-semibold"), Editable(p.Key+"Name", p.Name)),
			P(Class("text-base mb-6 text-muted-foreground"), Editable(p.Key+"Description", p.Description)),
			Div(
				Class("flex items-end justify-center gap-1"),
				Span(Class("text-4xl font-bold"), Editable(p.Key+"Price", p.Price)),
				g.If(p.Period != "",
					Span(Class("text-muted-foreground mb-1"), Editable(p.Key+"Period", p.Period)),
				),
			),
		),
		Div(
			Class("relative space-y-6 px-6 pb-6"),
			Ul(
				Class("space-y-3"),
				g.Group(g.Map(p.Features, func(f string) g.Node {
					return Li(
						Class("flex items-center gap-3"),
						Div(
							Class("size-5 rounded-full bg-primary/10 flex items-center justify-center flex-shrink-0"),
							icon("lucide:check", "size-3 text-primary"),
						),
						Span(Class("text-sm"), g.Text(f)),
					)
				})),
			),
			A(
				Class(btn),
				editableHref(p.Key+"CTAHref", p.CTAHref),
				g.If(p.Popular, icon("lucide:zap", "size-4 mr-2")),
				Editable(p.Key+"CTA", p.CTA),
			),
			g.If(p.Popular,
				P(Class("text-center text-sm text-muted-foreground"), Editable("plan2Trial", trial)),
			),
		),
	)
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

func boolString(b bool) string {
	return pick(b, "true", "false")
}

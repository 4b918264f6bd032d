package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/warehousepro/landing/internal/content"
)

// NewsletterState is what the newsletter box shows.
type NewsletterState struct {
	Email      string
	Error      string
	Subscribed bool
}

func FooterSection(cfg content.Footer, newsletter NewsletterState, newsletterURL string) g.Node {
	return Footer(
		ID("footer"),
		g.Attr("data-editable", "footer"),
		Class("bg-background border-t border-border/50"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8 py-16"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-6 gap-12"),
				Div(
					Class("lg:col-span-2 space-y-6"),
					companyInfo(cfg),
					Div(
						Class("space-y-3"),
						contactLine("lucide:mail", "contactEmail", cfg.ContactEmail),
						contactLine("lucide:phone", "contactPhone", cfg.ContactPhone),
						contactLine("lucide:map-pin", "contactAddress", cfg.ContactAddress),
					),
					Div(
						Class("space-y-3"),
						H4(Class("font-semibold text-sm"), g.Text("Security & Compliance")),
						Div(
							Class("flex flex-wrap gap-3"),
							g.Group(g.Map(cfg.TrustBadges(), func(b content.TrustBadge) g.Node {
								return Div(
									Class("flex items-center gap-2 px-3 py-2 bg-muted/50 rounded-md"),
									icon(b.Icon, "size-4 text-primary"),
									Span(Class("text-xs font-medium text-muted-foreground"), g.Text(b.Text)),
								)
							})),
						),
					),
					Div(
						Class("space-y-3"),
						H4(Class("font-semibold text-sm"), g.Attr("data-editable", "newsletterTitle"), g.Text(cfg.NewsletterTitle)),
						NewsletterForm(cfg, newsletter, newsletterURL),
						P(Class("text-xs text-muted-foreground"), Editable("newsletterDisclaimer", cfg.NewsletterDisclaimer)),
					),
				),
				Div(
					Class("lg:col-span-4 grid grid-cols-2 md:grid-cols-4 gap-8"),
					g.Group(g.Map(cfg.Sections(), linkSection)),
				),
			),
		),
		bottomBar(cfg),
	)
}

// NewsletterForm is the signup box. Once subscribed it shows the thank-you
// message instead of the input.
func NewsletterForm(cfg content.Footer, state NewsletterState, postURL string) g.Node {
	if state.Subscribed {
		return Div(
			ID("newsletter"),
			Class("flex items-center gap-2 text-sm text-primary"),
			g.Attr("role", "status"),
			icon("lucide:check", "size-4"),
			Editable("newsletterSuccess", cfg.NewsletterSuccess),
		)
	}
	return Form(
		ID("newsletter"),
		Method("post"),
		Action(postURL),
		g.Attr("hx-post", postURL),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		Div(
			Class("flex gap-2"),
			Input(
				Type("email"),
				Name("email"),
				Value(state.Email),
				Required(),
				Placeholder(cfg.NewsletterPlaceholder),
				g.Attr("aria-label", cfg.NewsletterPlaceholder),
				Class("flex-1 px-3 py-2 text-sm border border-border rounded-md bg-background focus:outline-none focus:ring-2 focus:ring-primary/20 focus:border-primary"),
				g.If(state.Error != "", g.Attr("aria-invalid", "true")),
			),
			Button(Type("submit"), Class("btn btn-primary btn-sm px-3"), g.Attr("aria-label", "Subscribe"), icon("lucide:arrow-right", "size-4")),
		),
		g.If(state.Error != "", P(Class("mt-1 text-xs text-error"), g.Text(state.Error))),
	)
}

func companyInfo(cfg content.Footer) g.Node {
	initial := ""
	if r := []rune(cfg.LogoText); len(r) > 0 {
		initial = string(r[0])
	}
	return Div(
		A(
			Href("/"),
			Class("flex items-center space-x-2 mb-4"),
			Div(
				Class("size-10 rounded-lg bg-gradient-to-br from-primary to-primary/60 flex items-center justify-center"),
				Span(Class("text-primary-foreground font-bold"), g.Text(initial)),
			),
			Span(Class("font-bold text-xl"), g.Attr("data-editable", "logoText"), g.Text(cfg.LogoText)),
		),
		P(Class("text-muted-foreground text-sm leading-relaxed mb-6"), Editable("companyDescription", cfg.CompanyDescription)),
	)
}

func contactLine(iconName, key, text string) g.Node {
	return Div(
		Class("flex items-center gap-3 text-sm"),
		icon(iconName, "size-4 text-primary flex-shrink-0"),
		Span(Class("text-muted-foreground"), g.Attr("data-editable", key), g.Text(text)),
	)
}

func linkSection(s content.LinkSection) g.Node {
	return Div(
		Class("space-y-4"),
		H4(Class("font-semibold text-sm"), g.Attr("data-editable", s.Key), g.Text(s.Title)),
		Ul(
			Class("space-y-3"),
			g.Group(g.Map(s.Links, func(l content.Link) g.Node {
				return Li(footerLink(l, "text-sm text-muted-foreground hover:text-foreground transition-colors duration-200"))
			})),
		),
	)
}

func footerLink(l content.Link, class string) g.Node {
	return A(
		Href(l.Href),
		g.Attr("data-editable-href", l.EditableID),
		g.Attr("data-original-href", l.Href),
		Class(class),
		g.Text(l.Name),
	)
}

func bottomBar(cfg content.Footer) g.Node {
	return Div(
		Class("border-t border-border/50 bg-muted/20"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8 py-6"),
			Div(
				Class("flex flex-col md:flex-row justify-between items-center gap-4"),
				Div(
					Class("flex items-center gap-2 text-sm text-muted-foreground"),
					Editable("copyrightText", cfg.CopyrightText),
					Span(Class("hidden sm:inline"), g.Text("•")),
					Span(
						Class("hidden sm:inline flex items-center gap-1"),
						g.Text("Made with "),
						icon("lucide:heart", "size-3 text-red-500 fill-current"),
						Editable("madeWithText", cfg.MadeWithText),
					),
				),
				Div(
					Class("flex items-center gap-4"),
					Span(Class("text-sm text-muted-foreground mr-2"), g.Attr("data-editable", "socialText"), g.Text(cfg.SocialText)),
					g.Group(g.Map(cfg.SocialLinks(), func(s content.SocialLink) g.Node {
						return A(
							Href(s.Href),
							g.Attr("aria-label", s.Name),
							Class("size-8 rounded-md bg-muted hover:bg-primary/20 flex items-center justify-center transition-colors duration-200 group"),
							g.Attr("data-editable-href", s.Key),
							g.Attr("data-original-href", s.Href),
							icon(s.Icon, "size-4 text-muted-foreground group-hover:text-primary transition-colors"),
						)
					})),
				),
			),
			Div(
				Class("flex flex-wrap justify-center md:justify-start gap-6 mt-4 pt-4 border-t border-border/30"),
				g.Group(g.Map(cfg.BottomLinks(), func(l content.Link) g.Node {
					return footerLink(l, "text-xs text-muted-foreground hover:text-foreground transition-colors")
				})),
			),
		),
	)
}

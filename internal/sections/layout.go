package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/warehousepro/landing/internal/content"
	"github.com/warehousepro/landing/internal/demo"
)

// htmx swaps 422 responses so forms can come back with field errors.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":true,"error":true}]}`

const (
	defaultTitle       = "WarehousePro ERP - AI-Powered Warehouse Management"
	defaultDescription = "Real-time inventory tracking, AI demand forecasting and multi-warehouse management for modern warehouses."
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, body ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("htmx-config"), Content(htmxConfig)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Script(Src("https://unpkg.com/htmx.org@2.0.4"), Defer()),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-background text-foreground antialiased"),
				g.Group(body),
			),
		),
	})
}

// URLs are the routes the interactive parts of the page talk to.
type URLs struct {
	Pricing    string
	Contact    ContactURLs
	Newsletter string
}

// Home is the state of a full landing page render.
type Home struct {
	Site       content.Site
	Billing    demo.BillingCycle
	Form       DemoForm
	Newsletter NewsletterState
	URLs       URLs
}

// HomePage composes every section in page order.
func HomePage(h Home) g.Node {
	return Layout(PageConfig{OGImage: h.Site.Hero.ImageURL},
		Main(
			HeroSection(h.Site.Hero),
			FeaturesSection(h.Site.Features),
			PricingSection(h.Site.Pricing, h.Billing, h.URLs.Pricing),
			ContactSection(h.Site.Contact, h.Form, h.URLs.Contact),
		),
		FooterSection(h.Site.Footer, h.Newsletter, h.URLs.Newsletter),
	)
}

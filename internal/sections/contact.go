package sections

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/warehousepro/landing/internal/content"
	"github.com/warehousepro/landing/internal/demo"
)

// DemoForm is the state the demo request form renders.
type DemoForm struct {
	Request   demo.Request
	Errors    demo.FieldErrors
	Submitted bool
}

// ContactURLs are the endpoints the demo form posts to.
type ContactURLs struct {
	Submit     string
	Draft      string
	Challenges string
}

const inputClass = "w-full px-4 py-3 border border-border rounded-lg bg-background focus:outline-none focus:ring-2 focus:ring-primary/20 focus:border-primary transition-colors"

func ContactSection(cfg content.Contact, form DemoForm, urls ContactURLs) g.Node {
	return Section(
		ID("contact"),
		Class("py-24 bg-gradient-to-b from-muted/20 to-background"),
		g.Attr("data-editable", "contact"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeader(cfg.Badge, cfg.MainTitle, cfg.MainTitleHighlight, cfg.MainDescription),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 max-w-7xl mx-auto"),
				Div(
					Class("card border-border/50 p-6"),
					H3(
						Class("text-2xl font-semibold flex items-center gap-2"),
						icon("lucide:send", "size-6 text-primary"),
						Editable("formTitle", cfg.FormTitle),
					),
					P(Class("text-muted-foreground mt-2 mb-6"), Editable("formDescription", cfg.FormDescription)),
					DemoFormPanel(cfg, form, urls),
				),
				contactInfo(cfg),
			),
		),
	)
}

// DemoFormPanel is the form itself, swapped in place on submit. A submitted
// form shows the confirmation instead.
func DemoFormPanel(cfg content.Contact, form DemoForm, urls ContactURLs) g.Node {
	if form.Submitted {
		return DemoConfirmation(cfg, form.Request)
	}
	req := form.Request
	draft := []g.Node{
		g.Attr("hx-post", urls.Draft),
		g.Attr("hx-trigger", "change"),
		g.Attr("hx-include", "closest form"),
		g.Attr("hx-swap", "none"),
	}
	return Form(
		ID("demo-form"),
		Class("space-y-6"),
		Method("post"),
		Action(urls.Submit),
		g.Attr("hx-post", urls.Submit),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("novalidate"),

		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 gap-4"),
			textField("name", "text", req.Name, "nameLabel", cfg.NameLabel, cfg.NamePlaceholder, form.Errors, draft),
			textField("email", "email", req.Email, "emailLabel", cfg.EmailLabel, cfg.EmailPlaceholder, form.Errors, draft),
		),
		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 gap-4"),
			textField("company", "text", req.Company, "companyLabel", cfg.CompanyLabel, cfg.CompanyPlaceholder, form.Errors, draft),
			textField("phone", "tel", req.Phone, "phoneLabel", cfg.PhoneLabel, cfg.PhonePlaceholder, form.Errors, draft),
		),
		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 gap-4"),
			selectField("currentErp", req.CurrentERP, "currentErpLabel", cfg.CurrentERPLabel,
				"Select your current ERP", demo.ERPOptions, form.Errors, draft),
			selectField("warehouseSize", req.WarehouseSize, "warehouseSizeLabel", cfg.WarehouseSizeLabel,
				"Select warehouse size", demo.WarehouseSizes, form.Errors, draft),
		),
		ChallengesFieldset(cfg, req, urls.Challenges, form.Errors["challenges"]),
		Div(
			Label(For("message"), Class("block text-sm font-medium mb-2"), Editable("messageLabel", cfg.MessageLabel)),
			Textarea(
				ID("message"),
				Name("message"),
				Rows("4"),
				Class(inputClass+" resize-none"),
				Placeholder(cfg.MessagePlaceholder),
				g.Group(draft),
				g.Text(req.Message),
			),
			fieldError("message", form.Errors),
		),
		Button(
			Type("submit"),
			Class("btn btn-primary w-full text-base py-6 group"),
			Editable("submitButton", cfg.SubmitButton),
			icon("lucide:send", "ml-2 size-4 transition-transform group-hover:translate-x-1"),
		),
	)
}

// ChallengesFieldset renders the challenge checkboxes. Each checkbox posts
// its challenge to toggleURL and the response replaces the fieldset.
func ChallengesFieldset(cfg content.Contact, req demo.Request, toggleURL, errMsg string) g.Node {
	return FieldSet(
		ID("challenges"),
		Legend(Class("block text-sm font-medium mb-3"), Editable("challengesLabel", cfg.ChallengesLabel)),
		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 gap-3"),
			g.Group(g.Map(demo.ChallengeOptions, func(c string) g.Node {
				return Label(
					Class("flex items-center space-x-3 cursor-pointer"),
					Input(
						Type("checkbox"),
						Name("challenges"),
						Value(c),
						Class("size-4 text-primary border-border rounded focus:ring-primary/20 focus:ring-2"),
						g.If(req.HasChallenge(c), Checked()),
						g.Attr("hx-post", toggleURL),
						g.Attr("hx-trigger", "change"),
						g.Attr("hx-vals", challengeVals(c)),
						g.Attr("hx-target", "#challenges"),
						g.Attr("hx-swap", "outerHTML"),
					),
					Span(Class("text-sm"), g.Text(c)),
				)
			})),
		),
		g.If(errMsg != "", P(ID("challenges-error"), Class("mt-2 text-sm text-error"), g.Text(errMsg))),
	)
}

func challengeVals(c string) string {
	b, _ := json.Marshal(map[string]string{"challenge": c})
	return string(b)
}

// DemoConfirmation replaces the form after a successful submit.
func DemoConfirmation(cfg content.Contact, req demo.Request) g.Node {
	return Div(
		ID("demo-form"),
		Class("space-y-4 text-center py-12"),
		g.Attr("role", "status"),
		icon("lucide:check-circle-2", "size-12 text-primary mx-auto"),
		H3(Class("text-xl font-semibold"), Editable("successTitle", cfg.SuccessTitle)),
		P(Class("text-muted-foreground"), Editable("successMessage", cfg.SuccessMessage)),
		g.If(req.Email != "", P(Class("text-sm text-muted-foreground"), g.Textf("We will write to %s.", req.Email))),
	)
}

func textField(name, typ, value, labelKey, label, placeholder string, errs demo.FieldErrors, extra []g.Node) g.Node {
	return Div(
		Label(For(name), Class("block text-sm font-medium mb-2"), Editable(labelKey, label)),
		Input(
			Type(typ),
			ID(name),
			Name(name),
			Value(value),
			Required(),
			Class(inputClass),
			Placeholder(placeholder),
			g.If(errs[name] != "", g.Group([]g.Node{
				g.Attr("aria-invalid", "true"),
				g.Attr("aria-describedby", name+"-error"),
			})),
			g.Group(extra),
		),
		fieldError(name, errs),
	)
}

func selectField(name, value, labelKey, label, prompt string, options []string, errs demo.FieldErrors, extra []g.Node) g.Node {
	return Div(
		Label(For(name), Class("block text-sm font-medium mb-2"), Editable(labelKey, label)),
		Div(
			Class("relative"),
			Select(
				ID(name),
				Name(name),
				Class(inputClass+" appearance-none"),
				g.Group(extra),
				Option(Value(""), g.Text(prompt)),
				g.Group(g.Map(options, func(o string) g.Node {
					return Option(Value(o), g.If(o == value, Selected()), g.Text(o))
				})),
			),
			icon("lucide:chevron-down", "absolute right-3 top-1/2 transform -translate-y-1/2 size-4 text-muted-foreground pointer-events-none"),
		),
		fieldError(name, errs),
	)
}

func fieldError(name string, errs demo.FieldErrors) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(ID(name+"-error"), Class("mt-1 text-sm text-error"), g.Text(msg))
}

func contactInfo(cfg content.Contact) g.Node {
	return Div(
		Class("space-y-8"),
		Div(
			Class("space-y-4"),
			H3(
				Class("text-xl font-semibold flex items-center gap-2"),
				icon("lucide:headphones", "size-5 text-primary"),
				Editable("contactSectionTitle", cfg.ContactSectionTitle),
			),
			Div(
				Class("grid gap-4"),
				g.Group(g.Map(cfg.Methods(), func(m content.ContactMethod) g.Node {
					return Div(
						Class("card border-border/50 hover:border-primary/20 transition-colors cursor-pointer group p-6"),
						Div(
							Class("flex items-start gap-4"),
							Div(
								Class("size-12 rounded-lg bg-primary/10 flex items-center justify-center group-hover:bg-primary/20 transition-colors"),
								icon(m.Icon, "size-6 text-primary"),
							),
							Div(
								Class("flex-1"),
								H4(Class("font-semibold mb-1"), Editable(m.Key+"Title", m.Title)),
								P(Class("text-sm text-muted-foreground mb-2"), Editable(m.Key+"Description", m.Description)),
								P(Class("font-medium text-primary"), Editable(m.Key+"Contact", m.Contact)),
							),
						),
					)
				})),
			),
		),
		Div(
			Class("space-y-4"),
			H3(
				Class("text-xl font-semibold flex items-center gap-2"),
				icon("lucide:map-pin", "size-5 text-primary"),
				Editable("officesSectionTitle", cfg.OfficesSectionTitle),
			),
			Div(
				Class("space-y-3"),
				g.Group(g.Map(cfg.Offices(), func(o content.Office) g.Node {
					return Div(
						Class("p-4 border border-border/50 rounded-lg"),
						Div(
							Class("flex items-start justify-between"),
							Div(
								H4(Class("font-semibold"), Editable(o.Key+"City", o.City)),
								P(Class("text-sm text-muted-foreground mt-1"), Editable(o.Key+"Address", o.Address)),
							),
							Span(Class("badge badge-secondary text-xs"), Editable(o.Key+"Timezone", o.Timezone)),
						),
					)
				})),
			),
		),
		Div(
			Class("card border-border/50 p-6"),
			H3(
				Class("text-lg font-semibold flex items-center gap-2 mb-4"),
				icon("lucide:clock", "size-5 text-primary"),
				Editable("hoursTitle", cfg.HoursTitle),
			),
			Div(
				Class("space-y-2 text-sm"),
				hoursRow("hoursWeekday", cfg.HoursWeekdayLabel, cfg.HoursWeekdayTime, false),
				hoursRow("hoursSaturday", cfg.HoursSaturdayLabel, cfg.HoursSaturdayTime, false),
				hoursRow("hoursSunday", cfg.HoursSundayLabel, cfg.HoursSundayTime, true),
			),
			Div(
				Class("mt-4 p-3 bg-primary/10 rounded-lg"),
				P(
					Class("text-sm text-primary font-medium flex items-center gap-2"),
					icon("lucide:users", "size-4"),
					Editable("supportNote", cfg.SupportNote),
				),
			),
		),
	)
}

func hoursRow(key, label, time string, muted bool) g.Node {
	return Div(
		Class("flex justify-between"),
		Span(Class("text-muted-foreground"), Editable(key+"Label", label)),
		Span(g.If(muted, Class("text-muted-foreground")), Editable(key+"Time", time)),
	)
}

package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"
	g "maragu.dev/gomponents"

	"github.com/warehousepro/landing/internal/content"
	"github.com/warehousepro/landing/internal/demo"
	"github.com/warehousepro/landing/internal/leads"
	"github.com/warehousepro/landing/internal/logger"
	"github.com/warehousepro/landing/internal/metrics"
	"github.com/warehousepro/landing/internal/sections"
	"github.com/warehousepro/landing/internal/structpages"
)

type pages struct {
	home       homePage       `route:"GET / Home"`
	pricing    pricingPage    `route:"GET /pricing Pricing"`
	contact    contactPages   `route:"/contact Contact"`
	newsletter newsletterPage `route:"POST /newsletter Newsletter"`
	health     healthPage     `route:"GET /health Health"`
	metrics    metricsPage    `route:"GET /metrics Metrics"`
}

type contactPages struct {
	submit     contactSubmit     `route:"POST / Schedule demo"`
	draft      contactDraft      `route:"POST /draft"`
	challenges contactChallenges `route:"POST /challenges"`
}

// Middlewares limits every post to the demo form, drafts included, since each
// one may start a session.
func (contactPages) Middlewares(l *DraftLimiter) []structpages.MiddlewareFunc {
	return []structpages.MiddlewareFunc{l.Middleware("draft", nil)}
}

// newHome is the page state shared by every page that renders the landing
// page or one of its parts.
func newHome(r *http.Request, site content.Site) (sections.Home, error) {
	var urls sections.URLs
	for _, u := range []struct {
		dst  *string
		page any
	}{
		{&urls.Pricing, pricingPage{}},
		{&urls.Contact.Submit, contactSubmit{}},
		{&urls.Contact.Draft, contactDraft{}},
		{&urls.Contact.Challenges, contactChallenges{}},
		{&urls.Newsletter, newsletterPage{}},
	} {
		var err error
		if *u.dst, err = structpages.URLFor(r.Context(), u.page); err != nil {
			return sections.Home{}, err
		}
	}
	return sections.Home{
		Site:    site,
		Billing: demo.ParseBillingCycle(r.URL.Query().Get("billing")),
		URLs:    urls,
	}, nil
}

func fullPage(h sections.Home) templ.Component {
	return sections.Component(sections.HomePage(h))
}

type homePage struct{}

func (homePage) Props(r *http.Request, site content.Site, f *forms) (sections.Home, error) {
	h, err := newHome(r, site)
	if err != nil {
		return h, err
	}
	h.Form.Request = f.drafts.Get(r.Context())
	return h, nil
}

func (homePage) Page(h sections.Home) templ.Component {
	return fullPage(h)
}

func (homePage) Pricing(h sections.Home) templ.Component {
	return sections.Component(sections.PricingSection(h.Site.Pricing, h.Billing, h.URLs.Pricing))
}

func (homePage) Contact(h sections.Home) templ.Component {
	return sections.Component(sections.ContactSection(h.Site.Contact, h.Form, h.URLs.Contact))
}

func (homePage) Footer(h sections.Home) templ.Component {
	return sections.Component(sections.FooterSection(h.Site.Footer, h.Newsletter, h.URLs.Newsletter))
}

// pricingPage switches the billing cycle. Without htmx it sends the visitor
// back to the pricing anchor of the home page.
type pricingPage struct{}

func (pricingPage) ServeHTTP(w http.ResponseWriter, r *http.Request, site content.Site, m *metrics.Metrics) error {
	cycle := demo.ParseBillingCycle(r.URL.Query().Get("billing"))
	m.BillingToggles.WithLabelValues(cycle.String()).Inc()

	if !htmx.IsHTMX(r) {
		home, err := structpages.URLFor(r.Context(), homePage{})
		if err != nil {
			return err
		}
		http.Redirect(w, r, home+"?"+url.Values{"billing": {cycle.String()}}.Encode()+"#pricing", http.StatusSeeOther)
		return nil
	}
	pricingURL, err := structpages.URLFor(r.Context(), pricingPage{})
	if err != nil {
		return err
	}
	return renderNode(w, http.StatusOK, sections.PricingSection(site.Pricing, cycle, pricingURL))
}

type contactSubmit struct{}

func (contactSubmit) Middlewares(l *FormLimiter, m *metrics.Metrics) []structpages.MiddlewareFunc {
	return []structpages.MiddlewareFunc{
		l.Middleware("demo", func(*http.Request) {
			m.DemoRequests.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		}),
	}
}

func (contactSubmit) Props(r *http.Request, w http.ResponseWriter, site content.Site, f *forms,
	store LeadStore, notifier leads.Notifier, m *metrics.Metrics, log *slog.Logger,
) (sections.Home, error) {
	ctx := r.Context()
	h, err := newHome(r, site)
	if err != nil {
		return h, err
	}
	var req demo.Request
	if err := f.decode(r, &req); err != nil {
		return h, err
	}
	req.Normalize()
	h.Form.Request = req

	if err := f.validator.Validate(req); err != nil {
		var fe demo.FieldErrors
		if !errors.As(err, &fe) {
			return h, err
		}
		m.DemoRequests.WithLabelValues(metrics.OutcomeInvalid).Inc()
		f.drafts.Save(ctx, req)
		h.Form.Errors = fe
		w.WriteHeader(http.StatusUnprocessableEntity)
		return h, nil
	}

	lead, err := store.SaveDemoRequest(ctx, req)
	if err != nil {
		m.DemoRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return h, fmt.Errorf("save demo request: %w", err)
	}
	log = log.With(logger.Scope("site.contact"))
	log.InfoContext(ctx, "demo requested", slog.String("lead_id", lead.ID), slog.Any("request", req))

	go func(ctx context.Context) {
		if err := notifier.NotifyDemoRequest(ctx, lead); err != nil {
			log.WarnContext(ctx, "notify sales", slog.String("lead_id", lead.ID), logger.Error(err))
		}
	}(context.WithoutCancel(ctx))

	f.drafts.Clear(ctx)
	m.DemoRequests.WithLabelValues(metrics.OutcomeAccepted).Inc()
	setTrigger(w, "demo-requested")
	h.Form.Submitted = true
	return h, nil
}

func (contactSubmit) Page(h sections.Home) templ.Component {
	return fullPage(h)
}

func (contactSubmit) DemoForm(h sections.Home) templ.Component {
	return sections.Component(sections.DemoFormPanel(h.Site.Contact, h.Form, h.URLs.Contact))
}

// contactDraft saves the text fields of the demo form in the session.
type contactDraft struct{}

func (contactDraft) ServeHTTP(w http.ResponseWriter, r *http.Request, f *forms) error {
	var posted demo.Request
	if err := f.decode(r, &posted); err != nil {
		return err
	}
	draft := f.drafts.Get(r.Context())
	draft.MergeFields(posted)
	f.drafts.Save(r.Context(), draft)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type contactChallenges struct{}

func (contactChallenges) Props(r *http.Request, w http.ResponseWriter, site content.Site, f *forms) (sections.Home, error) {
	h, err := newHome(r, site)
	if err != nil {
		return h, err
	}
	var posted demo.Request
	if err := f.decode(r, &posted); err != nil {
		return h, err
	}
	draft, err := f.drafts.Toggle(r.Context(), r.PostForm.Get("challenge"))
	if errors.Is(err, demo.ErrUnknownChallenge) {
		h.Form.Request = draft
		h.Form.Errors = demo.FieldErrors{"challenges": "Pick challenges from the list."}
		w.WriteHeader(http.StatusUnprocessableEntity)
		return h, nil
	}
	if err != nil {
		return h, err
	}
	draft.MergeFields(posted)
	f.drafts.Save(r.Context(), draft)
	h.Form.Request = draft
	return h, nil
}

func (contactChallenges) Page(h sections.Home) templ.Component {
	return fullPage(h)
}

func (contactChallenges) Challenges(h sections.Home) templ.Component {
	return sections.Component(sections.ChallengesFieldset(h.Site.Contact, h.Form.Request,
		h.URLs.Contact.Challenges, h.Form.Errors["challenges"]))
}

type newsletterPage struct{}

func (newsletterPage) Middlewares(l *FormLimiter, m *metrics.Metrics) []structpages.MiddlewareFunc {
	return []structpages.MiddlewareFunc{
		l.Middleware("newsletter", func(*http.Request) {
			m.NewsletterSignups.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		}),
	}
}

func (newsletterPage) Props(r *http.Request, w http.ResponseWriter, site content.Site, f *forms,
	store LeadStore, m *metrics.Metrics,
) (sections.Home, error) {
	h, err := newHome(r, site)
	if err != nil {
		return h, err
	}
	var sub demo.Subscription
	if err := f.decode(r, &sub); err != nil {
		return h, err
	}
	sub.Email = strings.TrimSpace(sub.Email)
	h.Newsletter.Email = sub.Email

	if err := f.validator.Validate(sub); err != nil {
		var fe demo.FieldErrors
		if !errors.As(err, &fe) {
			return h, err
		}
		m.NewsletterSignups.WithLabelValues(metrics.OutcomeInvalid).Inc()
		h.Newsletter.Error = fe["email"]
		w.WriteHeader(http.StatusUnprocessableEntity)
		return h, nil
	}

	created, err := store.Subscribe(r.Context(), sub.Email)
	if err != nil {
		m.NewsletterSignups.WithLabelValues(metrics.OutcomeError).Inc()
		return h, fmt.Errorf("subscribe: %w", err)
	}
	outcome := metrics.OutcomeAccepted
	if !created {
		outcome = metrics.OutcomeDuplicate
	}
	m.NewsletterSignups.WithLabelValues(outcome).Inc()
	h.Newsletter.Subscribed = true
	return h, nil
}

func (newsletterPage) Page(h sections.Home) templ.Component {
	return fullPage(h)
}

func (newsletterPage) Newsletter(h sections.Home) templ.Component {
	return sections.Component(sections.NewsletterForm(h.Site.Footer, h.Newsletter, h.URLs.Newsletter))
}

type healthPage struct{}

func (healthPage) ServeHTTP(w http.ResponseWriter, r *http.Request, store LeadStore, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := store.Ping(ctx); err != nil {
		log.WarnContext(ctx, "health check failed", logger.Scope("site.health"), logger.Error(err))
		status, code = "unavailable", http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}

type metricsPage struct{}

func (metricsPage) ServeHTTP(w http.ResponseWriter, r *http.Request, m *metrics.Metrics) {
	m.Handler().ServeHTTP(w, r)
}

func renderNode(w http.ResponseWriter, status int, n g.Node) error {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// setTrigger sets HX-Trigger without committing the status.
func setTrigger(w http.ResponseWriter, event string) {
	headers, err := htmx.NewResponse().AddTrigger(htmx.Trigger(event)).Headers()
	if err != nil {
		return
	}
	for k, v := range headers {
		w.Header().Set(k, v)
	}
}

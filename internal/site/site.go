// Package site wires the landing page tree, its handlers and middlewares
// into an http.Handler.
package site

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/form/v4"

	"github.com/warehousepro/landing/internal/content"
	"github.com/warehousepro/landing/internal/demo"
	"github.com/warehousepro/landing/internal/leads"
	"github.com/warehousepro/landing/internal/logger"
	"github.com/warehousepro/landing/internal/metrics"
	"github.com/warehousepro/landing/internal/structpages"
	"github.com/warehousepro/landing/internal/structpages/chirouter"
)

// LeadStore persists what visitors submit. *leads.Store implements it.
type LeadStore interface {
	SaveDemoRequest(ctx context.Context, req demo.Request) (*leads.Lead, error)
	Subscribe(ctx context.Context, email string) (created bool, err error)
	Ping(ctx context.Context) error
}

type Options struct {
	Content  content.Site
	Leads    LeadStore
	Notifier leads.Notifier
	Sessions *scs.SessionManager
	Metrics  *metrics.Metrics
	Limiter  *FormLimiter
	// Drafts limits draft saves and challenge toggles. It defaults to 60 a
	// minute with bursts of 20.
	Drafts *DraftLimiter
	Logger *slog.Logger
}

// NewHandler mounts the landing pages on a chi router.
func NewHandler(o Options) (http.Handler, error) {
	if o.Leads == nil || o.Sessions == nil || o.Metrics == nil || o.Limiter == nil {
		return nil, errors.New("site: leads, sessions, metrics and limiter are required")
	}
	if o.Notifier == nil {
		o.Notifier = leads.NopNotifier{}
	}
	if o.Drafts == nil {
		o.Drafts = NewDraftLimiter(60, 20)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logger.Middleware(o.Logger),
		o.Metrics.Middleware,
		middleware.Recoverer,
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "We could not find that page.")
	})

	sp := structpages.New(
		structpages.WithDefaultPageConfig(structpages.HTMXPageConfig),
		structpages.WithErrorHandler(errorHandler(o.Logger)),
		structpages.WithMiddlewares(wrapMiddleware(o.Sessions.LoadAndSave)),
	)
	if err := sp.MountPages(chirouter.New(r), pages{}, "/", "WarehousePro",
		o.Content,
		newForms(o.Sessions),
		o.Leads,
		o.Notifier,
		o.Metrics,
		o.Limiter,
		o.Drafts,
		o.Logger,
	); err != nil {
		return nil, err
	}
	return r, nil
}

// forms bundles what the form handlers share.
type forms struct {
	decoder   *form.Decoder
	validator *demo.Validator
	drafts    *demo.Drafts
}

func newForms(sessions *scs.SessionManager) *forms {
	decoder := form.NewDecoder()
	decoder.SetTagName("form")
	return &forms{
		decoder:   decoder,
		validator: demo.NewValidator(),
		drafts:    demo.NewDrafts(sessions),
	}
}

func (f *forms) decode(r *http.Request, v any) error {
	if err := r.ParseForm(); err != nil {
		return NewHTTPError(http.StatusBadRequest, "The form could not be read.")
	}
	if err := f.decoder.Decode(v, r.PostForm); err != nil {
		return NewHTTPError(http.StatusBadRequest, "The form could not be read.")
	}
	return nil
}

// wrapMiddleware converts a standard middleware to a structpages.MiddlewareFunc.
func wrapMiddleware(mw func(http.Handler) http.Handler) structpages.MiddlewareFunc {
	return func(next http.Handler, _ *structpages.PageNode) http.Handler {
		return mw(next)
	}
}

// Routes lists the routes NewHandler registers.
func Routes() (string, error) {
	return structpages.PrintRoutes("/", pages{})
}

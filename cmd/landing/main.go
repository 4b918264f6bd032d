// Command landing serves the WarehousePro landing site.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/warehousepro/landing/internal/config"
	"github.com/warehousepro/landing/internal/content"
	"github.com/warehousepro/landing/internal/leads"
	"github.com/warehousepro/landing/internal/logger"
	"github.com/warehousepro/landing/internal/metrics"
	"github.com/warehousepro/landing/internal/site"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	cfg.RegisterFlags(flag.CommandLine)
	printRoutes := flag.Bool("routes", false, "print the routes and exit")
	printKeys := flag.Bool("content-keys", false, "print the keys a content file may override and exit")
	listLeads := flag.Int("leads", 0, "print the `n` most recent demo requests and exit")
	showLead := flag.String("lead", "", "print the demo request with this `id` and exit")
	flag.Parse()

	switch {
	case *printRoutes:
		routes, err := site.Routes()
		if err != nil {
			return err
		}
		fmt.Print(routes)
		return nil
	case *printKeys:
		return content.WriteKeys(os.Stdout)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := leads.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case *showLead != "":
		return store.WriteLead(ctx, os.Stdout, *showLead)
	case *listLeads > 0:
		return store.WriteReport(ctx, os.Stdout, *listLeads)
	}

	siteContent, err := content.Load(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	notifier := leads.NewNotifier(leads.MailgunConfig{
		Domain: cfg.Mailgun.Domain,
		APIKey: cfg.Mailgun.APIKey,
		From:   cfg.Mailgun.From,
		To:     cfg.Mailgun.SalesEmail,
	}, log)

	handler, err := site.NewHandler(site.Options{
		Content:  siteContent,
		Leads:    store,
		Notifier: notifier,
		Sessions: newSessionManager(cfg),
		Metrics:  metrics.New(),
		Limiter:  site.NewFormLimiter(cfg.FormRate, cfg.FormBurst),
		Drafts:   site.NewDraftLimiter(cfg.DraftRate, cfg.DraftBurst),
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("mount pages: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.HTTPAddr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newSessionManager(cfg *config.Config) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = memstore.New()
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Cookie.Name = "landing_session"
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.SecureCookies
	return sessionManager
}

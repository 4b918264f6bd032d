package leads

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/warehousepro/landing/internal/logger"
)

// Notifier tells the sales team about a new lead.
type Notifier interface {
	NotifyDemoRequest(ctx context.Context, lead *Lead) error
}

// NopNotifier drops notifications. It is used when mail is not configured.
type NopNotifier struct{}

func (NopNotifier) NotifyDemoRequest(context.Context, *Lead) error { return nil }

// MailgunConfig configures MailgunNotifier.
type MailgunConfig struct {
	Domain string
	APIKey string
	From   string
	To     string
}

func (c MailgunConfig) IsConfigured() bool {
	return c.Domain != "" && c.APIKey != "" && c.To != ""
}

// MailgunNotifier emails the sales inbox through Mailgun.
type MailgunNotifier struct {
	cfg    MailgunConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewNotifier returns a MailgunNotifier, or a NopNotifier if Mailgun is not
// configured.
func NewNotifier(cfg MailgunConfig, log *slog.Logger) Notifier {
	if !cfg.IsConfigured() {
		log.Info("mailgun not configured, demo requests will not be emailed")
		return NopNotifier{}
	}
	if cfg.From == "" {
		cfg.From = "WarehousePro <noreply@" + cfg.Domain + ">"
	}
	return &MailgunNotifier{
		cfg:    cfg,
		log:    log.With(logger.Scope("leads.mailgun")),
		client: mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
	}
}

func (n *MailgunNotifier) NotifyDemoRequest(ctx context.Context, lead *Lead) error {
	subject, text := demoRequestEmail(lead)
	message := n.client.NewMessage(n.cfg.From, subject, text, n.cfg.To)
	message.SetReplyTo(lead.Request.Email)

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, id, err := n.client.Send(sendCtx, message)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	n.log.Info("demo request emailed", slog.String("lead_id", lead.ID), slog.String("message_id", id))
	return nil
}

func demoRequestEmail(lead *Lead) (subject, text string) {
	r := lead.Request
	subject = fmt.Sprintf("Demo request: %s (%s)", r.Company, r.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:           %s\n", r.Name)
	fmt.Fprintf(&sb, "Email:          %s\n", r.Email)
	fmt.Fprintf(&sb, "Company:        %s\n", r.Company)
	fmt.Fprintf(&sb, "Phone:          %s\n", r.Phone)
	fmt.Fprintf(&sb, "Current ERP:    %s\n", orDash(r.CurrentERP))
	fmt.Fprintf(&sb, "Warehouse size: %s\n", orDash(r.WarehouseSize))
	fmt.Fprintf(&sb, "Challenges:     %s\n", orDash(strings.Join(r.Challenges, ", ")))
	if r.Message != "" {
		fmt.Fprintf(&sb, "\n%s\n", r.Message)
	}
	fmt.Fprintf(&sb, "\nLead %s, received %s\n", lead.ID, lead.CreatedAt.Format(time.RFC1123))
	return subject, sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

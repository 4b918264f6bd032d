// Package demo holds the state of the "schedule a demo" form and the pricing
// billing toggle.
package demo

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// ErrUnknownChallenge is returned when toggling a challenge that is not one
// of ChallengeOptions.
var ErrUnknownChallenge = errors.New("unknown challenge")

var (
	ERPOptions = []string{
		"SAP",
		"Oracle NetSuite",
		"Microsoft Dynamics",
		"QuickBooks",
		"No ERP/Excel",
		"Other",
	}

	WarehouseSizes = []string{
		"<5,000 sq ft",
		"5,000-25,000 sq ft",
		"25,000-100,000 sq ft",
		">100,000 sq ft",
	}

	ChallengeOptions = []string{
		"Inventory accuracy",
		"Order fulfillment speed",
		"Labor costs",
		"Space utilization",
		"Returns processing",
	}
)

// Request is what a visitor has typed into the demo form so far.
type Request struct {
	Name          string   `form:"name" validate:"required,max=120"`
	Email         string   `form:"email" validate:"required,email,max=254"`
	Company       string   `form:"company" validate:"required,max=160"`
	Phone         string   `form:"phone" validate:"required,max=40"`
	CurrentERP    string   `form:"currentErp" validate:"omitempty,erp"`
	WarehouseSize string   `form:"warehouseSize" validate:"omitempty,warehouse_size"`
	Challenges    []string `form:"challenges" validate:"unique,dive,challenge"`
	Message       string   `form:"message" validate:"max=4000"`
}

// HasChallenge reports whether c is selected.
func (r *Request) HasChallenge(c string) bool {
	return slices.Contains(r.Challenges, c)
}

// ToggleChallenge selects c if it is not selected and deselects it otherwise.
// Toggling the same challenge twice restores the previous selection.
func (r *Request) ToggleChallenge(c string) error {
	if !slices.Contains(ChallengeOptions, c) {
		return ErrUnknownChallenge
	}
	if i := slices.Index(r.Challenges, c); i >= 0 {
		r.Challenges = slices.Delete(slices.Clone(r.Challenges), i, i+1)
		return nil
	}
	r.Challenges = append(slices.Clone(r.Challenges), c)
	return nil
}

// Normalize trims text fields and drops repeated challenges, keeping the
// first occurrence of each.
func (r *Request) Normalize() {
	for _, f := range []*string{&r.Name, &r.Email, &r.Company, &r.Phone, &r.CurrentERP, &r.WarehouseSize, &r.Message} {
		*f = strings.TrimSpace(*f)
	}
	seen := make(map[string]bool, len(r.Challenges))
	out := r.Challenges[:0:0]
	for _, c := range r.Challenges {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	r.Challenges = out
}

// MergeFields copies the text fields of other into r, leaving the challenge
// selection alone. Drafts are saved field by field while challenges are
// toggled on their own.
func (r *Request) MergeFields(other Request) {
	r.Name = other.Name
	r.Email = other.Email
	r.Company = other.Company
	r.Phone = other.Phone
	r.CurrentERP = other.CurrentERP
	r.WarehouseSize = other.WarehouseSize
	r.Message = other.Message
}

// LogValue keeps contact details out of logs.
func (r Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("company", r.Company),
		slog.String("email_domain", emailDomain(r.Email)),
		slog.String("current_erp", r.CurrentERP),
		slog.String("warehouse_size", r.WarehouseSize),
		slog.Any("challenges", r.Challenges),
		slog.Int("message_len", len(r.Message)),
	)
}

func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return email[i+1:]
	}
	return ""
}

// Subscription is the footer newsletter form.
type Subscription struct {
	Email string `form:"email" validate:"required,email,max=254"`
}

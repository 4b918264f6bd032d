package demo

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validRequest() Request {
	return Request{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Company:       "Analytical Logistics",
		Phone:         "+1 (555) 010-0000",
		CurrentERP:    "SAP",
		WarehouseSize: "5,000-25,000 sq ft",
		Challenges:    []string{"Labor costs"},
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		modify func(*Request)
		want   []string
	}{
		{name: "valid", modify: func(*Request) {}},
		{name: "optional selects empty", modify: func(r *Request) { r.CurrentERP, r.WarehouseSize, r.Challenges = "", "", nil }},
		{name: "missing required", modify: func(r *Request) { r.Name, r.Phone = "", "" }, want: []string{"name", "phone"}},
		{name: "bad email", modify: func(r *Request) { r.Email = "ada" }, want: []string{"email"}},
		{name: "unknown erp", modify: func(r *Request) { r.CurrentERP = "Spreadsheet" }, want: []string{"currentErp"}},
		{name: "unknown size", modify: func(r *Request) { r.WarehouseSize = "huge" }, want: []string{"warehouseSize"}},
		{name: "unknown challenge", modify: func(r *Request) { r.Challenges = []string{"Parking"} }, want: []string{"challenges"}},
		{name: "duplicate challenge", modify: func(r *Request) { r.Challenges = []string{"Labor costs", "Labor costs"} }, want: []string{"challenges"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.modify(&r)
			err := v.Validate(r)
			if len(tt.want) == 0 {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			var fe FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("Validate error = %v, want FieldErrors", err)
			}
			if diff := cmp.Diff(tt.want, slices.Sorted(maps.Keys(fe))); diff != "" {
				t.Errorf("invalid fields (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidator_subscription(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(Subscription{Email: "ops@example.com"}); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	err := v.Validate(Subscription{Email: "not-an-email"})
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("Validate error = %v, want FieldErrors", err)
	}
	if got, want := fe["email"], "Enter a valid email address."; got != want {
		t.Errorf("email error = %q, want %q", got, want)
	}
}

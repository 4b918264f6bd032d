package structpages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_mixedCase(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{name: "empty", s: "", want: ""},
		{name: "single word", s: "pricing", want: "Pricing"},
		{name: "hyphenated", s: "demo-form", want: "DemoForm"},
		{name: "underscored", s: "demo_form", want: "DemoForm"},
		{name: "already capitalised", s: "demo-Form", want: "DemoForm"},
		{name: "spaces are rejected", s: "demo form", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, mixedCase(tt.s)); diff != "" {
				t.Errorf("mixedCase() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHTMXPageConfig_names(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "plain request", want: "Page"},
		{name: "htmx without target", headers: map[string]string{"HX-Request": "true"}, want: "Page"},
		{name: "target without htmx", headers: map[string]string{"HX-Target": "pricing"}, want: "Page"},
		{name: "htmx with target", headers: map[string]string{"HX-Request": "true", "HX-Target": "contact"}, want: "Contact"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			got, err := HTMXPageConfig(req)
			if err != nil {
				t.Fatalf("HTMXPageConfig() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HTMXPageConfig() = %q, want %q", got, tt.want)
			}
		})
	}
}

package structpages

import (
	"strings"
	"testing"
)

func TestPrintRoutes(t *testing.T) {
	type topPage struct {
		home    parseHome    `route:"GET / Home"`
		contact parseContact `route:"/contact Contact"`
	}
	out, err := PrintRoutes("/", &topPage{})
	if err != nil {
		t.Fatalf("PrintRoutes failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 routes, got %d:\n%s", len(lines), out)
	}
	for i, want := range [][]string{
		{"GET", "/", "home", "Home", "Page,Pricing"},
		{"ALL", "/contact", "contact", "Contact", "Page"},
		{"POST", "/contact", "submit", "Submit"},
	} {
		if got := strings.Fields(lines[i]); strings.Join(got, " ") != strings.Join(want, " ") {
			t.Errorf("line %d = %q, want %q", i, got, want)
		}
	}
}

package structpages

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

// HTMXPageConfig selects the component named after the HX-Target header for
// htmx requests and Page for everything else:
//
//   - HX-Target: "pricing"   -> Pricing()
//   - HX-Target: "demo-form" -> DemoForm()
//   - no HX-Target or non-htmx request -> Page()
//
// Use it with WithDefaultPageConfig to enable partial rendering for all pages.
func HTMXPageConfig(r *http.Request) (string, error) {
	if htmx.IsHTMX(r) {
		if target, ok := htmx.GetTarget(r); ok && target != "" {
			if name := mixedCase(target); name != "" {
				return name, nil
			}
		}
	}
	return "Page", nil
}

// mixedCase turns an element id into a method name: "demo-form" -> "DemoForm".
func mixedCase(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return ""
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

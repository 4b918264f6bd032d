package structpages

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		route      string
		wantMethod string
		wantPath   string
		wantTitle  string
	}{
		{route: "", wantMethod: "ALL", wantPath: "/"},
		{route: "/", wantMethod: "ALL", wantPath: "/"},
		{route: "/pricing", wantMethod: "ALL", wantPath: "/pricing"},
		{route: "GET /", wantMethod: "GET", wantPath: "/"},
		{route: "post /contact", wantMethod: "POST", wantPath: "/contact"},
		{route: "/contact Request a demo", wantMethod: "ALL", wantPath: "/contact", wantTitle: "Request a demo"},
		{route: "GET /health Health check", wantMethod: "GET", wantPath: "/health", wantTitle: "Health check"},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			method, path, title := parseTag(tt.route)
			got := []string{method, path, title}
			want := []string{tt.wantMethod, tt.wantPath, tt.wantTitle}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("parseTag(%q) mismatch (-want +got):\n%s", tt.route, diff)
			}
		})
	}
}

type parseHome struct{}

func (parseHome) Page() component    { return testComponent{} }
func (parseHome) Pricing() component { return testComponent{} }
func (parseHome) Props() string      { return "" }

type parseContact struct {
	submit parseSubmit `route:"POST / Submit"`
}

func (*parseContact) PageConfig(r *http.Request) (string, error) { return "Page", nil }
func (parseContact) Page() component                             { return testComponent{} }

type parseSubmit struct{}

func (parseSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {}

type initPage struct {
	ready bool
}

func (p *initPage) Init(c *counter) {
	p.ready = true
	c.n++
}

func TestParsePageTree(t *testing.T) {
	type topPage struct {
		home    parseHome    `route:"GET / Home"`
		contact parseContact `route:"/contact Contact"`
	}
	pc, err := parsePageTree("/", &topPage{})
	if err != nil {
		t.Fatalf("parsePageTree failed: %v", err)
	}

	var got []string
	for node := range pc.root.All() {
		got = append(got, node.Method+" "+node.FullRoute()+" "+node.Name)
	}
	want := []string{
		"ALL / topPage",
		"GET / home",
		"ALL /contact contact",
		"POST /contact submit",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}

	home := pc.root.Children[0]
	if _, ok := home.Components["Pricing"]; !ok {
		t.Errorf("expected Pricing component, got %v", home.Components)
	}
	if _, ok := home.Props["Props"]; !ok {
		t.Errorf("expected Props method, got %v", home.Props)
	}
	if contact := pc.root.Children[1]; contact.Config == nil {
		t.Error("expected PageConfig on contact page")
	}
}

func TestParsePageTree_init(t *testing.T) {
	type topPage struct {
		p initPage `route:"/init"`
	}
	c := &counter{}
	pc, err := parsePageTree("/", &topPage{}, c)
	if err != nil {
		t.Fatalf("parsePageTree failed: %v", err)
	}
	p := pc.root.Children[0].Value.Interface().(*initPage)
	if !p.ready || c.n != 1 {
		t.Errorf("Init was not called with the registered counter: ready=%v n=%d", p.ready, c.n)
	}
}

package structpages

import (
	"testing"
)

func Test_formatPathSegments(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		args    []any
		want    string
		wantErr bool
	}{
		{name: "empty path", path: "", want: ""},
		{name: "static path", path: "/pricing", want: "/pricing"},
		{name: "static path ignores args", path: "/pricing", args: []any{"x"}, want: "/pricing"},
		{name: "positional args", path: "/leads/{id}/{field}", args: []any{"abc", 3}, want: "/leads/abc/3"},
		{name: "name value pairs", path: "/?billing={cycle}", args: []any{"cycle", "yearly"}, want: "/?billing=yearly"},
		{name: "positional strings that are not names", path: "/{a}/{b}", args: []any{"x", "y"}, want: "/x/y"},
		{name: "map args", path: "/{a}/{b}", args: []any{map[string]any{"a": 1, "b": "two"}}, want: "/1/two"},
		{name: "wildcard", path: "/static/{file...}", args: []any{"app.css"}, want: "/static/app.css"},
		{name: "missing map key", path: "/{a}/{b}", args: []any{map[string]any{"a": 1}}, wantErr: true},
		{name: "too few args", path: "/{a}/{b}", args: []any{"x"}, wantErr: true},
		{name: "no args", path: "/{a}", wantErr: true},
		{name: "unmatched brace", path: "/{a", args: []any{"x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatPathSegments(tt.path, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("formatPathSegments() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("formatPathSegments() = %q, want %q", got, tt.want)
			}
		})
	}
}

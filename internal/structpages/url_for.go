package structpages

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackielii/ctxkey"
)

var pcCtx = ctxkey.New[*parseContext]("structpages.parseContext", nil)

func withParseContext(pc *parseContext) MiddlewareFunc {
	return func(next http.Handler, _ *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(pcCtx.WithValue(r.Context(), pc)))
		})
	}
}

// URLFor returns the route of the page of the given type. page may also be a
// func(*PageNode) bool to pick a node, or a []any mixing pages and literal
// strings that are joined in order:
//
//	URLFor(ctx, []any{homePage{}, "?billing={cycle}"}, "cycle", "yearly")
//
// Path parameters in braces are filled from args, either positionally or as
// name/value pairs.
func URLFor(ctx context.Context, page any, args ...any) (string, error) {
	pc := pcCtx.Value(ctx)
	if pc == nil {
		return "", errNoParseContext
	}
	parts, ok := page.([]any)
	if !ok {
		parts = []any{page}
	}
	var pattern strings.Builder
	for _, part := range parts {
		if s, ok := part.(string); ok {
			pattern.WriteString(s)
			continue
		}
		route, err := pc.urlFor(part)
		if err != nil {
			return "", err
		}
		pattern.WriteString(route)
	}
	s, err := formatPathSegments(pattern.String(), args...)
	if err != nil {
		return "", fmt.Errorf("urlfor: %w", err)
	}
	return s, nil
}

func formatPathSegments(pattern string, args ...any) (string, error) {
	segments, err := parseSegments(pattern)
	if err != nil {
		return "", err
	}
	var params []int
	for i, seg := range segments {
		if seg.param {
			params = append(params, i)
		}
	}
	if len(params) == 0 {
		return pattern, nil
	}

	if named := namedArgs(args); named != nil && hasAny(named, segments, params) {
		for _, idx := range params {
			v, ok := named[segments[idx].name]
			if !ok {
				return "", fmt.Errorf("pattern %s: argument %s not provided", pattern, segments[idx].name)
			}
			segments[idx].value = v
		}
	} else {
		if len(args) != len(params) {
			return "", fmt.Errorf("pattern %s: want %d arguments, got %d", pattern, len(params), len(args))
		}
		for i, idx := range params {
			segments[idx].value = fmt.Sprint(args[i])
		}
	}

	var sb strings.Builder
	for _, seg := range segments {
		if seg.param {
			sb.WriteString(seg.value)
		} else {
			sb.WriteString(seg.name)
		}
	}
	return sb.String(), nil
}

// namedArgs reads args as name/value pairs. It returns nil when args are
// positional.
func namedArgs(args []any) map[string]string {
	if len(args) == 1 {
		if m, ok := args[0].(map[string]any); ok {
			named := make(map[string]string, len(m))
			for k, v := range m {
				named[k] = fmt.Sprint(v)
			}
			return named
		}
	}
	if len(args) == 0 || len(args)%2 != 0 {
		return nil
	}
	named := make(map[string]string, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return nil
		}
		named[key] = fmt.Sprint(args[i+1])
	}
	return named
}

func hasAny(named map[string]string, segments []segment, params []int) bool {
	for _, idx := range params {
		if _, ok := named[segments[idx].name]; ok {
			return true
		}
	}
	return false
}

type segment struct {
	name  string
	param bool
	value string
}

func parseSegments(pattern string) ([]segment, error) {
	var segments []segment
	rest := pattern
	for rest != "" {
		start := strings.Index(rest, "{")
		if start == -1 {
			segments = append(segments, segment{name: rest})
			break
		}
		if start > 0 {
			segments = append(segments, segment{name: rest[:start]})
		}
		rest = rest[start+1:]
		end := strings.Index(rest, "}")
		if end == -1 {
			return nil, fmt.Errorf("pattern %s: unmatched {", pattern)
		}
		name := strings.TrimSuffix(rest[:end], "...")
		rest = rest[end+1:]
		segments = append(segments, segment{name: name, param: true})
	}
	return segments, nil
}

package structpages

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
)

// PrintRoutes parses the page tree and lists the routes it would register,
// one per line: method, full route, page name and title.
func PrintRoutes(route string, page any, args ...any) (string, error) {
	pc, err := parsePageTree(route, page, args...)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for node := range pc.root.All() {
		if len(node.Components) == 0 && !hasServeHTTP(node) {
			continue
		}
		var comps []string
		for name := range node.Components {
			comps = append(comps, name)
		}
		slices.Sort(comps)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", node.Method, node.FullRoute(), node.Name, node.Title, strings.Join(comps, ","))
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func hasServeHTTP(node *PageNode) bool {
	if !node.Value.IsValid() {
		return false
	}
	_, ok := node.Value.Type().MethodByName("ServeHTTP")
	return ok
}

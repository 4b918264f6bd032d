package structpages

import (
	"fmt"
	"iter"
	"maps"
	"path"
	"reflect"
	"slices"
	"strings"
)

// PageNode is one page in the parsed tree.
type PageNode struct {
	Name        string
	Title       string
	Method      string
	Route       string
	Value       reflect.Value
	Props       map[string]reflect.Method
	Components  map[string]reflect.Method
	Config      *reflect.Method
	Middlewares *reflect.Method
	Parent      *PageNode
	Children    []*PageNode
}

// FullRoute joins the routes from the root down to this node.
func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	return path.Join(pn.Parent.FullRoute(), pn.Route)
}

// All iterates the subtree rooted at pn, depth first, parents before children.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, fn func(*PageNode) bool) bool {
	if !fn(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

func (pn PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + pn.Name)
	sb.WriteString("\n  title: " + pn.Title)
	sb.WriteString("\n  route: " + pn.Method + " " + pn.Route)
	sb.WriteString("\n  middlewares: " + formatMethod(pn.Middlewares))
	sb.WriteString("\n  config: " + formatMethod(pn.Config))
	if pn.Value.IsValid() && pn.Value.Type().Implements(handlerType) {
		sb.WriteString("\n  is http.Handler: true")
	}
	for _, name := range slices.Sorted(maps.Keys(pn.Components)) {
		m := pn.Components[name]
		sb.WriteString("\n  component: " + name + " -> " + formatMethod(&m))
	}
	for _, name := range slices.Sorted(maps.Keys(pn.Props)) {
		m := pn.Props[name]
		sb.WriteString("\n  props: " + name + " -> " + formatMethod(&m))
	}
	for i, child := range pn.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		for _, line := range strings.SplitAfter(strings.TrimRight(child.String(), "\n"), "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}

func formatMethod(method *reflect.Method) string {
	if method == nil || method.Func == (reflect.Value{}) {
		return "<nil>"
	}
	recv := method.Type.In(0)
	if recv.Kind() == reflect.Ptr {
		recv = recv.Elem()
	}
	return fmt.Sprintf("%s.%s", recv.String(), method.Name)
}

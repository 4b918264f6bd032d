package structpages

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

type parseContext struct {
	root *PageNode
	deps *deps
}

func parsePageTree(route string, page any, args ...any) (*parseContext, error) {
	pc := &parseContext{deps: newDeps()}
	for _, v := range args {
		if err := pc.deps.add(v); err != nil {
			return nil, fmt.Errorf("error adding argument to registry: %w", err)
		}
	}
	root, err := pc.parsePage(route, "", page)
	if err != nil {
		return nil, err
	}
	pc.root = root
	return pc, nil
}

func (p *parseContext) parsePage(route, fieldName string, page any) (*PageNode, error) {
	if page == nil {
		return nil, errors.New("page is nil")
	}
	st := reflect.TypeOf(page) // struct type
	pt := st                   // pointer type
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s: expected a struct, got %s", cmp.Or(fieldName, st.String()), st.Kind())
	}

	value := reflect.ValueOf(page)
	if value.Kind() != reflect.Ptr {
		pv := reflect.New(st)
		pv.Elem().Set(value)
		value = pv
	}
	node := &PageNode{Value: value, Name: cmp.Or(fieldName, st.Name())}
	node.Method, node.Route, node.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		if strings.TrimSpace(tag) == "" {
			return nil, fmt.Errorf("page %s: field %s has an empty route", node.Name, field.Name)
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		child, err := p.parsePage(tag, field.Name, reflect.New(typ).Interface())
		if err != nil {
			return nil, err
		}
		child.Parent = node
		node.Children = append(node.Children, child)
	}

	var initMethod *reflect.Method
	for _, t := range []reflect.Type{st, pt} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if isPromotedMethod(&method) {
				continue
			}
			switch {
			case isComponent(&method):
				if node.Components == nil {
					node.Components = make(map[string]reflect.Method)
				}
				node.Components[method.Name] = method
			case strings.HasSuffix(method.Name, "Props"):
				if node.Props == nil {
					node.Props = make(map[string]reflect.Method)
				}
				node.Props[method.Name] = method
			case method.Name == "PageConfig":
				node.Config = &method
			case method.Name == "Middlewares":
				node.Middlewares = &method
			case method.Name == "Init":
				initMethod = &method
			}
		}
	}

	if initMethod != nil {
		res, err := p.callMethod(node, initMethod, nil)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", node.Name, err)
		}
		if _, err := extractError(res); err != nil {
			return nil, fmt.Errorf("page %s: Init: %w", node.Name, err)
		}
	}

	return node, nil
}

// callMethod calls method on the node's value. positional values fill the
// leading parameters; the rest are resolved by type from scoped values
// (request, response writer, context), the node itself, and the mounted
// dependencies, in that order.
func (p *parseContext) callMethod(pn *PageNode, method *reflect.Method,
	positional []reflect.Value, scoped ...any,
) ([]reflect.Value, error) {
	if method.Type.IsVariadic() {
		return nil, fmt.Errorf("method %s: variadic methods are not supported", formatMethod(method))
	}
	recv, err := receiverFor(pn.Value, method.Type.In(0))
	if err != nil {
		return nil, fmt.Errorf("method %s: %w", formatMethod(method), err)
	}
	in := make([]reflect.Value, method.Type.NumIn())
	in[0] = recv
	filled := 1
	for _, arg := range positional {
		if filled >= len(in) {
			break // methods may take fewer arguments than provided
		}
		want := method.Type.In(filled)
		if !arg.IsValid() || !arg.Type().AssignableTo(want) {
			return nil, fmt.Errorf("method %s: argument %d has type %s, want %s",
				formatMethod(method), filled, typeName(arg), want)
		}
		in[filled] = arg
		filled++
	}
	for i := filled; i < len(in); i++ {
		v, err := p.resolve(pn, method.Type.In(i), scoped)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", formatMethod(method), err)
		}
		in[i] = v
	}
	return method.Func.Call(in), nil
}

func (p *parseContext) resolve(pn *PageNode, want reflect.Type, scoped []any) (reflect.Value, error) {
	for _, s := range scoped {
		if s == nil {
			continue
		}
		if sv := reflect.ValueOf(s); sv.Type().AssignableTo(want) {
			return sv, nil
		}
	}
	if pnv := reflect.ValueOf(pn); pnv.Type() == want {
		return pnv, nil
	}
	if v, ok := p.deps.lookup(want); ok {
		return v, nil
	}
	return reflect.Value{}, fmt.Errorf("requires argument of type %s, but not found", want)
}

func receiverFor(v reflect.Value, want reflect.Type) (reflect.Value, error) {
	switch {
	case v.Type() == want:
		return v, nil
	case v.Kind() == reflect.Ptr && v.Type().Elem() == want:
		return v.Elem(), nil
	case want.Kind() == reflect.Ptr && want.Elem() == v.Type():
		if v.CanAddr() {
			return v.Addr(), nil
		}
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		return pv, nil
	}
	return reflect.Value{}, fmt.Errorf("receiver type mismatch: expected %s, got %s", want, v.Type())
}

func (p *parseContext) callComponentMethod(pn *PageNode, method *reflect.Method,
	props []reflect.Value, scoped ...any,
) (component, error) {
	results, err := p.callMethod(pn, method, props, scoped...)
	if err != nil {
		return nil, fmt.Errorf("error calling component method %s: %w", formatMethod(method), err)
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("method %s must return a single result, got %d", formatMethod(method), len(results))
	}
	comp, ok := results[0].Interface().(component)
	if !ok || comp == nil {
		return nil, fmt.Errorf("method %s returned a nil component", formatMethod(method))
	}
	return comp, nil
}

func (p *parseContext) urlFor(v any) (string, error) {
	if f, ok := v.(func(*PageNode) bool); ok {
		for node := range p.root.All() {
			if f(node) {
				return node.FullRoute(), nil
			}
		}
		return "", errors.New("urlfor: no page node matched the predicate")
	}
	ptv := pointerType(reflect.TypeOf(v))
	for node := range p.root.All() {
		if pointerType(node.Value.Type()) == ptv {
			return node.FullRoute(), nil
		}
	}
	return "", fmt.Errorf("urlfor: no page node found for %s", ptv.String())
}

func extractError(results []reflect.Value) ([]reflect.Value, error) {
	if len(results) == 0 || !results[len(results)-1].Type().AssignableTo(errorType) {
		return results, nil
	}
	last := results[len(results)-1].Interface()
	results = results[:len(results)-1]
	if last == nil {
		return results, nil
	}
	return results, last.(error)
}

func pointerType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t
	}
	return reflect.PointerTo(t)
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return v.Type().String()
}

func parseTag(route string) (method, path, title string) {
	method = methodAll
	parts := strings.Fields(route)
	switch len(parts) {
	case 0:
		return method, "/", ""
	case 1:
		return method, parts[0], ""
	}
	if m := strings.ToUpper(parts[0]); slices.Contains(validMethod, m) {
		return m, parts[1], strings.Join(parts[2:], " ")
	}
	return method, parts[0], strings.Join(parts[1:], " ")
}

const methodAll = "ALL"

var validMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
	methodAll,
}

type component interface {
	Render(context.Context, io.Writer) error
}

var (
	errorType     = reflect.TypeFor[error]()
	handlerType   = reflect.TypeFor[http.Handler]()
	componentType = reflect.TypeFor[component]()
)

func isComponent(m *reflect.Method) bool {
	if m.Type.NumOut() != 1 {
		return false
	}
	return m.Type.Out(0).Implements(componentType)
}

func isPromotedMethod(method *reflect.Method) bool {
	// promoted methods from embedded types are compiler generated wrappers
	// https://github.com/golang/go/issues/73883
	pc := method.Func.Pointer()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return false
	}
	file, line := fn.FileLine(pc)
	return file == "<autogenerated>" && line == 1
}

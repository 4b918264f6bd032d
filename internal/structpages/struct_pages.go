package structpages

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/angelofallars/htmx-go"
)

// MiddlewareFunc wraps the handler of a page. It receives the page node so it
// can inspect the route and title.
type MiddlewareFunc func(http.Handler, *PageNode) http.Handler

// ErrorHandler writes the response for an error returned while serving a page.
type ErrorHandler func(http.ResponseWriter, *http.Request, error)

// StructPages mounts page trees onto a Router.
type StructPages struct {
	onError       ErrorHandler
	middlewares   []MiddlewareFunc
	defaultConfig func(*http.Request) (string, error)
}

// Option configures StructPages.
type Option func(*StructPages)

// New returns a StructPages with the given options applied.
func New(options ...Option) *StructPages {
	sp := &StructPages{
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
	for _, opt := range options {
		opt(sp)
	}
	return sp
}

// WithErrorHandler sets the handler for errors returned by pages.
func WithErrorHandler(onError ErrorHandler) Option {
	return func(sp *StructPages) {
		sp.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page, outside page middlewares.
// The first middleware is the outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(sp *StructPages) {
		sp.middlewares = append(sp.middlewares, middlewares...)
	}
}

// WithDefaultPageConfig sets the component selector used by pages without a
// PageConfig method.
func WithDefaultPageConfig(config func(*http.Request) (string, error)) Option {
	return func(sp *StructPages) {
		sp.defaultConfig = config
	}
}

// MountPages parses the page tree rooted at page and registers its routes.
// args are made available to page methods by type.
func (sp *StructPages) MountPages(router Router, page any, route, title string, args ...any) error {
	pc, err := parsePageTree(route, page, args...)
	if err != nil {
		return err
	}
	if title != "" {
		pc.root.Title = title
	}
	return sp.registerPageItem(router, pc, pc.root, nil)
}

func (sp *StructPages) registerPageItem(router Router, pc *parseContext, page *PageNode, inherited []MiddlewareFunc) error {
	if page.Route == "" {
		return fmt.Errorf("page %s: route is empty", page.Name)
	}
	own, err := sp.pageMiddlewares(pc, page)
	if err != nil {
		return err
	}
	chain := append(append([]MiddlewareFunc{}, inherited...), own...)

	for _, child := range page.Children {
		if err := sp.registerPageItem(router, pc, child, chain); err != nil {
			return err
		}
	}

	handler := sp.buildHandler(pc, page)
	if handler == nil {
		return nil
	}
	all := append(append([]MiddlewareFunc{withParseContext(pc)}, sp.middlewares...), chain...)
	for i := len(all) - 1; i >= 0; i-- {
		handler = all[i](handler, page)
	}
	router.HandleMethod(page.Method, page.FullRoute(), handler)
	return nil
}

func (sp *StructPages) pageMiddlewares(pc *parseContext, page *PageNode) ([]MiddlewareFunc, error) {
	if page.Middlewares == nil {
		return nil, nil
	}
	res, err := pc.callMethod(page, page.Middlewares, nil)
	if err != nil {
		return nil, fmt.Errorf("page %s: Middlewares: %w", page.Name, err)
	}
	res, err = extractError(res)
	if err != nil {
		return nil, fmt.Errorf("page %s: Middlewares: %w", page.Name, err)
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("page %s: Middlewares must return []MiddlewareFunc, got %d results", page.Name, len(res))
	}
	mws, ok := res[0].Interface().([]MiddlewareFunc)
	if !ok {
		return nil, fmt.Errorf("page %s: Middlewares returned %s, want []MiddlewareFunc", page.Name, res[0].Type())
	}
	return mws, nil
}

func (sp *StructPages) buildHandler(pc *parseContext, page *PageNode) http.Handler {
	if h := sp.asHandler(pc, page); h != nil {
		return h
	}
	if len(page.Components) == 0 {
		return nil
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, err := sp.componentName(pc, page, r)
		if err != nil {
			sp.onError(w, r, err)
			return
		}
		method, ok := page.Components[name]
		if !ok {
			if name == "Page" || !htmx.IsHTMX(r) {
				sp.onError(w, r, fmt.Errorf("page %s has no %s component", page.Name, name))
				return
			}
			// unknown partial: swap the whole document
			method, ok = page.Components["Page"]
			if !ok {
				sp.onError(w, r, fmt.Errorf("page %s has no %s or Page component", page.Name, name))
				return
			}
			_ = htmx.NewResponse().Retarget("body").Write(&headerOnly{w})
		}

		bw := newBuffered(w)
		props, err := sp.getProps(pc, page, &method, r, bw)
		if err != nil {
			bw.discard()
			sp.onError(w, r, err)
			return
		}
		comp, err := pc.callComponentMethod(page, &method, props, r, bw, r.Context())
		if err != nil {
			bw.discard()
			sp.onError(w, r, err)
			return
		}
		if err := comp.Render(r.Context(), bw); err != nil {
			bw.discard()
			sp.onError(w, r, fmt.Errorf("render %s.%s: %w", page.Name, name, err))
			return
		}
		_ = bw.close()
	})
}

func (sp *StructPages) componentName(pc *parseContext, page *PageNode, r *http.Request) (string, error) {
	if page.Config != nil {
		res, err := pc.callMethod(page, page.Config, nil, r)
		if err != nil {
			return "", fmt.Errorf("page %s: PageConfig: %w", page.Name, err)
		}
		res, err = extractError(res)
		if err != nil {
			return "", fmt.Errorf("page %s: PageConfig: %w", page.Name, err)
		}
		if len(res) != 1 || res[0].Kind() != reflect.String {
			return "", fmt.Errorf("page %s: PageConfig must return a component name", page.Name)
		}
		return res[0].String(), nil
	}
	if sp.defaultConfig != nil {
		return sp.defaultConfig(r)
	}
	return "Page", nil
}

// getProps calls <Component>Props, falling back to Props. The results, minus
// a trailing error, become the leading arguments of the component method.
func (sp *StructPages) getProps(pc *parseContext, page *PageNode, compMethod *reflect.Method,
	r *http.Request, w http.ResponseWriter,
) ([]reflect.Value, error) {
	propsMethod, ok := page.Props[compMethod.Name+"Props"]
	if !ok {
		propsMethod, ok = page.Props["Props"]
	}
	if !ok {
		return nil, nil
	}
	res, err := pc.callMethod(page, &propsMethod, nil, r, w, r.Context())
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", page.Name, err)
	}
	return extractError(res)
}

type httpErrHandler interface {
	ServeHTTP(http.ResponseWriter, *http.Request) error
}

// asHandler returns a handler for pages that declare their own ServeHTTP.
// Besides the standard signature, ServeHTTP may return an error, take extra
// injected parameters, or both.
func (sp *StructPages) asHandler(pc *parseContext, page *PageNode) http.Handler {
	v := page.Value
	if !v.IsValid() {
		return nil
	}
	method, ok := pointerType(v.Type()).MethodByName("ServeHTTP")
	if !ok || isPromotedMethod(&method) {
		if v.Kind() == reflect.Ptr {
			method, ok = v.Type().Elem().MethodByName("ServeHTTP")
		} else {
			method, ok = v.Type().MethodByName("ServeHTTP")
		}
		if !ok || isPromotedMethod(&method) {
			return nil
		}
	}

	switch h := v.Interface().(type) {
	case http.Handler:
		return h
	case httpErrHandler:
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := h.ServeHTTP(w, r); err != nil {
				sp.onError(w, r, err)
			}
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := pc.callMethod(page, &method, []reflect.Value{reflect.ValueOf(w), reflect.ValueOf(r)}, r.Context())
		if err == nil {
			_, err = extractError(res)
		}
		if err != nil {
			sp.onError(w, r, err)
		}
	})
}

// headerOnly lets htmx-go set response headers without committing the status.
type headerOnly struct{ http.ResponseWriter }

func (headerOnly) WriteHeader(int) {}

var errNoParseContext = errors.New("structpages: parse context not found, was the page mounted?")

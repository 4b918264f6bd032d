package site

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/angelofallars/htmx-go"
	g "maragu.dev/gomponents"

	"github.com/warehousepro/landing/internal/logger"
	"github.com/warehousepro/landing/internal/sections"
	"github.com/warehousepro/landing/internal/structpages"
)

// HTTPError is an error with the status code and message the visitor sees.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Message)
}

func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func errorHandler(log *slog.Logger) structpages.ErrorHandler {
	log = log.With(logger.Scope("site"))
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var httpErr HTTPError
		if !errors.As(err, &httpErr) {
			log.ErrorContext(r.Context(), "request failed",
				slog.String("path", r.URL.Path), logger.Error(err))
			writeError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
		log.DebugContext(r.Context(), "request rejected",
			slog.String("path", r.URL.Path), slog.Int("status", httpErr.Code), logger.Error(err))
		writeError(w, r, httpErr.Code, httpErr.Message)
	}
}

// writeError renders an error fragment for htmx requests and a full page
// otherwise.
func writeError(w http.ResponseWriter, r *http.Request, code int, message string) {
	var node g.Node
	if htmx.IsHTMX(r) {
		node = sections.ErrorFragment(code, message)
	} else {
		node = sections.ErrorPage(code, message)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = node.Render(w)
}

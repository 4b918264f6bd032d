package chirouter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/warehousepro/landing/internal/structpages"
)

func TestRouter(t *testing.T) {
	r := New(chi.NewRouter())
	r.HandleMethod(http.MethodGet, "/pricing", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pricing"))
	}))
	r.HandleMethod("ALL", "/any", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Method))
	}))
	r.HandleMethod(http.MethodGet, "/leads/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("lead " + chi.URLParam(r, "id")))
	}))

	tests := []struct {
		method, path string
		code         int
		body         string
	}{
		{http.MethodGet, "/pricing?billing=annual", http.StatusOK, "pricing"},
		{http.MethodPost, "/pricing", http.StatusMethodNotAllowed, ""},
		{http.MethodPost, "/any", http.StatusOK, "POST"},
		{http.MethodDelete, "/any", http.StatusOK, "DELETE"},
		{http.MethodGet, "/leads/123", http.StatusOK, "lead 123"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if tt.body != "" && rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}
}

type healthPage struct{}

func (healthPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

type pages struct {
	health healthPage `route:"GET /health"`
}

func TestMountPages(t *testing.T) {
	r := New(chi.NewRouter())
	if err := structpages.New().MountPages(r, pages{}, "/", "Landing"); err != nil {
		t.Fatal(err)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("got %d %q, want 200 %q", rec.Code, rec.Body.String(), "ok")
	}
}

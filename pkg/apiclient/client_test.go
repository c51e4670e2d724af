package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

type cliente struct {
	ID          int64  `json:"id_cliente"`
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razon_social"`
}

func TestResourceCRUD(t *testing.T) {
	var lastCSRF atomic.Value
	lastCSRF.Store("")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			lastCSRF.Store(r.Header.Get("X-CSRFToken"))
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/clientes/":
			// el login deja la cookie csrf
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok123", Path: "/"})
			json.NewEncoder(w).Encode([]cliente{{ID: 1, RUC: "800123", RazonSocial: "Uno"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/clientes/":
			var in cliente
			json.NewDecoder(r.Body).Decode(&in)
			in.ID = 2
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(in)
		case r.Method == http.MethodPut && r.URL.Path == "/api/clientes/2/":
			var in cliente
			json.NewDecoder(r.Body).Decode(&in)
			in.ID = 2
			json.NewEncoder(w).Encode(in)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/clientes/2/":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "cliente no encontrado"})
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	res := NewResource[cliente](c, "clientes")
	ctx := context.Background()

	list, err := res.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].RUC != "800123" {
		t.Fatalf("unexpected list: %+v", list)
	}

	created, err := res.Create(ctx, cliente{RUC: "800456", RazonSocial: "Dos"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != 2 {
		t.Fatalf("expected id 2, got %d", created.ID)
	}
	if got := lastCSRF.Load().(string); got != "tok123" {
		t.Fatalf("expected csrf header from cookie, got %q", got)
	}

	if _, err := res.Update(ctx, 2, created); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if err := res.Delete(ctx, 2); err != nil {
		t.Fatalf("first Delete error: %v", err)
	}
}

func TestCSRFAbsentCookieSendsNoHeader(t *testing.T) {
	headerSet := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header[http.CanonicalHeaderKey("X-CSRFToken")]; ok {
			headerSet = true
		}
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "CSRF requerido"})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	res := NewResource[cliente](c, "clientes")

	_, err := res.Create(context.Background(), cliente{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403 APIError, got %v", err)
	}
	if headerSet {
		t.Fatalf("X-CSRFToken should not be sent without the cookie")
	}
}

func TestDeleteRepeatedSurfacesServerError(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && !deleted {
			deleted = true
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "ya no existe"})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	res := NewResource[cliente](c, "clientes")
	ctx := context.Background()

	if err := res.Delete(ctx, 1); err != nil {
		t.Fatalf("first delete should pass: %v", err)
	}
	err := res.Delete(ctx, 1)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("second delete should surface 404, got %v", err)
	}
	if apiErr.Message != "ya no existe" {
		t.Fatalf("server message lost: %q", apiErr.Message)
	}
}

func TestErrorCarriesFieldDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "validación",
			"details": map[string]string{"ruc": "ya existe un cliente con ese RUC"},
		})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	res := NewResource[cliente](c, "clientes")

	_, err := res.Create(context.Background(), cliente{RUC: "800123"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Fields["ruc"] == "" {
		t.Fatalf("field details lost: %+v", apiErr)
	}
}

func TestFanOutAppliesPartialResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/clientes/":
			json.NewEncoder(w).Encode([]cliente{{ID: 1}})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "se rompió"})
		}
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	clientes := NewResource[cliente](c, "clientes")
	rotas := NewResource[cliente](c, "rutas")

	var okList, badList []cliente
	errs := FanOut(context.Background(),
		func(ctx context.Context) error {
			list, err := clientes.List(ctx)
			if err == nil {
				okList = list
			}
			return err
		},
		func(ctx context.Context) error {
			list, err := rotas.List(ctx)
			if err == nil {
				badList = list
			}
			return err
		},
	)

	if errs[0] != nil {
		t.Fatalf("first fetch should pass: %v", errs[0])
	}
	if errs[1] == nil {
		t.Fatalf("second fetch should fail")
	}
	if len(okList) != 1 {
		t.Fatalf("successful fetch result should be applied")
	}
	if badList != nil {
		t.Fatalf("failed fetch should not apply data")
	}
	if FirstError(errs) == nil {
		t.Fatalf("FirstError should report the failure")
	}
}

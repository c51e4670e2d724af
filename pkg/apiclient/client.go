// Package apiclient es un cliente genérico para las colecciones REST
// del backend: /api/{recurso}/. Lo usan los jobs internos y las
// herramientas de línea de comando que consumen la API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const csrfCookie = "csrftoken"

// Client comparte base URL, cookie jar y transporte entre recursos.
type Client struct {
	baseURL string
	http    *http.Client
}

// New arma un cliente con cookie jar propio. El jar importa: de ahí
// sale el token CSRF para los verbos de escritura.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// WithHTTPClient reemplaza el http.Client, conservando el jar si el
// nuevo no trae uno.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc.Jar == nil {
		hc.Jar = c.http.Jar
	}
	c.http = hc
	return c
}

// APIError es el error que devuelve el servidor. Fields trae el
// detalle por campo cuando el backend lo manda.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for campo, msg := range e.Fields {
			parts = append(parts, campo+": "+msg)
		}
		return fmt.Sprintf("api: status %d: %s (%s)", e.Status, e.Message, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Resource ata el cliente a una colección concreta.
type Resource[T any] struct {
	client *Client
	path   string // p.ej. "clientes"
}

// NewResource crea el acceso tipado a /api/{path}/.
func NewResource[T any](c *Client, path string) Resource[T] {
	return Resource[T]{client: c, path: strings.Trim(path, "/")}
}

func (r Resource[T]) collectionURL() string {
	return r.client.baseURL + "/api/" + r.path + "/"
}

func (r Resource[T]) itemURL(id int64) string {
	return fmt.Sprintf("%s/api/%s/%d/", r.client.baseURL, r.path, id)
}

func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.client.do(ctx, http.MethodGet, r.collectionURL(), nil, &out)
	return out, err
}

func (r Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodGet, r.itemURL(id), nil, &out)
	return out, err
}

func (r Resource[T]) Create(ctx context.Context, body T) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPost, r.collectionURL(), body, &out)
	return out, err
}

func (r Resource[T]) Update(ctx context.Context, id int64, body T) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPut, r.itemURL(id), body, &out)
	return out, err
}

// Delete devuelve el error del servidor tal cual: si el recurso ya no
// existe el segundo delete falla con 404, no se disimula localmente.
func (r Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, r.itemURL(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// verbos de escritura llevan el CSRF si la cookie está; sin cookie
	// el request sale igual y el servidor decide
	if method != http.MethodGet {
		if token := c.csrfToken(rawURL); token != "" {
			req.Header.Set("X-CSRFToken", token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) csrfToken(rawURL string) string {
	if c.http.Jar == nil {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == csrfCookie {
			return ck.Value
		}
	}
	return ""
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var payload struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Details json.RawMessage `json:"details"`
	}
	if json.Unmarshal(raw, &payload) != nil {
		return apiErr
	}
	if payload.Message != "" {
		apiErr.Message = payload.Message
	} else if payload.Error != "" {
		apiErr.Message = payload.Error
	}
	if len(payload.Details) > 0 {
		fields := map[string]string{}
		if json.Unmarshal(payload.Details, &fields) == nil && len(fields) > 0 {
			apiErr.Fields = fields
		}
	}
	return apiErr
}

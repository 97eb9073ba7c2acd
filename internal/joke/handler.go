package joke

import (
	"math/rand"
	"net/http"
)

// CORS header values sent by the handler.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET"
	AllowHeaders = "Content-Type"
	MaxAge       = "3600"
)

// Request is the part of an inbound request the handler reads.
type Request interface {
	Method() string
}

// Response is the write side supplied by the hosting runtime. Exactly one of
// NoContent or JSON is called per request, after any SetHeader calls.
type Response interface {
	SetHeader(key, value string)
	NoContent(status int) error
	JSON(status int, v any) error
}

// Picker returns an index in [0, n). Implementations must be safe for
// concurrent use when the handler is shared across goroutines.
type Picker func(n int) int

// Body is the JSON payload of a joke response.
type Body struct {
	Joke string `json:"joke"`
}

// Handler answers CORS preflights and serves one random joke otherwise.
// It holds no mutable state and may be shared across goroutines.
type Handler struct {
	catalog Catalog
	pick    Picker
}

// Option customizes a Handler.
type Option func(*Handler)

// WithPicker replaces the random source, mainly for tests.
func WithPicker(p Picker) Option {
	return func(h *Handler) {
		if p != nil {
			h.pick = p
		}
	}
}

// New returns a Handler over catalog. It panics if the catalog is empty,
// since no valid joke response could ever be produced.
func New(catalog Catalog, opts ...Option) *Handler {
	if catalog.Len() == 0 {
		panic("joke: empty catalog")
	}
	h := &Handler{catalog: catalog, pick: rand.Intn}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Catalog returns the catalog the handler draws from.
func (h *Handler) Catalog() Catalog { return h.catalog }

// Handle writes either a 204 preflight acknowledgment or a 200 joke body.
// The method comparison is case-sensitive; anything other than "OPTIONS",
// including an empty method, gets a joke.
func (h *Handler) Handle(req Request, resp Response) error {
	resp.SetHeader("Access-Control-Allow-Origin", AllowOrigin)

	if req.Method() == http.MethodOptions {
		resp.SetHeader("Access-Control-Allow-Methods", AllowMethods)
		resp.SetHeader("Access-Control-Allow-Headers", AllowHeaders)
		resp.SetHeader("Access-Control-Max-Age", MaxAge)
		return resp.NoContent(http.StatusNoContent)
	}

	return resp.JSON(http.StatusOK, Body{Joke: h.Pick()})
}

// Pick draws one joke. An out-of-range index from a custom picker is folded
// back into range so a response always carries a catalog entry.
func (h *Handler) Pick() string {
	n := h.catalog.Len()
	i := h.pick(n) % n
	if i < 0 {
		i += n
	}
	return h.catalog.At(i)
}

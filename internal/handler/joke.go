// Package handler adapts the joke handler to the runtimes that host it: an
// echo server and a plain net/http function entry point.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/joke"
)

// JokeHandler serves jokes on echo routes.
type JokeHandler struct {
	Jokes *joke.Handler
}

// NewJokeHandler wraps j for use with echo.
func NewJokeHandler(j *joke.Handler) *JokeHandler {
	return &JokeHandler{Jokes: j}
}

// Serve is the echo handler. It is registered for every method so that
// OPTIONS preflights reach the joke handler instead of echo's router.
func (h *JokeHandler) Serve(c echo.Context) error {
	x := echoExchange{c: c}
	return h.Jokes.Handle(x, x)
}

// echoExchange exposes an echo.Context as joke.Request and joke.Response.
type echoExchange struct {
	c echo.Context
}

func (x echoExchange) Method() string { return x.c.Request().Method }

func (x echoExchange) SetHeader(key, value string) { x.c.Response().Header().Set(key, value) }

func (x echoExchange) NoContent(status int) error { return x.c.NoContent(status) }

func (x echoExchange) JSON(status int, v any) error { return x.c.JSON(status, v) }

// HTTPFunc returns a net/http handler for runtimes that call a plain
// func(http.ResponseWriter, *http.Request), such as Cloud Functions.
func HTTPFunc(j *joke.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		x := httpExchange{w: w, r: r}
		// Headers are already on the wire when encoding fails; nothing left to report.
		_ = j.Handle(x, x)
	}
}

// httpExchange exposes a net/http request/response pair as joke.Request and
// joke.Response. A nil request is treated as a request without a method.
type httpExchange struct {
	w http.ResponseWriter
	r *http.Request
}

func (x httpExchange) Method() string {
	if x.r == nil {
		return ""
	}
	return x.r.Method
}

func (x httpExchange) SetHeader(key, value string) { x.w.Header().Set(key, value) }

func (x httpExchange) NoContent(status int) error {
	x.w.WriteHeader(status)
	return nil
}

func (x httpExchange) JSON(status int, v any) error {
	x.w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	x.w.WriteHeader(status)
	return json.NewEncoder(x.w).Encode(v)
}

package handler // HTTP handlers and hosting-runtime adapters

import (
	"net/http" // net/http provides status codes

	"github.com/labstack/echo/v4" // echo is the web framework used for the server
)

// Health is a liveness probe for load balancers and Cloud Run. It returns a
// plain text "ok" with 200 and never touches the joke catalog.
func Health(c echo.Context) error { // Health handler signature accepts an echo context and returns an error
	return c.String(http.StatusOK, "ok") // write "ok" with a 200 OK status; String writes plain text
}

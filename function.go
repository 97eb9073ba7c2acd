// Package jokes is the Cloud Functions deployment of the random joke
// endpoint. Deploy with --entry-point GetRandomJoke.
package jokes

import (
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/handler"
	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/joke"
)

var serveJoke = handler.HTTPFunc(joke.New(joke.Default()))

func init() {
	functions.HTTP("GetRandomJoke", GetRandomJoke)
}

// GetRandomJoke answers CORS preflights with 204 and every other request
// with {"joke": "..."}.
func GetRandomJoke(w http.ResponseWriter, r *http.Request) {
	serveJoke(w, r)
}

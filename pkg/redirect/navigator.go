package redirect

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/landing/handler"
)

// Navigator moves the client to path.
type Navigator interface {
	Navigate(w http.ResponseWriter, r *http.Request, path string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(w http.ResponseWriter, r *http.Request, path string) error

func (f NavigatorFunc) Navigate(w http.ResponseWriter, r *http.Request, path string) error {
	return f(w, r, path)
}

// HTTPNavigator answers with 302 Found, or with a Datastar redirect event
// when the request came from the Datastar client.
type HTTPNavigator struct{}

func (HTTPNavigator) Navigate(w http.ResponseWriter, r *http.Request, path string) error {
	if handler.IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(path)
	}
	http.Redirect(w, r, path, http.StatusFound)
	return nil
}

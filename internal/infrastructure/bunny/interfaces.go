package bunny

import "net/http"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_doer.go

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

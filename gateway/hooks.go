package gateway

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// RequestHook runs on every outbound request before it leaves the client.
// Hooks must not block, perform I/O or fail: a hook that cannot do its job
// leaves the request untouched and the request is still sent.
type RequestHook func(*http.Request)

// ResponseHook runs on every inbound response or transport failure, in
// order, each receiving what the previous one returned.
type ResponseHook func(req *http.Request, resp *http.Response, err error) (*http.Response, error)

// TokenProvider supplies the current bearer token, or "" when there is none.
type TokenProvider interface {
	Token() string
}

// BearerAuth returns the request decorator: it injects the stored credential
// as an Authorization header. Absent, empty and sentinel tokens leave the
// header unset. Header injection is fail-open; the backend is the final
// authority on whether the request is actually authorized.
func BearerAuth(provider TokenProvider) RequestHook {
	return func(req *http.Request) {
		tok := provider.Token()
		if tok == "" || tok == "null" || tok == "undefined" {
			return
		}
		bearer := oauth2.Token{AccessToken: tok, TokenType: "Bearer"}
		bearer.SetAuthHeader(req)
	}
}

// RequestID stamps every outbound request with a unique X-Request-ID so
// client and backend logs can be correlated.
func RequestID() RequestHook {
	return func(req *http.Request) {
		req.Header.Set("X-Request-ID", uuid.New().String())
	}
}

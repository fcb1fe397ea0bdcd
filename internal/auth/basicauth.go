// Package auth implements the dashboard's basic-auth gate.
//
// The gate protects everything outside /api and /health, which is the
// dashboard bundle itself. API routes carry their own Authorization headers
// for the engine and are never gated here. When credentials are not
// configured the gate admits everyone; preview and local environments run
// without secrets.
package auth

import (
	"crypto/subtle"
	"log"
	"net/http"
)

// Gate guards non-API routes with HTTP basic auth.
type Gate struct {
	username string
	password string
}

// NewGate builds a gate from configured credentials. Leaving either value
// empty disables enforcement.
func NewGate(username, password string) *Gate {
	g := &Gate{username: username, password: password}
	if !g.Enabled() {
		log.Println("[auth] dashboard credentials not set, basic-auth gate open")
	}
	return g
}

// Enabled reports whether the gate will actually challenge requests.
func (g *Gate) Enabled() bool {
	return g != nil && g.username != "" && g.password != ""
}

// Middleware enforces basic auth on the wrapped handler. Credential
// comparison is constant-time on both fields.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if !ok || !g.match(user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="platform-shell", charset="UTF-8"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gate) match(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(g.password)) == 1
	return userOK && passOK
}

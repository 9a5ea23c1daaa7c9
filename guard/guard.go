// Package guard gates access to protected views on session presence.
// The decision is pure and synchronous: no I/O happens here.
package guard

import "github.com/nextsteps/nextsteps-cli/sessions"

// Route is a navigation target within the client.
type Route string

const (
	RouteLogin     Route = "login"
	RouteRegister  Route = "register"
	RouteProfile   Route = "profile"
	RouteRoadmap   Route = "roadmap"
	RouteDashboard Route = "dashboard"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	// Render grants access to the protected view.
	Render Decision = iota
	// Redirect sends the caller to the login entry point instead.
	Redirect
)

// Check decides access for a session. A session missing either its
// user id or its credential redirects.
func Check(s sessions.Session) Decision {
	if !s.Valid() {
		return Redirect
	}
	return Render
}

// Protect runs view only when store holds a whole session. On an
// absent session it returns RouteLogin before any side effect of view
// executes.
func Protect(store sessions.Store, view func() error) (Route, error) {
	s, ok := store.Get()
	if !ok || Check(s) == Redirect {
		return RouteLogin, nil
	}
	return "", view()
}

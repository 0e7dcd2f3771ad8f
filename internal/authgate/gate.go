// Package authgate decides whether a navigation may proceed before the
// authentication state is known. Each decision is a one-shot asynchronous
// gate: if the current user is already cached the decision is synchronous,
// otherwise the gate subscribes to the auth-state stream, takes exactly one
// notification, and unsubscribes. Nothing here holds a subscription across
// navigations.
package authgate

import (
	"context"
	"sync"
)

// User is the authenticated admin identity as seen by the gate.
type User struct {
	ID    string
	Email string
	Name  string
}

// StateProvider is the authentication boundary the gate consumes: a nullable
// snapshot of the current user plus a change stream. Implementations must
// deliver the current state immediately to new subscribers once it has
// resolved.
type StateProvider interface {
	CurrentUser() *User
	OnAuthStateChanged(fn func(*User)) (unsubscribe func())
}

// Route names used in redirect decisions.
const (
	RouteLogin     = "login"
	RouteDashboard = "dashboard"
)

// Route describes a navigation target.
type Route struct {
	Name         string
	RequiresAuth bool
}

// Decision is the outcome of gating one navigation.
type Decision int

const (
	Proceed Decision = iota
	RedirectToLogin
	RedirectToDashboard
)

func (d Decision) String() string {
	switch d {
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToDashboard:
		return "redirect-to-dashboard"
	}
	return "proceed"
}

// Gate waits for the authentication state and applies the decision rule.
type Gate struct {
	auth StateProvider
}

// New creates a Gate over the given provider.
func New(auth StateProvider) *Gate {
	return &Gate{auth: auth}
}

// Await returns the user once the authentication state is known. A cached
// user resolves immediately; otherwise it subscribes, takes the first
// notification (which may carry nil for signed-out), and unsubscribes.
//
// There is no built-in deadline: an auth state that never resolves blocks
// until ctx is done. Callers that need a bound attach one to ctx.
func (g *Gate) Await(ctx context.Context) (*User, error) {
	if user := g.auth.CurrentUser(); user != nil {
		return user, nil
	}

	first := make(chan *User, 1)
	var once sync.Once
	unsubscribe := g.auth.OnAuthStateChanged(func(user *User) {
		once.Do(func() { first <- user })
	})
	defer unsubscribe()

	select {
	case user := <-first:
		return user, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Authorize gates one navigation to route.
func (g *Gate) Authorize(ctx context.Context, route Route) (Decision, error) {
	user, err := g.Await(ctx)
	if err != nil {
		return RedirectToLogin, err
	}
	return Decide(route, user), nil
}

// Decide applies the decision rule to a resolved auth state.
func Decide(route Route, user *User) Decision {
	switch {
	case route.RequiresAuth && user == nil:
		return RedirectToLogin
	case route.RequiresAuth:
		return Proceed
	case route.Name == RouteLogin && user != nil:
		return RedirectToDashboard
	default:
		return Proceed
	}
}

package session

import (
	"context"
	"sync"
)

// State is the gate's view of the session.
type State int

const (
	// StatePending means the provider has not yet reported a state. The web
	// client had no such state and treated "don't know yet" as signed out;
	// modeling it explicitly keeps the gate from redirecting prematurely.
	StatePending State = iota
	StateSignedIn
	StateSignedOut
)

// Gate guards protected operations: it resolves the provider's auth-state
// stream to a terminal signed-in or signed-out answer.
type Gate struct {
	provider Provider

	mu    sync.Mutex
	state State
	user  *User
}

func NewGate(p Provider) *Gate {
	return &Gate{provider: p}
}

// State returns the last state the gate observed.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Require waits for the first terminal auth state. It returns the user when
// signed in, an AuthError when signed out, and the context's error if it is
// canceled before the provider reports either.
func (g *Gate) Require(ctx context.Context) (User, error) {
	ch := make(chan *User, 1)
	unsubscribe := g.provider.Subscribe(func(u *User) {
		g.mu.Lock()
		g.user = u
		if u == nil {
			g.state = StateSignedOut
		} else {
			g.state = StateSignedIn
		}
		g.mu.Unlock()
		select {
		case ch <- u:
		default:
		}
	})
	defer unsubscribe()

	select {
	case u := <-ch:
		if u == nil {
			return User{}, AuthError("not signed in: run 'hackmate auth login' first")
		}
		return *u, nil
	case <-ctx.Done():
		return User{}, ctx.Err()
	}
}

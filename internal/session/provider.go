// Package session supplies the authenticated identity for every protected
// operation. It wraps the external identity provider behind a small interface:
// the rest of the program never touches the provider SDK directly and never
// reads ambient sign-in state.
package session

import "context"

// User is the authenticated identity. It is immutable within a session:
// created at sign-in, discarded at sign-out.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// Provider is the identity-provider surface the application consumes.
type Provider interface {
	// SignIn exchanges an identity-provider ID token for a User.
	SignIn(ctx context.Context, idToken string) (User, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// Subscribe registers fn to be called with the current user (nil when
	// signed out) immediately and again on every state change. The returned
	// function unsubscribes.
	Subscribe(fn func(*User)) (unsubscribe func())
}

// AuthError reports a sign-in or sign-out fault from the identity provider.
type AuthError string

func (e AuthError) Error() string {
	return string(e)
}

package session

import (
	"context"
	"fmt"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseProvider implements Provider on Firebase Authentication. Sign-in
// verifies an ID token minted by the web/mobile sign-in flow and resolves it to
// the project's user record; the resulting session is persisted to the user
// config dir so later commands stay signed in.
type FirebaseProvider struct {
	auth *auth.Client
	path string

	mu      sync.Mutex
	current *User
	nextSub int
	subs    map[int]func(*User)
}

// NewFirebaseProvider builds the one and only Firebase initialization path for
// the program and loads any persisted session.
func NewFirebaseProvider(ctx context.Context, projectID string, opts ...option.ClientOption) (*FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFirebaseProvider: unable to initialize app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("NewFirebaseProvider: unable to initialize auth client: %w", err)
	}

	path, err := sessionPath()
	if err != nil {
		return nil, fmt.Errorf("NewFirebaseProvider: unable to determine session path: %w", err)
	}
	current, err := loadSession(path)
	if err != nil {
		// A corrupt session file is not fatal: treat it as signed out.
		current = nil
	}

	return &FirebaseProvider{
		auth:    client,
		path:    path,
		current: current,
		subs:    make(map[int]func(*User)),
	}, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, idToken string) (User, error) {
	tok, err := p.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return User{}, AuthError(fmt.Sprintf("token rejected by identity provider: %v", err))
	}
	rec, err := p.auth.GetUser(ctx, tok.UID)
	if err != nil {
		return User{}, AuthError(fmt.Sprintf("unable to look up user \"%s\": %v", tok.UID, err))
	}
	u := User{
		UID:         rec.UID,
		DisplayName: rec.DisplayName,
		Email:       rec.Email,
		PhotoURL:    rec.PhotoURL,
	}
	if err := saveSession(p.path, u); err != nil {
		return User{}, AuthError(fmt.Sprintf("unable to persist session: %v", err))
	}
	p.set(&u)
	return u, nil
}

func (p *FirebaseProvider) SignOut(ctx context.Context) error {
	if err := clearSession(p.path); err != nil {
		return AuthError(fmt.Sprintf("unable to clear session: %v", err))
	}
	p.set(nil)
	return nil
}

// Subscribe fires fn immediately with the current state, matching the
// on-auth-state-changed contract of the identity provider SDK.
func (p *FirebaseProvider) Subscribe(fn func(*User)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	current := p.current
	p.mu.Unlock()

	fn(current)
	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *FirebaseProvider) set(u *User) {
	p.mu.Lock()
	p.current = u
	fns := make([]func(*User), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(u)
	}
}

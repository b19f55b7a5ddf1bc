package main

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
	"github.com/Unmesh-12634/Hackmate1/internal/session"
)

type loginCmd struct {
	Token string `arg:"" optional:"" help:"Firebase ID token from the sign-in flow. Prompted for when omitted."`
}

func (a *loginCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	provider, err := g.sessionProvider(ctx)
	if err != nil {
		return err
	}

	token := a.Token
	if token == "" {
		q := &survey.Password{Message: "Paste your Firebase ID token:"}
		if err := survey.AskOne(q, &token, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	user, err := provider.SignIn(ctx, token)
	if err != nil {
		toast("error", "Error signing in: %v", err)
		return err
	}

	// Mirror the profile into the users collection so rosters can show names,
	// just as the web client did on every sign-in.
	client, err := g.firestoreClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	store := firestore.NewStore(client)
	profile := firestore.UserProfile{
		Name:   user.DisplayName,
		Email:  user.Email,
		Avatar: user.PhotoURL,
		UID:    user.UID,
	}
	if err := store.SetProfile(ctx, profile); err != nil {
		toast("error", "Signed in, but saving your profile failed: %v", err)
		return err
	}

	toast("success", "Signed in as %s.", user.DisplayName)
	return nil
}

type logoutCmd struct{}

func (a *logoutCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	provider, err := g.sessionProvider(ctx)
	if err != nil {
		return err
	}
	if err := provider.SignOut(ctx); err != nil {
		toast("error", "Error signing out: %v", err)
		return err
	}
	toast("success", "Signed out successfully.")
	return nil
}

type whoamiCmd struct{}

func (a *whoamiCmd) Run(g *globalCmd) error {
	ctx := context.Background()
	provider, err := g.sessionProvider(ctx)
	if err != nil {
		return err
	}
	user, err := session.NewGate(provider).Require(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> (%s)\n", user.DisplayName, user.Email, user.UID)
	return nil
}

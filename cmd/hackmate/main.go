package main

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"github.com/alecthomas/kong"
	"google.golang.org/api/option"

	"github.com/Unmesh-12634/Hackmate1/internal/session"
)

type globalCmd struct {
	ProjectID   string `help:"Firebase/GCP project ID." env:"GCP_PROJECT" required:""`
	Credentials string `help:"Path to a service account key file. The default application credentials are used when omitted." env:"GOOGLE_APPLICATION_CREDENTIALS" type:"path"`
}

func (g *globalCmd) clientOptions() []option.ClientOption {
	if g.Credentials == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(g.Credentials)}
}

func (g *globalCmd) firestoreClient(ctx context.Context) (*fs.Client, error) {
	return fs.NewClient(ctx, g.ProjectID, g.clientOptions()...)
}

func (g *globalCmd) sessionProvider(ctx context.Context) (*session.FirebaseProvider, error) {
	return session.NewFirebaseProvider(ctx, g.ProjectID, g.clientOptions()...)
}

// toast prints a transient user-facing notification, the CLI stand-in for the
// web client's toast popups.
func toast(kind string, format string, a ...interface{}) {
	fmt.Printf("[%s] %s\n", kind, fmt.Sprintf(format, a...))
}

var CLI struct {
	globalCmd

	Auth struct {
		Login  loginCmd  `cmd:"" help:"Sign in with a Firebase ID token."`
		Logout logoutCmd `cmd:"" help:"Sign out and clear the saved session."`
		Whoami whoamiCmd `cmd:"" help:"Show the signed-in user."`
	} `cmd:""`

	Teams struct {
		Create createTeamCmd  `cmd:"" help:"Create a team."`
		Join   joinTeamCmd    `cmd:"" help:"Join a team by invite code."`
		Ls     lsTeamsCmd     `cmd:"" help:"List your teams."`
		Stats  statsCmd       `cmd:"" help:"Show quick stats for your teams."`
		Export exportTeamsCmd `cmd:"" help:"Export your team rosters to a spreadsheet."`
	} `cmd:""`
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run(&CLI.globalCmd)
	ctx.FatalIfErrorf(err)
}

package teams

import (
	"context"

	"github.com/Unmesh-12634/Hackmate1/internal/session"
)

type Context struct {
	context.Context

	DryRun bool
	Force  bool
	Store  Store

	// User is the acting user. Operations never read ambient session state;
	// the caller resolves the session and passes the user in explicitly.
	User session.User

	// Create team inputs, raw form values.
	Name        string
	Description string
	Hackathon   string
	TeamSize    string
	Category    string

	// Join team input.
	InviteCode string

	// Export inputs.
	Output     string
	NoProgress bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
	"github.com/Unmesh-12634/Hackmate1/internal/session"
	"github.com/Unmesh-12634/Hackmate1/internal/teams"
)

// newTeamsContext resolves the session, gates on it, and builds a teams.Context
// wired to Firestore. The returned cleanup closes the client.
func newTeamsContext(g *globalCmd) (*teams.Context, func(), error) {
	ctx := context.Background()
	provider, err := g.sessionProvider(ctx)
	if err != nil {
		return nil, nil, err
	}
	user, err := session.NewGate(provider).Require(ctx)
	if err != nil {
		return nil, nil, err
	}
	client, err := g.firestoreClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	tctx := teams.NewContext(ctx)
	tctx.Store = firestore.NewStore(client)
	tctx.User = user
	return tctx, func() { client.Close() }, nil
}

type createTeamCmd struct {
	Name        string `help:"Team name. The create form is prompted interactively when omitted."`
	Description string `help:"Team or project description."`
	Hackathon   string `help:"Hackathon the team is competing in."`
	Size        string `help:"Desired team size."`
	Category    string `help:"Project category."`
	DryRun      bool   `help:"Print database writes to log and exit without writing."`
}

func (a *createTeamCmd) Run(g *globalCmd) error {
	if a.Name == "" {
		if err := a.askForm(); err != nil {
			return err
		}
	}

	tctx, cleanup, err := newTeamsContext(g)
	if err != nil {
		return err
	}
	defer cleanup()
	tctx.DryRun = a.DryRun
	tctx.Name = a.Name
	tctx.Description = a.Description
	tctx.Hackathon = a.Hackathon
	tctx.TeamSize = a.Size
	tctx.Category = a.Category

	team, id, err := teams.CreateTeam(tctx)
	if err != nil {
		toast("error", "Failed to create team. Please try again.")
		return err
	}
	if a.DryRun {
		return nil
	}
	toast("success", "Team \"%s\" created! Invite code: %s", team.Name, team.InviteCode)
	renderTeams([]firestore.Team{team}, []string{id}, tctx.User.UID)
	return nil
}

// askForm is the CLI rendition of the create-team modal.
func (a *createTeamCmd) askForm() error {
	qs := []*survey.Question{
		{Name: "name", Prompt: &survey.Input{Message: "Team name:"}, Validate: survey.Required},
		{Name: "description", Prompt: &survey.Input{Message: "Description (optional):"}},
		{Name: "hackathon", Prompt: &survey.Input{Message: "Hackathon name:"}, Validate: survey.Required},
		{Name: "size", Prompt: &survey.Select{Message: "Team size:", Options: teams.TeamSizes}},
		{Name: "category", Prompt: &survey.Select{Message: "Project category:", Options: teams.Categories}},
	}
	return survey.Ask(qs, a)
}

type joinTeamCmd struct {
	Code   string `arg:"" optional:"" help:"Invite code (HM-XXXXXX). Prompted for when omitted."`
	DryRun bool   `help:"Print database writes to log and exit without writing."`
}

func (a *joinTeamCmd) Run(g *globalCmd) error {
	code := a.Code
	if code == "" {
		q := &survey.Input{Message: "Invite code:"}
		if err := survey.AskOne(q, &code, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	tctx, cleanup, err := newTeamsContext(g)
	if err != nil {
		return err
	}
	defer cleanup()
	tctx.DryRun = a.DryRun
	tctx.InviteCode = code

	team, _, err := teams.JoinTeam(tctx)
	var already teams.AlreadyMember
	var notFound firestore.TeamNotFound
	switch {
	case errors.As(err, &already):
		toast("info", "You are already a member of this team.")
		return nil
	case errors.As(err, &notFound):
		toast("error", "Invalid invite code. Team not found.")
		return nil
	case err != nil:
		toast("error", "Failed to join team. Please try again.")
		return err
	}
	if a.DryRun {
		return nil
	}
	toast("success", "Successfully joined \"%s\"!", team.Name)
	return nil
}

type lsTeamsCmd struct{}

func (a *lsTeamsCmd) Run(g *globalCmd) error {
	tctx, cleanup, err := newTeamsContext(g)
	if err != nil {
		return err
	}
	defer cleanup()

	ts, ids, err := teams.LsTeams(tctx)
	if err != nil {
		return err
	}
	if len(ts) == 0 {
		fmt.Println("You're not part of any team yet. Create one or join with an invite code.")
		return nil
	}
	renderTeams(ts, ids, tctx.User.UID)
	return nil
}

type statsCmd struct{}

func (a *statsCmd) Run(g *globalCmd) error {
	tctx, cleanup, err := newTeamsContext(g)
	if err != nil {
		return err
	}
	defer cleanup()

	ts, _, err := teams.LsTeams(tctx)
	if err != nil {
		return err
	}
	stats := teams.ComputeStats(ts)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendRow(table.Row{"Total Teams", stats.TotalTeams})
	t.AppendRow(table.Row{"Active Projects", stats.ActiveProjects})
	t.AppendRow(table.Row{"Team Members", stats.TotalMembers})
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type exportTeamsCmd struct {
	Out        string `arg:"" help:"Output path. May be a local file or a gs:// URL."`
	NoProgress bool   `help:"Do not show progress while resolving members."`
}

func (a *exportTeamsCmd) Run(g *globalCmd) error {
	tctx, cleanup, err := newTeamsContext(g)
	if err != nil {
		return err
	}
	defer cleanup()
	tctx.Output = a.Out
	tctx.NoProgress = a.NoProgress

	if err := teams.ExportTeams(tctx); err != nil {
		return err
	}
	toast("success", "Exported team rosters to %s.", a.Out)
	return nil
}

func renderTeams(ts []firestore.Team, ids []string, uid string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Team", "Hackathon", "Category", "Members", "Role", "Invite Code"})
	for i, team := range ts {
		role := "Member"
		if team.LeaderUID == uid {
			role = "Leader"
		}
		t.AppendRow(table.Row{ids[i], team.Name, team.Hackathon, team.Category, len(team.MemberUIDs), role, team.InviteCode})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

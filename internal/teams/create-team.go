package teams

import (
	"errors"
	"fmt"
	"log"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

const maxInviteCodeAttempts = 5

// CreateTeam validates the create-team form inputs in ctx, generates an unused
// invite code, and inserts a new team with the acting user as leader and sole
// member. It returns the stored team and its store-assigned ID.
//
// On any failure nothing is written: validation errors are raised before I/O,
// and store faults abort the operation with no partial state to clean up.
func CreateTeam(ctx *Context) (firestore.Team, string, error) {
	if err := validateCreateTeam(ctx); err != nil {
		return firestore.Team{}, "", err
	}

	code, err := unusedInviteCode(ctx)
	if err != nil {
		return firestore.Team{}, "", err
	}

	team := firestore.Team{
		Name:        ctx.Name,
		Description: ctx.Description,
		Hackathon:   ctx.Hackathon,
		TeamSize:    ctx.TeamSize,
		Category:    ctx.Category,
		LeaderUID:   ctx.User.UID,
		LeaderName:  ctx.User.DisplayName,
		MemberUIDs:  []string{ctx.User.UID},
		Status:      firestore.StatusActive,
		InviteCode:  code,
	}

	if ctx.DryRun {
		log.Print("DRY RUN: would create the following team:")
		log.Printf("%s", team)
		return team, "", nil
	}

	stored, id, err := ctx.Store.CreateTeam(ctx, team)
	if err != nil {
		return firestore.Team{}, "", storeError("CreateTeam", err)
	}
	return stored, id, nil
}

// unusedInviteCode generates invite codes until it finds one no existing team
// carries. The code space (36^6) makes collisions rare; the lookup closes the
// window where the web client would have silently handed out a duplicate.
func unusedInviteCode(ctx *Context) (string, error) {
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code := newInviteCode()
		_, _, err := ctx.Store.TeamByInviteCode(ctx, code)
		var nf firestore.TeamNotFound
		if errors.As(err, &nf) {
			return code, nil
		}
		if err != nil {
			return "", storeError("CreateTeam", err)
		}
		// code already taken, try again
	}
	return "", fmt.Errorf("CreateTeam: no unused invite code found in %d attempts", maxInviteCodeAttempts)
}

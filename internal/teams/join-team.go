package teams

import (
	"log"
	"strings"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

// JoinTeam admits the acting user to the team whose invite code matches
// ctx.InviteCode and returns the updated team. An unknown code fails with
// firestore.TeamNotFound; a code for a team the user already belongs to fails
// with AlreadyMember.
//
// The membership check and the union write are not atomic. Two racing joins by
// the same user can both pass the check, but the array-union write keeps the
// member list duplicate-free either way; the loser of the race merely gets a
// redundant success.
func JoinTeam(ctx *Context) (firestore.Team, string, error) {
	code := strings.TrimSpace(ctx.InviteCode)
	if code == "" {
		return firestore.Team{}, "", ValidationError("invite code is required")
	}

	team, id, err := ctx.Store.TeamByInviteCode(ctx, code)
	if err != nil {
		return firestore.Team{}, "", storeError("JoinTeam", err)
	}
	if team.HasMember(ctx.User.UID) {
		return team, id, AlreadyMember(team.Name)
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would join team \"%s\" (%s)", team.Name, id)
		return team, id, nil
	}

	if err := ctx.Store.AddMember(ctx, id, ctx.User.UID); err != nil {
		return firestore.Team{}, "", storeError("JoinTeam", err)
	}
	// Re-read rather than patching the local copy: the store is the sole source
	// of truth for the member list.
	updated, err := ctx.Store.Team(ctx, id)
	if err != nil {
		return firestore.Team{}, "", storeError("JoinTeam", err)
	}
	return updated, id, nil
}

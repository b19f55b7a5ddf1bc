package teams

import (
	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

// LsTeams returns every team the acting user belongs to, with document IDs.
// A user with no teams gets empty slices, not an error.
func LsTeams(ctx *Context) ([]firestore.Team, []string, error) {
	ts, ids, err := ctx.Store.TeamsByMember(ctx, ctx.User.UID)
	if err != nil {
		return nil, nil, storeError("LsTeams", err)
	}
	return ts, ids, nil
}

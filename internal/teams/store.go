package teams

import (
	"context"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

// Store is the document-store surface the team service consumes. The Firestore
// implementation lives in internal/firestore; tests substitute an in-memory one.
type Store interface {
	// CreateTeam inserts a new team and returns the stored team and its ID.
	CreateTeam(ctx context.Context, t firestore.Team) (firestore.Team, string, error)

	// TeamByInviteCode returns the team carrying the given invite code, or a
	// firestore.TeamNotFound error if no team carries it.
	TeamByInviteCode(ctx context.Context, code string) (firestore.Team, string, error)

	// TeamsByMember returns all teams whose member list contains the given UID.
	TeamsByMember(ctx context.Context, uid string) ([]firestore.Team, []string, error)

	// AddMember adds a UID to a team's member list with set-union semantics.
	AddMember(ctx context.Context, id string, uid string) error

	// Team gets a single team by ID.
	Team(ctx context.Context, id string) (firestore.Team, error)

	// Profiles gets the user profiles for a batch of UIDs. Unknown UIDs yield
	// zero-value profiles with only the UID set.
	Profiles(ctx context.Context, uids []string) ([]firestore.UserProfile, error)
}

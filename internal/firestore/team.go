package firestore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const TEAMS_COLLECTION = "teams"

// StatusActive is the status every team starts with. Other statuses may appear
// in the datastore later; anything not "active" is simply not counted as an
// active project.
const StatusActive = "active"

// Team represents a hackathon team in the datastore.
//
// The field names match the documents written by the Hackmate web client, so this
// package reads and writes the same "teams" collection the web app uses.
type Team struct {
	// Name is the team's display name.
	Name string `firestore:"name"`

	// Description is an optional free-text description of the team or its project.
	Description string `firestore:"description"`

	// Hackathon is the name of the event the team is competing in.
	Hackathon string `firestore:"hackathon"`

	// TeamSize is the desired team size, chosen from a fixed set of options.
	// It is a selection label, not a count: "6+" is a legal value.
	TeamSize string `firestore:"teamSize"`

	// Category is the project category, chosen from a fixed set of options.
	Category string `firestore:"category"`

	// LeaderUID is the UID of the user who created the team. It never changes.
	LeaderUID string `firestore:"leaderUID"`

	// LeaderName is the leader's display name at creation time.
	LeaderName string `firestore:"leaderName"`

	// MemberUIDs are the UIDs of all team members in join order.
	// The leader is always element 0. Members are only ever appended, and only
	// via array-union updates, so the slice contains no duplicates.
	MemberUIDs []string `firestore:"memberUIDs"`

	// Status is the team's lifecycle status. New teams are "active".
	Status string `firestore:"status"`

	// InviteCode is the shareable join token, assigned once at creation.
	InviteCode string `firestore:"inviteCode"`

	// CreatedAt is assigned by the server when the document is first written.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

// HasMember reports whether the user with the given UID is on the team.
func (t Team) HasMember(uid string) bool {
	for _, m := range t.MemberUIDs {
		if m == uid {
			return true
		}
	}
	return false
}

func (t Team) String() string {
	var sb strings.Builder
	sb.WriteString("Team\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("Name", 0, false, t.Name))
	ss = append(ss, treeString("Hackathon", 0, false, t.Hackathon))
	ss = append(ss, treeString("Category", 0, false, t.Category))
	ss = append(ss, treeString("TeamSize", 0, false, t.TeamSize))
	ss = append(ss, treeString("Status", 0, false, t.Status))
	ss = append(ss, treeString("InviteCode", 0, false, t.InviteCode))
	ss = append(ss, treeString("LeaderUID", 0, false, t.LeaderUID))
	ss = append(ss, treeStringSlice("MemberUIDs", 0, true, t.MemberUIDs))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

type TeamNotFound string

func (e TeamNotFound) Error() string {
	return string(e)
}

// Store reads and writes Hackmate documents in Firestore. It is the only
// initialization path to the datastore: every collection the application touches
// goes through the one client held here.
type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// CreateTeam inserts a new team document and returns the stored team along with
// its store-assigned ID. The team is re-read after the write so that
// server-assigned fields (CreatedAt) are populated in the return value.
func (s *Store) CreateTeam(ctx context.Context, t Team) (Team, string, error) {
	ref, _, err := s.client.Collection(TEAMS_COLLECTION).Add(ctx, &t)
	if err != nil {
		return t, "", err
	}
	stored, err := s.Team(ctx, ref.ID)
	if err != nil {
		return t, ref.ID, err
	}
	return stored, ref.ID, nil
}

// TeamByInviteCode finds the team with the given invite code.
// Codes are unique by convention but not enforced by the datastore; if more than
// one document carries the code, the one with the lexicographically smallest
// document ID wins, so repeated lookups are deterministic.
func (s *Store) TeamByInviteCode(ctx context.Context, code string) (Team, string, error) {
	var t Team
	q := s.client.Collection(TEAMS_COLLECTION).Where("inviteCode", "==", code)
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return t, "", err
	}
	if len(docs) == 0 {
		return t, "", TeamNotFound(fmt.Sprintf("no team with invite code \"%s\"", code))
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Ref.ID < docs[j].Ref.ID })
	if err = docs[0].DataTo(&t); err != nil {
		return t, "", err
	}
	return t, docs[0].Ref.ID, nil
}

// TeamsByMember returns all teams the user with the given UID belongs to, along
// with their document IDs. A user with no teams gets an empty slice, not an error.
func (s *Store) TeamsByMember(ctx context.Context, uid string) ([]Team, []string, error) {
	iter := s.client.Collection(TEAMS_COLLECTION).Where("memberUIDs", "array-contains", uid).Documents(ctx)
	teams := make([]Team, 0)
	ids := make([]string, 0)
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error getting team snapshot: %w", err)
		}
		var t Team
		err = ss.DataTo(&t)
		if err != nil {
			return nil, nil, fmt.Errorf("error getting team snapshot data: %w", err)
		}
		teams = append(teams, t)
		ids = append(ids, ss.Ref.ID)
	}
	return teams, ids, nil
}

// AddMember appends a UID to a team's member list with an array-union update.
// The union is applied server-side, so concurrent joins by the same user cannot
// produce a duplicate entry.
func (s *Store) AddMember(ctx context.Context, id string, uid string) error {
	ref := s.client.Collection(TEAMS_COLLECTION).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "memberUIDs", Value: firestore.ArrayUnion(uid)},
	})
	return err
}

// Team gets a single team document by ID.
func (s *Store) Team(ctx context.Context, id string) (Team, error) {
	var t Team
	snap, err := s.client.Collection(TEAMS_COLLECTION).Doc(id).Get(ctx)
	if err != nil {
		return t, err
	}
	if err = snap.DataTo(&t); err != nil {
		return t, err
	}
	return t, nil
}

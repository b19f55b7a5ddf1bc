package teams

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
	"github.com/Unmesh-12634/Hackmate1/internal/session"
)

// memStore is an in-memory Store with the same semantics as the Firestore one:
// deterministic first match by lowest ID, set-union member updates.
type memStore struct {
	teams    map[string]firestore.Team
	profiles map[string]firestore.UserProfile
	nextID   int
	writes   int
}

func newMemStore() *memStore {
	return &memStore{
		teams:    make(map[string]firestore.Team),
		profiles: make(map[string]firestore.UserProfile),
	}
}

func (s *memStore) sortedIDs() []string {
	ids := make([]string, 0, len(s.teams))
	for id := range s.teams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *memStore) CreateTeam(_ context.Context, t firestore.Team) (firestore.Team, string, error) {
	s.nextID++
	id := fmt.Sprintf("team%04d", s.nextID)
	t.CreatedAt = time.Now()
	s.teams[id] = t
	s.writes++
	return t, id, nil
}

func (s *memStore) TeamByInviteCode(_ context.Context, code string) (firestore.Team, string, error) {
	for _, id := range s.sortedIDs() {
		if s.teams[id].InviteCode == code {
			return s.teams[id], id, nil
		}
	}
	return firestore.Team{}, "", firestore.TeamNotFound(fmt.Sprintf("no team with invite code \"%s\"", code))
}

func (s *memStore) TeamsByMember(_ context.Context, uid string) ([]firestore.Team, []string, error) {
	ts := make([]firestore.Team, 0)
	ids := make([]string, 0)
	for _, id := range s.sortedIDs() {
		if s.teams[id].HasMember(uid) {
			ts = append(ts, s.teams[id])
			ids = append(ids, id)
		}
	}
	return ts, ids, nil
}

func (s *memStore) AddMember(_ context.Context, id string, uid string) error {
	t, ok := s.teams[id]
	if !ok {
		return fmt.Errorf("no team \"%s\"", id)
	}
	if !t.HasMember(uid) {
		t.MemberUIDs = append(t.MemberUIDs, uid)
		s.teams[id] = t
	}
	s.writes++
	return nil
}

func (s *memStore) Team(_ context.Context, id string) (firestore.Team, error) {
	t, ok := s.teams[id]
	if !ok {
		return firestore.Team{}, fmt.Errorf("no team \"%s\"", id)
	}
	return t, nil
}

func (s *memStore) Profiles(_ context.Context, uids []string) ([]firestore.UserProfile, error) {
	out := make([]firestore.UserProfile, len(uids))
	for i, uid := range uids {
		p, ok := s.profiles[uid]
		if !ok {
			p = firestore.UserProfile{UID: uid}
		}
		out[i] = p
	}
	return out, nil
}

func testContext(store Store, user session.User) *Context {
	ctx := NewContext(context.Background())
	ctx.Store = store
	ctx.User = user
	return ctx
}

var u1 = session.User{UID: "U1", DisplayName: "User One", Email: "u1@example.com"}
var u2 = session.User{UID: "U2", DisplayName: "User Two", Email: "u2@example.com"}

func fillAlpha(ctx *Context) {
	ctx.Name = "Alpha"
	ctx.Hackathon = "HackX"
	ctx.TeamSize = "4"
	ctx.Category = "Web"
}

func TestCreateTeam(t *testing.T) {
	store := newMemStore()
	ctx := testContext(store, u1)
	fillAlpha(ctx)
	ctx.Description = "An alpha team"

	team, id, err := CreateTeam(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id == "" {
		t.Error("expected a store-assigned id, got empty string")
	}
	if team.Status != "active" {
		t.Errorf("expected status \"active\", got \"%s\"", team.Status)
	}
	if team.LeaderUID != "U1" || team.LeaderName != "User One" {
		t.Errorf("expected leader U1/User One, got %s/%s", team.LeaderUID, team.LeaderName)
	}
	if len(team.MemberUIDs) != 1 || team.MemberUIDs[0] != "U1" {
		t.Errorf("expected memberUIDs [U1], got %v", team.MemberUIDs)
	}
	if !ValidInviteCode(team.InviteCode) {
		t.Errorf("expected a valid invite code, got \"%s\"", team.InviteCode)
	}
	if store.writes != 1 {
		t.Errorf("expected exactly 1 write, got %d", store.writes)
	}
}

func TestCreateTeamValidation(t *testing.T) {
	cases := []struct {
		desc                            string
		name, hackathon, size, category string
	}{
		{"missing name", "", "HackX", "4", "Web"},
		{"blank name", "   ", "HackX", "4", "Web"},
		{"missing hackathon", "Alpha", "  ", "4", "Web"},
		{"bad size", "Alpha", "HackX", "17", "Web"},
		{"bad category", "Alpha", "HackX", "4", "Basket Weaving"},
	}
	for _, c := range cases {
		store := newMemStore()
		ctx := testContext(store, u1)
		ctx.Name = c.name
		ctx.Hackathon = c.hackathon
		ctx.TeamSize = c.size
		ctx.Category = c.category

		_, _, err := CreateTeam(ctx)
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", c.desc, err)
		}
		if store.writes != 0 {
			t.Errorf("%s: expected no writes, got %d", c.desc, store.writes)
		}
	}
}

func TestCreateTeamTrimsInputs(t *testing.T) {
	store := newMemStore()
	ctx := testContext(store, u1)
	ctx.Name = "  Alpha  "
	ctx.Description = " first \n"
	ctx.Hackathon = "\tHackX "
	ctx.TeamSize = "4"
	ctx.Category = "Web"

	team, _, err := CreateTeam(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if team.Name != "Alpha" || team.Description != "first" || team.Hackathon != "HackX" {
		t.Errorf("expected trimmed fields, got %q %q %q", team.Name, team.Description, team.Hackathon)
	}
}

func TestCreateTeamInviteCodeCollision(t *testing.T) {
	store := newMemStore()
	taken := testContext(store, u1)
	fillAlpha(taken)
	existing, _, err := CreateTeam(taken)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	defer func(orig func() string) { newInviteCode = orig }(newInviteCode)
	calls := 0
	newInviteCode = func() string {
		calls++
		if calls == 1 {
			return existing.InviteCode
		}
		return "HM-FRESH1"
	}

	ctx := testContext(store, u2)
	ctx.Name = "Beta"
	ctx.Hackathon = "HackX"
	ctx.TeamSize = "3"
	ctx.Category = "Mobile"
	team, _, err := CreateTeam(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if team.InviteCode != "HM-FRESH1" {
		t.Errorf("expected regenerated code HM-FRESH1, got \"%s\"", team.InviteCode)
	}
	if calls != 2 {
		t.Errorf("expected 2 generator calls, got %d", calls)
	}
}

func TestJoinTeam(t *testing.T) {
	store := newMemStore()
	create := testContext(store, u1)
	fillAlpha(create)
	alpha, _, err := CreateTeam(create)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	join := testContext(store, u2)
	join.InviteCode = " " + alpha.InviteCode + " " // trimmed before lookup
	joined, _, err := JoinTeam(join)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"U1", "U2"}
	if len(joined.MemberUIDs) != len(want) || joined.MemberUIDs[0] != want[0] || joined.MemberUIDs[1] != want[1] {
		t.Fatalf("expected memberUIDs %v, got %v", want, joined.MemberUIDs)
	}

	// Second join by the same user is a terminal AlreadyMember, not a fault,
	// and the member list stays as it was.
	again := testContext(store, u2)
	again.InviteCode = alpha.InviteCode
	_, id, err := JoinTeam(again)
	var am AlreadyMember
	if !errors.As(err, &am) {
		t.Fatalf("expected AlreadyMember, got %v", err)
	}
	final, err := store.Team(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(final.MemberUIDs) != 2 {
		t.Errorf("expected membership to stay [U1 U2], got %v", final.MemberUIDs)
	}
}

func TestJoinTeamUnknownCode(t *testing.T) {
	store := newMemStore()
	ctx := testContext(store, session.User{UID: "U3"})
	ctx.InviteCode = "HM-ZZZZZZ"

	_, _, err := JoinTeam(ctx)
	var nf firestore.TeamNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected TeamNotFound, got %v", err)
	}
	if store.writes != 0 {
		t.Errorf("expected zero writes, got %d", store.writes)
	}
}

func TestJoinTeamEmptyCode(t *testing.T) {
	ctx := testContext(newMemStore(), u1)
	ctx.InviteCode = "   "
	_, _, err := JoinTeam(ctx)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestJoinTeamDryRun(t *testing.T) {
	store := newMemStore()
	create := testContext(store, u1)
	fillAlpha(create)
	alpha, _, err := CreateTeam(create)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	writes := store.writes

	ctx := testContext(store, u2)
	ctx.DryRun = true
	ctx.InviteCode = alpha.InviteCode
	team, _, err := JoinTeam(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.writes != writes {
		t.Errorf("expected no new writes on dry run, got %d", store.writes-writes)
	}
	if team.HasMember("U2") {
		t.Error("expected dry run to leave membership unchanged")
	}
}

func TestLsTeamsEmpty(t *testing.T) {
	ctx := testContext(newMemStore(), u1)
	ts, ids, err := LsTeams(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ts) != 0 || len(ids) != 0 {
		t.Errorf("expected empty results, got %v, %v", ts, ids)
	}
}

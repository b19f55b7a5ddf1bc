package firestore

import (
	"strings"
	"testing"
)

func TestHasMember(t *testing.T) {
	team := Team{MemberUIDs: []string{"U1", "U2"}}
	if !team.HasMember("U1") {
		t.Error("expected U1 to be a member")
	}
	if !team.HasMember("U2") {
		t.Error("expected U2 to be a member")
	}
	if team.HasMember("U3") {
		t.Error("expected U3 not to be a member")
	}
	if (Team{}).HasMember("U1") {
		t.Error("expected no members on the zero team")
	}
}

func TestTeamString(t *testing.T) {
	team := Team{
		Name:       "Alpha",
		Hackathon:  "HackX",
		InviteCode: "HM-ABC123",
		MemberUIDs: []string{"U1"},
	}
	s := team.String()
	for _, want := range []string{"Alpha", "HackX", "HM-ABC123", "U1"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected String() to contain %q, got:\n%s", want, s)
		}
	}
}

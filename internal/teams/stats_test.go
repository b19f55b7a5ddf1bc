package teams

import (
	"testing"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.TotalTeams != 0 || s.ActiveProjects != 0 || s.TotalMembers != 0 {
		t.Errorf("expected all-zero stats, got %+v", s)
	}
	s = ComputeStats([]firestore.Team{})
	if s.TotalTeams != 0 || s.ActiveProjects != 0 || s.TotalMembers != 0 {
		t.Errorf("expected all-zero stats, got %+v", s)
	}
}

func TestComputeStats(t *testing.T) {
	ts := []firestore.Team{
		{Status: "active", MemberUIDs: []string{"U1"}},
		{Status: "active", MemberUIDs: []string{"U1", "U2", "U3"}},
		{Status: "archived", MemberUIDs: []string{"U1", "U4"}},
	}
	s := ComputeStats(ts)
	if s.TotalTeams != 3 {
		t.Errorf("expected 3 total teams, got %d", s.TotalTeams)
	}
	if s.ActiveProjects != 2 {
		t.Errorf("expected 2 active projects, got %d", s.ActiveProjects)
	}
	if s.TotalMembers != 6 {
		t.Errorf("expected 6 total members, got %d", s.TotalMembers)
	}
}

package teams

import (
	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

// Stats are the quick counters shown above the team list.
type Stats struct {
	// TotalTeams is the number of teams the user belongs to.
	TotalTeams int

	// ActiveProjects is the number of those teams whose status is "active".
	ActiveProjects int

	// TotalMembers is the total member count across all the user's teams.
	TotalMembers int
}

// ComputeStats tallies the quick stats for a set of teams. It performs no I/O.
func ComputeStats(ts []firestore.Team) Stats {
	var s Stats
	s.TotalTeams = len(ts)
	for _, t := range ts {
		if t.Status == firestore.StatusActive {
			s.ActiveProjects++
		}
		s.TotalMembers += len(t.MemberUIDs)
	}
	return s
}

package teams

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

func TestExportTeams(t *testing.T) {
	store := newMemStore()
	store.profiles["U1"] = firestore.UserProfile{Name: "User One", Email: "u1@example.com", UID: "U1"}
	// U2 has never signed in: no profile document.

	create := testContext(store, u1)
	fillAlpha(create)
	alpha, _, err := CreateTeam(create)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	join := testContext(store, u2)
	join.InviteCode = alpha.InviteCode
	if _, _, err := JoinTeam(join); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := filepath.Join(t.TempDir(), "teams.xlsx")
	ctx := testContext(store, u1)
	ctx.Output = out
	ctx.NoProgress = true
	if err := ExportTeams(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("expected to reopen spreadsheet, got %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	cases := []struct {
		cell, want string
	}{
		{"A1", "Team"},
		{"G1", "Member"},
		{"A2", "Alpha"},
		{"G2", "User One"},
		{"I2", "leader"},
		{"G3", "U2"}, // falls back to the UID without a profile
		{"I3", "member"},
	}
	for _, c := range cases {
		got, err := f.GetCellValue(sheet, c.cell)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s: expected %q, got %q", c.cell, c.want, got)
		}
	}
}

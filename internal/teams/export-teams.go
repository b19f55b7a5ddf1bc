package teams

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/xuri/excelize/v2"
)

// ExportTeams writes a roster spreadsheet of the acting user's teams to
// ctx.Output, which may be a local path or a "gs://bucket/object" URL.
// Each member gets one row; display names and emails are resolved from the
// users collection, falling back to the bare UID for members who have never
// signed in.
func ExportTeams(ctx *Context) error {
	ts, _, err := LsTeams(ctx)
	if err != nil {
		return err
	}

	outExcel := excelize.NewFile()
	sheetName := outExcel.GetSheetName(outExcel.GetActiveSheetIndex())
	headers := []string{"Team", "Hackathon", "Category", "Team Size", "Status", "Invite Code", "Member", "Email", "Role"}
	for i, h := range headers {
		index, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		outExcel.SetCellStr(sheetName, index, h)
	}

	bar := progressbar.NewOptions(len(ts),
		progressbar.OptionSetDescription("resolving members"),
		progressbar.OptionSetVisibility(!ctx.NoProgress))
	row := 2
	for _, team := range ts {
		profiles, err := ctx.Store.Profiles(ctx, team.MemberUIDs)
		if err != nil {
			return storeError("ExportTeams", err)
		}
		for _, p := range profiles {
			name := p.Name
			if name == "" {
				name = p.UID
			}
			role := "member"
			if p.UID == team.LeaderUID {
				role = "leader"
			}
			cells := []string{team.Name, team.Hackathon, team.Category, team.TeamSize, team.Status, team.InviteCode, name, p.Email, role}
			for c, v := range cells {
				index, err := excelize.CoordinatesToCellName(c+1, row)
				if err != nil {
					return err
				}
				outExcel.SetCellStr(sheetName, index, v)
			}
			row++
		}
		bar.Add(1)
	}

	w, err := openFileOrGSWriter(ctx, ctx.Output)
	if err != nil {
		return fmt.Errorf("ExportTeams: unable to open output \"%s\": %w", ctx.Output, err)
	}
	defer w.Close()
	if err := outExcel.Write(w); err != nil {
		return fmt.Errorf("ExportTeams: unable to write spreadsheet: %w", err)
	}
	return nil
}

func openFileOrGSWriter(ctx context.Context, f string) (io.WriteCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		// URL path has leading slash, but GS expects path relative to bucket.
		path := strings.TrimPrefix(u.Path, "/")
		obj := bucket.Object(path)
		w = obj.NewWriter(ctx)

	case "file":
		fallthrough
	case "":
		w, err = os.Create(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}

	return w, nil
}

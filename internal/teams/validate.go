package teams

import (
	"fmt"
	"strings"
)

// TeamSizes are the team size options offered by the create-team form.
var TeamSizes = []string{"2", "3", "4", "5", "6+"}

// Categories are the project category options offered by the create-team form.
var Categories = []string{"Web", "Mobile", "AI/ML", "Blockchain", "Game Dev", "IoT", "Other"}

func oneOf(value string, options []string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// validateCreateTeam trims the create-team inputs in place and checks them
// against the form's rules. It returns a ValidationError on the first problem
// found; no store I/O happens before it passes.
func validateCreateTeam(ctx *Context) error {
	ctx.Name = strings.TrimSpace(ctx.Name)
	ctx.Description = strings.TrimSpace(ctx.Description)
	ctx.Hackathon = strings.TrimSpace(ctx.Hackathon)

	if ctx.Name == "" {
		return ValidationError("team name is required")
	}
	if ctx.Hackathon == "" {
		return ValidationError("hackathon name is required")
	}
	if !oneOf(ctx.TeamSize, TeamSizes) {
		return ValidationError(fmt.Sprintf("team size \"%s\" is not one of %v", ctx.TeamSize, TeamSizes))
	}
	if !oneOf(ctx.Category, Categories) {
		return ValidationError(fmt.Sprintf("category \"%s\" is not one of %v", ctx.Category, Categories))
	}
	return nil
}

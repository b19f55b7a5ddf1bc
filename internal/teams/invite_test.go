package teams

import (
	"regexp"
	"testing"
)

func TestNewInviteCode(t *testing.T) {
	pattern := regexp.MustCompile(`^HM-[A-Z0-9]{6}$`)
	for i := 0; i < 1000; i++ {
		code := NewInviteCode()
		if !pattern.MatchString(code) {
			t.Fatalf("expected code matching HM-[A-Z0-9]{6}, got \"%s\"", code)
		}
	}
}

func TestValidInviteCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"HM-ABC123", true},
		{"HM-ZZZZZZ", true},
		{"HM-000000", true},
		{"hm-abc123", false},
		{"HM-ABC12", false},
		{"HM-ABC1234", false},
		{"XX-ABC123", false},
		{"ABC123", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidInviteCode(c.code); got != c.want {
			t.Errorf("ValidInviteCode(%q): expected %v, got %v", c.code, c.want, got)
		}
	}
}

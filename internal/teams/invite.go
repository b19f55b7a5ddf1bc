package teams

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// InviteCodePrefix starts every invite code. The web client generated codes in
// the same format, so old and new codes are interchangeable.
const InviteCodePrefix = "HM-"

const inviteCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const inviteCodeLength = 6

var inviteCodePattern = regexp.MustCompile(`^HM-[A-Z0-9]{6}$`)

// NewInviteCode returns a fresh invite code: "HM-" followed by 6 random
// uppercase base-36 characters. Uniqueness is not guaranteed here; CreateTeam
// checks the generated code against the store and retries on collision.
func NewInviteCode() string {
	var sb strings.Builder
	sb.WriteString(InviteCodePrefix)
	for i := 0; i < inviteCodeLength; i++ {
		sb.WriteByte(inviteCodeAlphabet[rand.IntN(len(inviteCodeAlphabet))])
	}
	return sb.String()
}

// ValidInviteCode reports whether s is a well-formed invite code.
func ValidInviteCode(s string) bool {
	return inviteCodePattern.MatchString(s)
}

// newInviteCode is swapped out in tests to force collisions.
var newInviteCode = NewInviteCode

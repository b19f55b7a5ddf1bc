package teams

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Unmesh-12634/Hackmate1/internal/firestore"
)

// ValidationError reports bad operation input. It is raised before any store
// I/O is attempted.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

// AlreadyMember reports that the acting user already belongs to the named team.
// It is a terminal outcome, not a fault: nothing needs retrying.
type AlreadyMember string

func (e AlreadyMember) Error() string {
	return fmt.Sprintf("you are already a member of team \"%s\"", string(e))
}

// StoreError wraps a fault from the external datastore (network, permission,
// quota). The message is classified from the gRPC status code so the caller can
// show the user something more actionable than a raw RPC error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	switch status.Code(e.Err) {
	case codes.PermissionDenied:
		return fmt.Sprintf("%s: permission denied by datastore: %v", e.Op, e.Err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Sprintf("%s: datastore unreachable: %v", e.Op, e.Err)
	case codes.ResourceExhausted:
		return fmt.Sprintf("%s: datastore quota exhausted: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: datastore error: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeError wraps err as a StoreError unless it is nil or a domain outcome
// (TeamNotFound) that must pass through untouched.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(firestore.TeamNotFound); ok {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const USERS_COLLECTION = "users"

// UserProfile is a user's profile document, keyed by UID in the "users" collection.
// It is written at sign-in and read when rendering member rosters.
type UserProfile struct {
	// Name is the user's display name as reported by the identity provider.
	Name string `firestore:"name"`

	// Email is the user's email address.
	Email string `firestore:"email"`

	// Avatar is a URL to the user's profile photo, if any.
	Avatar string `firestore:"avatar,omitempty"`

	// UID duplicates the document ID for array-style queries.
	UID string `firestore:"uid"`

	// JoinedAt is assigned by the server the first time the profile is written.
	JoinedAt time.Time `firestore:"joinedAt"`
}

type ProfileNotFound string

func (e ProfileNotFound) Error() string {
	return string(e)
}

// SetProfile upserts a user's profile with merge semantics: fields absent from
// the update are left untouched, and JoinedAt keeps its original server-assigned
// value once set.
func (s *Store) SetProfile(ctx context.Context, p UserProfile) error {
	ref := s.client.Collection(USERS_COLLECTION).Doc(p.UID)
	// MergeAll requires map data, and the map form lets JoinedAt stay a
	// server-side timestamp rather than a client clock reading.
	data := map[string]interface{}{
		"name":     p.Name,
		"email":    p.Email,
		"uid":      p.UID,
		"joinedAt": firestore.ServerTimestamp,
	}
	if p.Avatar != "" {
		data["avatar"] = p.Avatar
	}
	_, err := ref.Set(ctx, data, firestore.MergeAll)
	return err
}

// Profile gets a single user profile by UID.
func (s *Store) Profile(ctx context.Context, uid string) (UserProfile, error) {
	var p UserProfile
	snap, err := s.client.Collection(USERS_COLLECTION).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return p, ProfileNotFound(fmt.Sprintf("no profile for user \"%s\"", uid))
	}
	if err != nil {
		return p, err
	}
	if err = snap.DataTo(&p); err != nil {
		return p, err
	}
	return p, nil
}

// Profiles gets the profiles for a batch of UIDs in a single round trip.
// Users who have never signed in have no profile document; their slots come back
// as zero-value profiles with only the UID set.
func (s *Store) Profiles(ctx context.Context, uids []string) ([]UserProfile, error) {
	refs := make([]*firestore.DocumentRef, len(uids))
	for i, uid := range uids {
		refs[i] = s.client.Collection(USERS_COLLECTION).Doc(uid)
	}
	profiles, err := GetAll[UserProfile](ctx, s.client, refs)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].UID == "" {
			profiles[i].UID = uids[i]
		}
	}
	return profiles, nil
}

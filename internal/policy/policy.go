// Package policy holds the pure authorization rules. Resource owners are
// resolved by the caller; these functions only compare identifiers and never
// touch storage.
package policy

import "vidtube/internal/apierr"

// Operation names a guarded mutation, used to pick the deny message.
type Operation string

const (
	UpdateUser  Operation = "update-user"
	DeleteUser  Operation = "delete-user"
	UpdateVideo Operation = "update-video"
	DeleteVideo Operation = "delete-video"
)

var denyMessages = map[Operation]string{
	UpdateUser:  "You can update only your account!",
	DeleteUser:  "You can delete only your account!",
	UpdateVideo: "You can update only your video!",
	DeleteVideo: "You can delete only your video!",
}

// Authorize permits a mutation iff the actor owns the target resource.
func Authorize(actorID, ownerID string, op Operation) error {
	if actorID == ownerID {
		return nil
	}
	msg, ok := denyMessages[op]
	if !ok {
		msg = "You are not allowed to do that!"
	}
	return apierr.Forbidden(msg)
}

// AuthorizeCommentDelete permits deletion by the comment author or by the
// owner of the parent video.
func AuthorizeCommentDelete(actorID, commentOwnerID, videoOwnerID string) error {
	if actorID == commentOwnerID || actorID == videoOwnerID {
		return nil
	}
	return apierr.Forbidden("You can delete only your comment!")
}

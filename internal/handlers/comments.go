package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"vidtube/internal/apierr"
	"vidtube/internal/db"
	"vidtube/internal/middleware"
	"vidtube/internal/policy"
)

type commentRequest struct {
	VideoID     string `json:"videoId"`
	Description string `json:"desc"`
}

func AddComment(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.VideoID == "" || req.Description == "" {
		respondError(w, apierr.Invalid("Video id and comment text are required!"))
		return
	}

	comment, err := db.CreateComment(actorID, req.VideoID, req.Description)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, comment)
}

// DeleteComment is allowed for the comment's author and for the owner of the
// parent video. Both records must exist before the ownership rule is
// evaluated.
func DeleteComment(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	commentID := mux.Vars(r)["id"]

	comment, err := db.GetCommentByID(commentID)
	if err != nil {
		respondError(w, apierr.FromDB(err, "Comment not found!"))
		return
	}

	video, err := db.GetVideoByID(comment.VideoID)
	if err != nil {
		respondError(w, apierr.FromDB(err, "Video not found!"))
		return
	}

	if err := policy.AuthorizeCommentDelete(actorID, comment.UserID, video.UserID); err != nil {
		respondError(w, err)
		return
	}

	if err := db.DeleteComment(commentID); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "The comment has been deleted.")
}

func GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := db.CommentsByVideo(mux.Vars(r)["videoId"])
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"vidtube/internal/apierr"
	"vidtube/internal/db"
	"vidtube/internal/middleware"
	"vidtube/internal/policy"
)

func GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := db.GetUserByID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierr.FromDB(err, "User not found!"))
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Img   string `json:"img"`
}

func UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	targetID := mux.Vars(r)["id"]

	if err := policy.Authorize(actorID, targetID, policy.UpdateUser); err != nil {
		respondError(w, err)
		return
	}

	current, err := db.GetUserByID(targetID)
	if err != nil {
		respondError(w, apierr.FromDB(err, "User not found!"))
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Name == "" {
		req.Name = current.Name
	}
	if req.Email == "" {
		req.Email = current.Email
	}
	if req.Img == "" {
		req.Img = current.Img
	}

	user, err := db.UpdateUser(targetID, req.Name, req.Email, req.Img)
	if err != nil {
		respondError(w, apierr.FromDB(err, "User not found!"))
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	targetID := mux.Vars(r)["id"]

	if err := policy.Authorize(actorID, targetID, policy.DeleteUser); err != nil {
		respondError(w, err)
		return
	}

	if err := db.DeleteUser(targetID); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "User has been deleted.")
}

func Subscribe(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	channelID := mux.Vars(r)["id"]

	if err := db.Subscribe(actorID, channelID); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "Subscription successful.")
}

func Unsubscribe(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	channelID := mux.Vars(r)["id"]

	if err := db.Unsubscribe(actorID, channelID); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "Unsubscription successful.")
}

// Like adds the actor to the video's like set and clears any dislike. Any
// authenticated user may like any video, their own included.
func Like(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	videoID := mux.Vars(r)["videoId"]

	if _, err := db.GetVideoByID(videoID); err != nil {
		respondError(w, apierr.FromDB(err, "Video not found!"))
		return
	}

	if err := db.LikeVideo(actorID, videoID); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "The video has been liked.")
}

// Dislike is the mirror of Like.
func Dislike(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	videoID := mux.Vars(r)["videoId"]

	if _, err := db.GetVideoByID(videoID); err != nil {
		respondError(w, apierr.FromDB(err, "Video not found!"))
		return
	}

	if err := db.DislikeVideo(actorID, videoID); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "The video has been disliked.")
}

package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	"vidtube/internal/apierr"
	"vidtube/internal/db"
	"vidtube/internal/middleware"
	"vidtube/internal/models"
	"vidtube/internal/policy"
)

const (
	randomVideoLimit = 40
	tagVideoLimit    = 20
	searchVideoLimit = 40
)

type videoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"desc"`
	ImgURL      string   `json:"imgUrl"`
	VideoURL    string   `json:"videoUrl"`
	Tags        []string `json:"tags"`
}

func AddVideo(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())

	var req videoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Title == "" {
		respondError(w, apierr.Invalid("Title is required!"))
		return
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	video, err := db.CreateVideo(actorID, req.Title, req.Description, req.ImgURL, req.VideoURL, req.Tags)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, video)
}

func GetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := db.GetVideoByID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, apierr.FromDB(err, "Video not found!"))
		return
	}
	respondJSON(w, http.StatusOK, video)
}

func UpdateVideo(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	videoID := mux.Vars(r)["id"]

	video, err := db.GetVideoByID(videoID)
	if err != nil {
		respondError(w, apierr.FromDB(err, "Video not found!"))
		return
	}

	if err := policy.Authorize(actorID, video.UserID, policy.UpdateVideo); err != nil {
		respondError(w, err)
		return
	}

	var req videoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Title == "" {
		req.Title = video.Title
	}
	if req.Description == "" {
		req.Description = video.Description
	}
	if req.ImgURL == "" {
		req.ImgURL = video.ImgURL
	}
	if req.VideoURL == "" {
		req.VideoURL = video.VideoURL
	}
	if req.Tags == nil {
		req.Tags = video.Tags
	}

	updated, err := db.UpdateVideo(videoID, req.Title, req.Description, req.ImgURL, req.VideoURL, req.Tags)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func DeleteVideo(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())
	videoID := mux.Vars(r)["id"]

	video, err := db.GetVideoByID(videoID)
	if err != nil {
		respondError(w, apierr.FromDB(err, "Video not found!"))
		return
	}

	if err := policy.Authorize(actorID, video.UserID, policy.DeleteVideo); err != nil {
		respondError(w, err)
		return
	}

	if err := db.DeleteVideo(videoID); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "The video has been deleted.")
}

// AddView bumps the view counter by one. Unauthenticated and undeduplicated:
// every call counts.
func AddView(w http.ResponseWriter, r *http.Request) {
	if err := db.AddView(mux.Vars(r)["id"]); err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, "The view has been increased.")
}

func RandomVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := db.RandomVideos(randomVideoLimit)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

func TrendingVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := db.TrendingVideos()
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

// SubscribedVideos builds the feed with one lookup per followed channel and
// sorts the concatenation by creation time, newest first.
func SubscribedVideos(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorID(r.Context())

	channels, err := db.GetSubscribedChannelIDs(actorID)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}

	feed := []models.Video{}
	for _, channelID := range channels {
		videos, err := db.VideosByUser(channelID)
		if err != nil {
			respondError(w, apierr.Internal("Something went wrong!"))
			return
		}
		feed = append(feed, videos...)
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	respondJSON(w, http.StatusOK, feed)
}

func VideosByTag(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("tags")
	if raw == "" {
		respondError(w, apierr.Invalid("Tags are required!"))
		return
	}
	tags := strings.Split(raw, ",")

	videos, err := db.VideosByTags(tags, tagVideoLimit)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

func SearchVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, apierr.Invalid("Search query is required!"))
		return
	}

	videos, err := db.SearchVideos(query, searchVideoLimit)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

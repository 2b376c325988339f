package handlers

import (
	"net/http"

	"vidtube/internal/apierr"
	"vidtube/internal/db"
)

type adsVideoRequest struct {
	Title    string `json:"title"`
	ImgURL   string `json:"imgUrl"`
	VideoURL string `json:"videoUrl"`
}

// AddAdsVideo ships without any authentication guard, matching the platform
// it replaces. See DESIGN.md before closing this.
func AddAdsVideo(w http.ResponseWriter, r *http.Request) {
	var req adsVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ad, err := db.CreateAdsVideo(req.Title, req.ImgURL, req.VideoURL)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, ad)
}

// GetAdsVideo returns a single-element random sample, or an empty array when
// no ads exist.
func GetAdsVideo(w http.ResponseWriter, r *http.Request) {
	ads, err := db.RandomAdsVideos(1)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

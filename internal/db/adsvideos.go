package db

import (
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

func CreateAdsVideo(title, imgURL, videoURL string) (*models.AdsVideo, error) {
	query := `
		INSERT INTO ads_videos (id, title, img_url, video_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, img_url, video_url, created_at
	`
	ad := &models.AdsVideo{}
	err := DB.Get(ad, query, uuid.New().String(), title, imgURL, videoURL)
	if err != nil {
		log.Printf("Error creating ads video: %v", err)
		return nil, err
	}
	return ad, nil
}

// RandomAdsVideos samples up to limit random ads videos. An empty collection
// yields an empty slice, not an error.
func RandomAdsVideos(limit int) ([]models.AdsVideo, error) {
	ads := []models.AdsVideo{}
	err := DB.Select(&ads, `
		SELECT id, title, img_url, video_url, created_at
		FROM ads_videos
		ORDER BY RANDOM()
		LIMIT $1
	`, limit)
	if err != nil {
		log.Printf("Error getting random ads video: %v", err)
		return nil, err
	}
	return ads, nil
}

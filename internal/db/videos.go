package db

import (
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"vidtube/internal/models"
)

// videoColumns embeds the like/dislike sets via aggregation so list queries
// stay a single round-trip per statement.
const videoColumns = `
	v.id, v.user_id, v.title, v.description, v.img_url, v.video_url,
	v.tags, v.views, v.created_at, v.updated_at,
	COALESCE((SELECT array_agg(user_id) FROM video_likes WHERE video_id = v.id), '{}') AS likes,
	COALESCE((SELECT array_agg(user_id) FROM video_dislikes WHERE video_id = v.id), '{}') AS dislikes`

func CreateVideo(userID, title, description, imgURL, videoURL string, tags []string) (*models.Video, error) {
	query := `
		WITH v AS (
			INSERT INTO videos (id, user_id, title, description, img_url, video_url, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + videoColumns + ` FROM v`
	video := &models.Video{}
	err := DB.Get(video, query, uuid.New().String(), userID, title, description, imgURL, videoURL, pq.Array(tags))
	if err != nil {
		log.Printf("Error creating video for user %s: %v", userID, err)
		return nil, err
	}
	return video, nil
}

func GetVideoByID(id string) (*models.Video, error) {
	video := &models.Video{}
	err := DB.Get(video, `SELECT `+videoColumns+` FROM videos v WHERE v.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return video, nil
}

func UpdateVideo(id, title, description, imgURL, videoURL string, tags []string) (*models.Video, error) {
	query := `
		WITH v AS (
			UPDATE videos
			SET title = $1, description = $2, img_url = $3, video_url = $4, tags = $5, updated_at = NOW()
			WHERE id = $6
			RETURNING *
		)
		SELECT ` + videoColumns + ` FROM v`
	video := &models.Video{}
	err := DB.Get(video, query, title, description, imgURL, videoURL, pq.Array(tags), id)
	if err != nil {
		log.Printf("Error updating video %s: %v", id, err)
		return nil, err
	}
	return video, nil
}

func DeleteVideo(id string) error {
	_, err := DB.Exec(`DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting video %s: %v", id, err)
	}
	return err
}

// AddView increments the view counter by exactly one. Repeated calls from
// the same viewer all count.
func AddView(id string) error {
	_, err := DB.Exec(`UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error adding view to video %s: %v", id, err)
	}
	return err
}

// LikeVideo adds the user to the video's like set and removes any dislike.
// Both writes run in one transaction so the sets never overlap; re-liking is
// a no-op.
func LikeVideo(userID, videoID string) error {
	return setEngagement(userID, videoID, "video_likes", "video_dislikes")
}

// DislikeVideo is the mirror of LikeVideo.
func DislikeVideo(userID, videoID string) error {
	return setEngagement(userID, videoID, "video_dislikes", "video_likes")
}

func setEngagement(userID, videoID, addTable, removeTable string) error {
	tx, err := DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO `+addTable+` (video_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, videoID, userID)
	if err != nil {
		log.Printf("Error recording engagement on video %s: %v", videoID, err)
		return err
	}

	_, err = tx.Exec(`DELETE FROM `+removeTable+` WHERE video_id = $1 AND user_id = $2`, videoID, userID)
	if err != nil {
		log.Printf("Error clearing opposite engagement on video %s: %v", videoID, err)
		return err
	}

	return tx.Commit()
}

// RandomVideos returns up to limit uniformly random videos.
func RandomVideos(limit int) ([]models.Video, error) {
	videos := []models.Video{}
	err := DB.Select(&videos, `SELECT `+videoColumns+` FROM videos v ORDER BY RANDOM() LIMIT $1`, limit)
	if err != nil {
		log.Printf("Error getting random videos: %v", err)
		return nil, err
	}
	return videos, nil
}

// TrendingVideos returns every video sorted by views descending.
func TrendingVideos() ([]models.Video, error) {
	videos := []models.Video{}
	err := DB.Select(&videos, `SELECT `+videoColumns+` FROM videos v ORDER BY v.views DESC`)
	if err != nil {
		log.Printf("Error getting trending videos: %v", err)
		return nil, err
	}
	return videos, nil
}

// VideosByUser returns every video owned by the given channel.
func VideosByUser(userID string) ([]models.Video, error) {
	videos := []models.Video{}
	err := DB.Select(&videos, `SELECT `+videoColumns+` FROM videos v WHERE v.user_id = $1`, userID)
	if err != nil {
		log.Printf("Error getting videos for user %s: %v", userID, err)
		return nil, err
	}
	return videos, nil
}

// VideosByTags returns videos whose tag array overlaps the given tags, in
// storage order, capped at limit.
func VideosByTags(tags []string, limit int) ([]models.Video, error) {
	videos := []models.Video{}
	err := DB.Select(&videos, `
		SELECT `+videoColumns+` FROM videos v
		WHERE v.tags && $1
		LIMIT $2
	`, pq.Array(tags), limit)
	if err != nil {
		log.Printf("Error getting videos by tags: %v", err)
		return nil, err
	}
	return videos, nil
}

// SearchVideos does a case-insensitive substring match on titles.
func SearchVideos(query string, limit int) ([]models.Video, error) {
	videos := []models.Video{}
	err := DB.Select(&videos, `
		SELECT `+videoColumns+` FROM videos v
		WHERE v.title ILIKE '%' || $1 || '%'
		LIMIT $2
	`, query, limit)
	if err != nil {
		log.Printf("Error searching videos for %q: %v", query, err)
		return nil, err
	}
	return videos, nil
}

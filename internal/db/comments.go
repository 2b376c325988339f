package db

import (
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

func CreateComment(userID, videoID, description string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (id, user_id, video_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, video_id, description, created_at
	`
	comment := &models.Comment{}
	err := DB.Get(comment, query, uuid.New().String(), userID, videoID, description)
	if err != nil {
		log.Printf("Error creating comment on video %s: %v", videoID, err)
		return nil, err
	}
	return comment, nil
}

func GetCommentByID(id string) (*models.Comment, error) {
	comment := &models.Comment{}
	err := DB.Get(comment, `SELECT id, user_id, video_id, description, created_at FROM comments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func DeleteComment(id string) error {
	_, err := DB.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting comment %s: %v", id, err)
	}
	return err
}

func CommentsByVideo(videoID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := DB.Select(&comments, `
		SELECT id, user_id, video_id, description, created_at
		FROM comments
		WHERE video_id = $1
		ORDER BY created_at DESC
	`, videoID)
	if err != nil {
		log.Printf("Error getting comments for video %s: %v", videoID, err)
		return nil, err
	}
	return comments, nil
}

package models

import "time"

// Comment belongs to a video; deletable by its author or the video's owner.
type Comment struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	VideoID     string    `db:"video_id" json:"videoId"`
	Description string    `db:"description" json:"desc"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

package models

import (
	"time"

	"github.com/lib/pq"
)

// Video holds video metadata and its engagement state. Likes and Dislikes
// are sets of user ids; a user id never appears in both at once.
type Video struct {
	ID          string         `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"userId"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"desc"`
	ImgURL      string         `db:"img_url" json:"imgUrl"`
	VideoURL    string         `db:"video_url" json:"videoUrl"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Views       int64          `db:"views" json:"views"`
	Likes       pq.StringArray `db:"likes" json:"likes"`
	Dislikes    pq.StringArray `db:"dislikes" json:"dislikes"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

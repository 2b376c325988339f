package models

import "time"

// AdsVideo is a write-once promotional record with no ownership or
// engagement semantics; it is only read back via random sampling.
type AdsVideo struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	ImgURL    string    `db:"img_url" json:"imgUrl"`
	VideoURL  string    `db:"video_url" json:"videoUrl"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

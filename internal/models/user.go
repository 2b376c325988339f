package models

import (
	"database/sql"
	"time"
)

// User represents an account. Password is never serialized; it is NULL for
// accounts provisioned through Google sign-in.
type User struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Email       string         `db:"email" json:"email"`
	Password    sql.NullString `db:"password" json:"-"`
	Img         string         `db:"img" json:"img"`
	Subscribers int64          `db:"subscribers" json:"subscribers"`
	FromGoogle  bool           `db:"from_google" json:"fromGoogle"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`

	// SubscribedUsers is the ordered list of channel ids this user follows.
	// Loaded from the subscriptions table, duplicates included.
	SubscribedUsers []string `db:"-" json:"subscribedUsers"`
}

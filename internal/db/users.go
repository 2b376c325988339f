package db

import (
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

const userColumns = `id, name, email, password, img, subscribers, from_google, created_at, updated_at`

// CreateUser inserts a new account. The password is an already-hashed
// credential, or empty for externally-provisioned accounts.
func CreateUser(name, email, hashedPassword, img string, fromGoogle bool) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email, password, img, from_google)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		RETURNING ` + userColumns
	user := &models.User{}
	err := DB.Get(user, query, uuid.New().String(), name, email, hashedPassword, img, fromGoogle)
	if err != nil {
		log.Printf("Error creating user %q: %v", name, err)
		return nil, err
	}
	user.SubscribedUsers = []string{}
	return user, nil
}

// GetUserByID fetches a user together with their subscribed channel list.
func GetUserByID(id string) (*models.User, error) {
	user := &models.User{}
	err := DB.Get(user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	user.SubscribedUsers, err = GetSubscribedChannelIDs(id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByName(name string) (*models.User, error) {
	user := &models.User{}
	err := DB.Get(user, `SELECT `+userColumns+` FROM users WHERE name = $1`, name)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := DB.Get(user, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser updates the mutable profile fields and returns the new record.
func UpdateUser(id, name, email, img string) (*models.User, error) {
	query := `
		UPDATE users
		SET name = $1, email = $2, img = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns
	user := &models.User{}
	err := DB.Get(user, query, name, email, img, id)
	if err != nil {
		log.Printf("Error updating user %s: %v", id, err)
		return nil, err
	}
	user.SubscribedUsers, err = GetSubscribedChannelIDs(id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUser(id string) error {
	_, err := DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
	}
	return err
}

// GetSubscribedChannelIDs returns the channel ids the user follows, in
// subscription order. Duplicate entries are preserved.
func GetSubscribedChannelIDs(userID string) ([]string, error) {
	channels := []string{}
	err := DB.Select(&channels, `
		SELECT channel_id FROM subscriptions
		WHERE subscriber_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		log.Printf("Error getting subscriptions for user %s: %v", userID, err)
		return nil, err
	}
	return channels, nil
}

// Subscribe appends a subscription edge and bumps the target's subscriber
// counter. The two writes are deliberately independent: a race or crash
// between them can desynchronize the counter from the edge set, and calling
// Subscribe twice records the edge (and the count) twice.
func Subscribe(actorID, channelID string) error {
	_, err := DB.Exec(`
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
	`, actorID, channelID)
	if err != nil {
		log.Printf("Error subscribing user %s to %s: %v", actorID, channelID, err)
		return err
	}

	_, err = DB.Exec(`UPDATE users SET subscribers = subscribers + 1 WHERE id = $1`, channelID)
	if err != nil {
		log.Printf("Error incrementing subscribers for user %s: %v", channelID, err)
		return err
	}
	return nil
}

// Unsubscribe removes one occurrence of the subscription edge and decrements
// the target's counter. The counter can go negative if no edge existed.
func Unsubscribe(actorID, channelID string) error {
	_, err := DB.Exec(`
		DELETE FROM subscriptions
		WHERE id = (
			SELECT id FROM subscriptions
			WHERE subscriber_id = $1 AND channel_id = $2
			LIMIT 1
		)
	`, actorID, channelID)
	if err != nil {
		log.Printf("Error unsubscribing user %s from %s: %v", actorID, channelID, err)
		return err
	}

	_, err = DB.Exec(`UPDATE users SET subscribers = subscribers - 1 WHERE id = $1`, channelID)
	if err != nil {
		log.Printf("Error decrementing subscribers for user %s: %v", channelID, err)
		return err
	}
	return nil
}

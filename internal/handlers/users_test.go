package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"vidtube/internal/test"
)

func TestUpdateUserForbidden(t *testing.T) {
	test.NewMockDB(t)

	req := newRequest(http.MethodPut, "/api/users/user-a", `{"name":"x"}`, "user-b", map[string]string{"id": "user-a"})
	rr := httptest.NewRecorder()

	UpdateUser(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "You can update only your account!")
}

func TestDeleteUser(t *testing.T) {
	t.Run("non-owner is forbidden", func(t *testing.T) {
		test.NewMockDB(t)

		req := newRequest(http.MethodDelete, "/api/users/user-a", "", "user-b", map[string]string{"id": "user-a"})
		rr := httptest.NewRecorder()

		DeleteUser(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "You can delete only your account!")
	})

	t.Run("owner deletes", func(t *testing.T) {
		_, mock := test.NewMockDB(t)
		mock.ExpectExec("DELETE FROM users").WithArgs("user-a").WillReturnResult(sqlmock.NewResult(0, 1))

		req := newRequest(http.MethodDelete, "/api/users/user-a", "", "user-a", map[string]string{"id": "user-a"})
		rr := httptest.NewRecorder()

		DeleteUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "User has been deleted.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// Subscribing is an append plus an independent counter bump. Two subscribes
// to the same channel therefore record two edges and increment the counter
// twice; this documents the current behavior rather than an idealized fix.
func TestSubscribeTwiceDoubleCounts(t *testing.T) {
	_, mock := test.NewMockDB(t)

	for i := 0; i < 2; i++ {
		mock.ExpectExec("INSERT INTO subscriptions").
			WithArgs("user-a", "user-b").
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
		mock.ExpectExec("UPDATE users SET subscribers").
			WithArgs("user-b").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	for i := 0; i < 2; i++ {
		req := newRequest(http.MethodPut, "/api/users/sub/user-b", "", "user-a", map[string]string{"id": "user-b"})
		rr := httptest.NewRecorder()
		Subscribe(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Subscription successful.")
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnsubscribe(t *testing.T) {
	_, mock := test.NewMockDB(t)

	// Removes one edge occurrence, then decrements; two independent writes.
	mock.ExpectExec("DELETE FROM subscriptions").
		WithArgs("user-a", "user-b").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET subscribers").
		WithArgs("user-b").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := newRequest(http.MethodPut, "/api/users/unsub/user-b", "", "user-a", map[string]string{"id": "user-b"})
	rr := httptest.NewRecorder()
	Unsubscribe(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Unsubscription successful.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLike(t *testing.T) {
	t.Run("adds the like and clears any dislike in one transaction", func(t *testing.T) {
		_, mock := test.NewMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM videos v WHERE v.id").
			WithArgs("vid-1").
			WillReturnRows(videoRows("vid-1", "owner", 0, time.Now()))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO video_likes").
			WithArgs("vid-1", "user-a").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM video_dislikes").
			WithArgs("vid-1", "user-a").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		req := newRequest(http.MethodPut, "/api/users/like/vid-1", "", "user-a", map[string]string{"videoId": "vid-1"})
		rr := httptest.NewRecorder()
		Like(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "The video has been liked.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing video is 404 before any mutation", func(t *testing.T) {
		_, mock := test.NewMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM videos v WHERE v.id").
			WithArgs("gone").
			WillReturnError(sql.ErrNoRows)

		req := newRequest(http.MethodPut, "/api/users/like/gone", "", "user-a", map[string]string{"videoId": "gone"})
		rr := httptest.NewRecorder()
		Like(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Video not found!")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDislike(t *testing.T) {
	_, mock := test.NewMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM videos v WHERE v.id").
		WithArgs("vid-1").
		WillReturnRows(videoRows("vid-1", "owner", 0, time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO video_dislikes").
		WithArgs("vid-1", "user-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM video_likes").
		WithArgs("vid-1", "user-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := newRequest(http.MethodPut, "/api/users/dislike/vid-1", "", "user-a", map[string]string{"videoId": "vid-1"})
	rr := httptest.NewRecorder()
	Dislike(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "The video has been disliked.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"vidtube/internal/models"
	"vidtube/internal/test"
)

func TestAddComment(t *testing.T) {
	_, mock := test.NewMockDB(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO comments").
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow("c1", "user-a", "vid-1", "nice video", now))

	req := newRequest(http.MethodPost, "/api/comments", `{"videoId":"vid-1","desc":"nice video"}`, "user-a", nil)
	rr := httptest.NewRecorder()
	AddComment(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var comment models.Comment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
	assert.Equal(t, "user-a", comment.UserID)
	assert.Equal(t, "vid-1", comment.VideoID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteComment(t *testing.T) {
	now := time.Now()

	commentRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(commentCols).AddRow("c1", "author", "vid-1", "text", now)
	}

	t.Run("comment author may delete", func(t *testing.T) {
		_, mock := test.NewMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM comments WHERE id").
			WithArgs("c1").
			WillReturnRows(commentRow())
		mock.ExpectQuery("SELECT (.+) FROM videos v WHERE v.id").
			WithArgs("vid-1").
			WillReturnRows(videoRows("vid-1", "video-owner", 0, now))
		mock.ExpectExec("DELETE FROM comments").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		req := newRequest(http.MethodDelete, "/api/comments/c1", "", "author", map[string]string{"id": "c1"})
		rr := httptest.NewRecorder()
		DeleteComment(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "The comment has been deleted.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("video owner may delete someone else's comment", func(t *testing.T) {
		_, mock := test.NewMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM comments WHERE id").
			WithArgs("c1").
			WillReturnRows(commentRow())
		mock.ExpectQuery("SELECT (.+) FROM videos v WHERE v.id").
			WithArgs("vid-1").
			WillReturnRows(videoRows("vid-1", "video-owner", 0, now))
		mock.ExpectExec("DELETE FROM comments").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		req := newRequest(http.MethodDelete, "/api/comments/c1", "", "video-owner", map[string]string{"id": "c1"})
		rr := httptest.NewRecorder()
		DeleteComment(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("anyone else is forbidden", func(t *testing.T) {
		_, mock := test.NewMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM comments WHERE id").
			WithArgs("c1").
			WillReturnRows(commentRow())
		mock.ExpectQuery("SELECT (.+) FROM videos v WHERE v.id").
			WithArgs("vid-1").
			WillReturnRows(videoRows("vid-1", "video-owner", 0, now))

		req := newRequest(http.MethodDelete, "/api/comments/c1", "", "stranger", map[string]string{"id": "c1"})
		rr := httptest.NewRecorder()
		DeleteComment(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "You can delete only your comment!")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing comment is 404 before the ownership check", func(t *testing.T) {
		_, mock := test.NewMockDB(t)

		mock.ExpectQuery("SELECT (.+) FROM comments WHERE id").
			WithArgs("gone").
			WillReturnError(sql.ErrNoRows)

		req := newRequest(http.MethodDelete, "/api/comments/gone", "", "stranger", map[string]string{"id": "gone"})
		rr := httptest.NewRecorder()
		DeleteComment(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Comment not found!")
	})
}

func TestGetComments(t *testing.T) {
	_, mock := test.NewMockDB(t)

	now := time.Now()
	mock.ExpectQuery("FROM comments").
		WithArgs("vid-1").
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow("c2", "u2", "vid-1", "second", now).
			AddRow("c1", "u1", "vid-1", "first", now.Add(-time.Minute)))

	req := newRequest(http.MethodGet, "/api/comments/vid-1", "", "", map[string]string{"videoId": "vid-1"})
	rr := httptest.NewRecorder()
	GetComments(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var comments []models.Comment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comments))
	assert.Len(t, comments, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

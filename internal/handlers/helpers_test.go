package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"vidtube/internal/middleware"
)

var videoCols = []string{
	"id", "user_id", "title", "description", "img_url", "video_url",
	"tags", "views", "created_at", "updated_at", "likes", "dislikes",
}

var userCols = []string{
	"id", "name", "email", "password", "img", "subscribers", "from_google",
	"created_at", "updated_at",
}

var commentCols = []string{"id", "user_id", "video_id", "description", "created_at"}

func videoRows(id, ownerID string, views int64, created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(videoCols).
		AddRow(id, ownerID, "a title", "", "", "", "{}", views, created, created, "{}", "{}")
}

// newRequest builds a request carrying an optional actor identity and mux
// route variables, the way the router would hand it to a handler.
func newRequest(method, target, body, actorID string, vars map[string]string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if actorID != "" {
		ctx := context.WithValue(req.Context(), middleware.ActorIDKey, actorID)
		req = req.WithContext(ctx)
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

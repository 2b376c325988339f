package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"vidtube/internal/auth"
	"vidtube/internal/db"
	"vidtube/internal/handlers"
	"vidtube/internal/middleware"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	db.InitDB()
	auth.InitAuth()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8800"
	}

	log.Printf("Starting server on :%s\n", port)
	if err := http.ListenAndServe(":"+port, newRouter()); err != nil {
		log.Fatal(err)
	}
}

func newRouter() *mux.Router {
	// Engagement routes get a per-actor limiter on top of authentication.
	limiter := middleware.NewRateLimiterMiddleware(rate.Limit(5), 10)
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	limited := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(limiter.Middleware(h))
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// auth
	api.HandleFunc("/auth/signup", handlers.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", handlers.Signin).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", handlers.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/google", handlers.GoogleAuth).Methods(http.MethodPost)

	// users
	api.HandleFunc("/users/find/{id}", handlers.GetUser).Methods(http.MethodGet)
	api.Handle("/users/{id}", protected(handlers.UpdateUser)).Methods(http.MethodPut)
	api.Handle("/users/{id}", protected(handlers.DeleteUser)).Methods(http.MethodDelete)
	api.Handle("/users/sub/{id}", limited(handlers.Subscribe)).Methods(http.MethodPut)
	api.Handle("/users/unsub/{id}", limited(handlers.Unsubscribe)).Methods(http.MethodPut)
	api.Handle("/users/like/{videoId}", limited(handlers.Like)).Methods(http.MethodPut)
	api.Handle("/users/dislike/{videoId}", limited(handlers.Dislike)).Methods(http.MethodPut)

	// videos
	api.Handle("/videos", protected(handlers.AddVideo)).Methods(http.MethodPost)
	api.HandleFunc("/videos/find/{id}", handlers.GetVideo).Methods(http.MethodGet)
	api.Handle("/videos/{id}", protected(handlers.UpdateVideo)).Methods(http.MethodPut)
	api.Handle("/videos/{id}", protected(handlers.DeleteVideo)).Methods(http.MethodDelete)
	api.HandleFunc("/videos/view/{id}", handlers.AddView).Methods(http.MethodPut)
	api.HandleFunc("/videos/random", handlers.RandomVideos).Methods(http.MethodGet)
	api.HandleFunc("/videos/trend", handlers.TrendingVideos).Methods(http.MethodGet)
	api.Handle("/videos/sub", protected(handlers.SubscribedVideos)).Methods(http.MethodGet)
	api.HandleFunc("/videos/tags", handlers.VideosByTag).Methods(http.MethodGet)
	api.HandleFunc("/videos/search", handlers.SearchVideos).Methods(http.MethodGet)

	// comments
	api.Handle("/comments", protected(handlers.AddComment)).Methods(http.MethodPost)
	api.Handle("/comments/{id}", protected(handlers.DeleteComment)).Methods(http.MethodDelete)
	api.HandleFunc("/comments/{videoId}", handlers.GetComments).Methods(http.MethodGet)

	// ads videos; creation is intentionally unguarded, see DESIGN.md
	api.HandleFunc("/adsvideo", handlers.AddAdsVideo).Methods(http.MethodPost)
	api.HandleFunc("/adsvideo/findads", handlers.GetAdsVideo).Methods(http.MethodGet)

	return r
}

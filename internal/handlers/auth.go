package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"vidtube/internal/apierr"
	"vidtube/internal/auth"
	"vidtube/internal/db"
	"vidtube/internal/middleware"
)

// googleCookieTTL is how long the session cookie issued on first Google
// sign-in lives. Password sign-in sets no expiry at all; the mismatch is
// carried over from the original platform.
const googleCookieTTL = 30 * time.Second

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Img      string `json:"img"`
}

func Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, apierr.Invalid("Name, email and password are required!"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}

	if _, err := db.CreateUser(req.Name, req.Email, hash, req.Img, false); err != nil {
		respondError(w, apierr.FromDB(err, "User not found!"))
		return
	}

	respondJSON(w, http.StatusOK, "User has been created!")
}

type signinRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := db.GetUserByName(req.Name)
	if err != nil {
		respondError(w, apierr.FromDB(err, "User not found!"))
		return
	}

	if !user.Password.Valid || !auth.CheckPassword(user.Password.String, req.Password) {
		respondError(w, apierr.Unauthenticated("Wrong Credentials!"))
		return
	}

	token, err := auth.NewToken(user.ID)
	if err != nil {
		log.Printf("Error issuing token for user %s: %v", user.ID, err)
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}

	user.SubscribedUsers, err = db.GetSubscribedChannelIDs(user.ID)
	if err != nil {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, user)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	// Stateless logout: only the cookie is cleared, tokens already issued
	// stay valid until their cookie naturally dies.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, "Logged out successfully!")
}

type googleAuthRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Img   string `json:"img"`
}

func GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Email == "" {
		respondError(w, apierr.Invalid("Email is required!"))
		return
	}

	user, err := db.GetUserByEmail(req.Email)
	if err == nil {
		token, tokenErr := auth.NewToken(user.ID)
		if tokenErr != nil {
			log.Printf("Error issuing token for user %s: %v", user.ID, tokenErr)
			respondError(w, apierr.Internal("Something went wrong!"))
			return
		}
		user.SubscribedUsers, err = db.GetSubscribedChannelIDs(user.ID)
		if err != nil {
			respondError(w, apierr.Internal("Something went wrong!"))
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})
		respondJSON(w, http.StatusOK, user)
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}

	// First sign-in through Google: provision an account without a local
	// credential. This path issues a short-lived strictly-same-site cookie,
	// unlike password sign-in.
	user, err = db.CreateUser(req.Name, req.Email, "", req.Img, true)
	if err != nil {
		respondError(w, apierr.FromDB(err, "User not found!"))
		return
	}

	token, err := auth.NewToken(user.ID)
	if err != nil {
		log.Printf("Error issuing token for user %s: %v", user.ID, err)
		respondError(w, apierr.Internal("Something went wrong!"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(googleCookieTTL),
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, user)
}

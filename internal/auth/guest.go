package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	authmw "github.com/securellm/securellm-api/internal/auth/middleware"
	"github.com/securellm/securellm-api/internal/config"
)

// GuestLoginHandler issues a student token for an anonymous browser session.
// The guest id is persisted in a cookie so progress survives token expiry.
func GuestLoginHandler(a *authmw.AuthService, db *sql.DB, cfg config.Config) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.EnableGuestAuth {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		// Reuse an existing guest from the cookie when possible.
		if c, err := r.Cookie("sl_guest_id"); err == nil && c.Value != "" {
			var username, role string
			err := db.QueryRow(`SELECT username, role FROM users WHERE id=$1`, c.Value).Scan(&username, &role)
			if err == nil && role == "student" && strings.HasPrefix(c.Value, "guest|") {
				tok, _ := a.IssueJWT(c.Value, role)
				setGuestCookie(w, c.Value)
				_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
				return
			}
		}

		sfx := uuid.NewString()
		userID := "guest|" + sfx
		username := "guest-" + sfx[:8]
		role := "student"

		_, _ = db.Exec(`INSERT INTO users (id, username, role, created_at)
		                VALUES ($1,$2,$3,$4)`, userID, username, role, time.Now().Unix())

		tok, err := a.IssueJWT(userID, role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		setGuestCookie(w, userID)
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
	}
}

func setGuestCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "sl_guest_id",
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

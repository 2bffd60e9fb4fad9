package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/securellm/securellm-api/internal/challenge"
)

// GET /progress
func GetAllProgressHandler(svc *challenge.Service, anonUser string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := userID(r, anonUser)
		rep, err := svc.ForAllChallenges(r.Context(), uid)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

// GET /progress/{challengeID}
func GetProgressHandler(svc *challenge.Service, anonUser string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "challengeID")
		uid := userID(r, anonUser)
		p, err := svc.ForChallenge(r.Context(), id, uid)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/securellm/securellm-api/internal/challenge"
)

// GET /challenges
func ListChallengesHandler(svc *challenge.Service, anonUser string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := userID(r, anonUser)
		out, err := svc.ListSummaries(r.Context(), uid)
		if err != nil {
			writeErr(w, err)
			return
		}
		if out == nil {
			out = []challenge.SummaryWithProgress{}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /challenges/{challengeID}
func GetChallengeHandler(svc *challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "challengeID")
		s, err := svc.Describe(id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// GET /challenges/{challengeID}/question
// Serves the caller's current question, or the completion signal.
func CurrentQuestionHandler(svc *challenge.Service, anonUser string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "challengeID")
		uid := userID(r, anonUser)
		next, err := svc.Next(r.Context(), id, uid)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, next)
	}
}

// POST /challenges/{challengeID}/submit
func SubmitAnswerHandler(svc *challenge.Service, anonUser string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "challengeID")
		uid := userID(r, anonUser)
		var in challenge.SubmitInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		res, err := svc.Submit(r.Context(), id, uid, in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

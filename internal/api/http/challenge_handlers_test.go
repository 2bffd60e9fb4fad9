package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/securellm/securellm-api/internal/api/http"
	"github.com/securellm/securellm-api/internal/challenge"
)

func testRouter() http.Handler {
	cat := challenge.NewStaticCatalog(challenge.Challenge{
		ID:         "LLM01",
		Title:      "Basic Prompt Injection",
		Difficulty: challenge.DifficultyBeginner,
		Active:     true,
		Questions: []challenge.Question{{
			Number: 1,
			Text:   "What happened?",
			Options: []challenge.AnswerOption{
				{Text: "Paris", Correct: false, Rationale: "wrong"},
				{Text: "Injection succeeded", Correct: true, Rationale: "right"},
			},
		}},
	})
	svc := challenge.NewService(cat, challenge.NewMemoryProgressStore())

	r := chi.NewRouter()
	r.Get("/challenges", api.ListChallengesHandler(svc, "anonymous"))
	r.Get("/challenges/{challengeID}", api.GetChallengeHandler(svc))
	r.Get("/challenges/{challengeID}/question", api.CurrentQuestionHandler(svc, "anonymous"))
	r.Post("/challenges/{challengeID}/submit", api.SubmitAnswerHandler(svc, "anonymous"))
	r.Get("/progress", api.GetAllProgressHandler(svc, "anonymous"))
	r.Get("/progress/{challengeID}", api.GetProgressHandler(svc, "anonymous"))
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestQuestionSubmitFlow(t *testing.T) {
	h := testRouter()

	w := do(t, h, "GET", "/challenges/LLM01/question", "")
	if w.Code != http.StatusOK {
		t.Fatalf("question status = %d: %s", w.Code, w.Body)
	}
	var next challenge.NextQuestion
	if err := json.Unmarshal(w.Body.Bytes(), &next); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if next.Completed || next.Question == nil || next.Question.Number != 1 {
		t.Fatalf("next = %+v", next)
	}
	if body := w.Body.String(); strings.Contains(body, "rationale") || strings.Contains(body, "correct\"") {
		t.Errorf("question response leaks grading data: %s", body)
	}

	w = do(t, h, "POST", "/challenges/LLM01/submit", `{"question_number":1,"selected_answer":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", w.Code, w.Body)
	}
	var res challenge.GradeResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Correct || res.CorrectAnswer == nil || res.CorrectAnswer.Text != "Injection succeeded" {
		t.Fatalf("result = %+v", res)
	}
	if res.Progress.Percentage != 100 {
		t.Errorf("progress = %+v", res.Progress)
	}

	w = do(t, h, "GET", "/challenges/LLM01/question", "")
	_ = json.Unmarshal(w.Body.Bytes(), &next)
	if !next.Completed {
		t.Fatalf("expected completion, got %s", w.Body)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	h := testRouter()

	cases := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"unknown challenge question", "GET", "/challenges/LLM99/question", "", http.StatusNotFound},
		{"unknown challenge submit", "POST", "/challenges/LLM99/submit", `{"question_number":1,"selected_answer":0}`, http.StatusNotFound},
		{"unknown challenge progress", "GET", "/progress/LLM99", "", http.StatusNotFound},
		{"missing question number", "POST", "/challenges/LLM01/submit", `{"selected_answer":0}`, http.StatusBadRequest},
		{"missing selected answer", "POST", "/challenges/LLM01/submit", `{"question_number":1}`, http.StatusBadRequest},
		{"index out of range", "POST", "/challenges/LLM01/submit", `{"question_number":1,"selected_answer":5}`, http.StatusBadRequest},
		{"unknown question number", "POST", "/challenges/LLM01/submit", `{"question_number":9,"selected_answer":0}`, http.StatusNotFound},
		{"malformed body", "POST", "/challenges/LLM01/submit", `{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, tc.method, tc.target, tc.body)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tc.want, w.Body)
			}
		})
	}
}

func TestListAndProgressEndpoints(t *testing.T) {
	h := testRouter()

	w := do(t, h, "GET", "/challenges", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list []challenge.SummaryWithProgress
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].ID != "LLM01" || list[0].Points != 50 {
		t.Fatalf("list = %+v", list)
	}

	w = do(t, h, "GET", "/progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("progress status = %d", w.Code)
	}
	var rep challenge.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.TotalChallenges != 1 || rep.CompletedChallenges != 0 {
		t.Errorf("report = %+v", rep)
	}

	w = do(t, h, "GET", "/challenges/LLM01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("describe status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "questions\"") {
		t.Errorf("describe must not embed questions: %s", w.Body)
	}
}

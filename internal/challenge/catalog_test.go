package challenge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeContent(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestFSCatalogLoad(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "LLM02.json", `{
		"title": "Data Extraction",
		"difficulty": "intermediate",
		"questions": [{"number": 1, "text": "q", "options": [{"text": "a", "correct": true}]}]
	}`)
	writeContent(t, dir, "LLM01.json", `{
		"id": "LLM01",
		"title": "Prompt Injection",
		"difficulty": "beginner",
		"points": 75,
		"questions": []
	}`)
	writeContent(t, dir, "notes.txt", "ignored")

	cat := NewFSCatalog(dir)

	ids := cat.IDs()
	if len(ids) != 2 || ids[0] != "LLM01" || ids[1] != "LLM02" {
		t.Fatalf("ids = %v", ids)
	}

	// Explicit points win over the difficulty default.
	ch, err := cat.Load("LLM01")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ch.Points != 75 {
		t.Errorf("points = %d, want 75", ch.Points)
	}
	if !ch.Active {
		t.Error("active should default to true")
	}

	// Id falls back to the filename; points fall back to the difficulty tier.
	ch, err = cat.Load("LLM02")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ch.ID != "LLM02" {
		t.Errorf("id = %q", ch.ID)
	}
	if ch.Points != 100 {
		t.Errorf("points = %d, want intermediate default 100", ch.Points)
	}

	if _, err := cat.Load("LLM99"); !isNotFound(err) {
		t.Errorf("unknown id err = %v", err)
	}
}

func TestDifficultyDefaultPoints(t *testing.T) {
	cases := map[Difficulty]int{
		DifficultyBeginner:     50,
		DifficultyIntermediate: 100,
		DifficultyAdvanced:     200,
		Difficulty("unknown"):  100,
	}
	for d, want := range cases {
		if got := d.DefaultPoints(); got != want {
			t.Errorf("%s = %d, want %d", d, got, want)
		}
	}
}

package challenge

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DefaultPoints returns the base point value for a difficulty tier,
// used when a content document does not set points explicitly.
func (d Difficulty) DefaultPoints() int {
	switch d {
	case DifficultyBeginner:
		return 50
	case DifficultyIntermediate:
		return 100
	case DifficultyAdvanced:
		return 200
	default:
		return 100
	}
}

type AnswerOption struct {
	Text      string `json:"text"`
	Correct   bool   `json:"correct"`
	Rationale string `json:"rationale,omitempty"`
}

// Question is identified within its challenge by Number. Numbers are stable
// across content edits; they are not required to be contiguous or 0-based.
type Question struct {
	Number  int            `json:"number"`
	Text    string         `json:"text"`
	Options []AnswerOption `json:"options"`
	Hint    string         `json:"hint,omitempty"`
}

type Challenge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category,omitempty"`
	Points      int        `json:"points,omitempty"`
	Active      bool       `json:"is_active"`
	Questions   []Question `json:"questions"`
}

// OptionView is the student-safe projection of an AnswerOption: the index is
// the submission identifier, correctness and rationale stay server-side until
// grading. Indexes are positional and must be re-read before every submission.
type OptionView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type QuestionView struct {
	Number  int          `json:"number"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
	Hint    string       `json:"hint,omitempty"`
}

// View strips answer keys and rationales from a question.
func (q Question) View() QuestionView {
	opts := make([]OptionView, len(q.Options))
	for i, o := range q.Options {
		opts[i] = OptionView{Index: i, Text: o.Text}
	}
	return QuestionView{Number: q.Number, Text: q.Text, Options: opts, Hint: q.Hint}
}

// Summary is the public metadata of a challenge, without questions.
type Summary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category,omitempty"`
	Points      int        `json:"points"`
	Questions   int        `json:"question_count"`
}

func (c Challenge) Summary() Summary {
	return Summary{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Difficulty:  c.Difficulty,
		Category:    c.Category,
		Points:      c.Points,
		Questions:   len(c.Questions),
	}
}

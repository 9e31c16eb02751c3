package dialog

import (
	"testing"

	"github.com/alisha/dialect/core/catalog"
	"github.com/alisha/dialect/core/session"
)

// testCatalog builds the fixture used across the dialog tests: two
// countries, where france/dining carries a three-question quiz whose
// correct choice index equals the question index.
func testCatalog() *catalog.Catalog {
	questions := make([]catalog.Question, 3)
	for qi := range questions {
		choices := make([]catalog.Choice, 3)
		for ci := range choices {
			choices[ci] = catalog.Choice{
				Text:      "choice",
				IsCorrect: ci == qi,
			}
		}
		questions[qi] = catalog.Question{Prompt: "prompt", Choices: choices}
	}

	return &catalog.Catalog{Countries: []catalog.Country{
		{
			Name: "france",
			Sets: []catalog.Set{
				{
					Name:      "dining",
					Tips:      []string{"Keep both hands visible.", "Bread goes on the tablecloth."},
					Questions: questions,
				},
				{
					Name: "greetings",
					Tips: []string{"Expect cheek kisses."},
					Questions: []catalog.Question{{
						Prompt: "How many kisses?",
						Choices: []catalog.Choice{
							{Text: "Two", IsCorrect: true},
							{Text: "None"},
						},
					}},
				},
			},
		},
		{
			Name: "japan",
			Sets: []catalog.Set{{
				Name: "temple manners",
				Tips: []string{"Remove your shoes."},
			}},
		},
	}}
}

func withCountry(i int) session.Session {
	s := session.New()
	s.CountryIndex = i
	return s
}

func TestClassifyCountry(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name      string
		msg       string
		sess      session.Session
		wantIndex int
	}{
		{name: "bare name", msg: "france", sess: session.New(), wantIndex: 0},
		{name: "case insensitive", msg: "FRANCE", sess: session.New(), wantIndex: 0},
		{name: "embedded in sentence", msg: "tell me about Japan please", sess: session.New(), wantIndex: 1},
		{name: "catalog order breaks ties", msg: "moving from japan to france", sess: session.New(), wantIndex: 0},
		{name: "country wins over quiz keyword", msg: "quiz france", sess: withCountry(0), wantIndex: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.msg, cat, tt.sess)

			if res.Intent != IntentSelectedCountry {
				t.Fatalf("intent = %v, want %v", res.Intent, IntentSelectedCountry)
			}
			if res.CountryIndex != tt.wantIndex {
				t.Fatalf("country index = %d, want %d", res.CountryIndex, tt.wantIndex)
			}
		})
	}
}

func TestClassifySetView(t *testing.T) {
	cat := testCatalog()

	res := Classify("VIEW dining", cat, withCountry(0))
	if res.Intent != IntentSetView {
		t.Fatalf("intent = %v, want %v", res.Intent, IntentSetView)
	}
	if res.SetIndex != 0 {
		t.Fatalf("set index = %d, want 0", res.SetIndex)
	}

	res = Classify("view greetings", cat, withCountry(0))
	if res.Intent != IntentSetView || res.SetIndex != 1 {
		t.Fatalf("got %+v, want set_view index 1", res)
	}
}

func TestClassifySetViewRequiresCountry(t *testing.T) {
	cat := testCatalog()

	res := Classify("view dining", cat, session.New())
	if res.Intent != IntentInitial {
		t.Fatalf("intent without country = %v, want %v", res.Intent, IntentInitial)
	}
}

func TestClassifySetQuiz(t *testing.T) {
	cat := testCatalog()

	res := Classify("quiz dining", cat, withCountry(0))
	if res.Intent != IntentSetQuiz {
		t.Fatalf("intent = %v, want %v", res.Intent, IntentSetQuiz)
	}
	if res.SetIndex != 0 {
		t.Fatalf("set index = %d, want 0", res.SetIndex)
	}
}

func TestClassifySetQuizGatedOnQuizIndex(t *testing.T) {
	cat := testCatalog()
	sess := withCountry(0)
	sess.QuizIndex = 1

	// A quiz already in progress cannot be restarted by the quiz keyword.
	res := Classify("quiz dining", cat, sess)
	if res.Intent != IntentInitial {
		t.Fatalf("intent mid-quiz = %v, want %v", res.Intent, IntentInitial)
	}
}

func TestClassifySetQuizRawNameMatching(t *testing.T) {
	// Quiz matching does not fold the set name, so a mixed-case catalog
	// name never matches; view matching folds both sides.
	cat := &catalog.Catalog{Countries: []catalog.Country{{
		Name: "france",
		Sets: []catalog.Set{{Name: "Dining", Tips: []string{"tip"}}},
	}}}

	res := Classify("quiz dining", cat, withCountry(0))
	if res.Intent != IntentInitial {
		t.Fatalf("quiz intent with mixed-case set name = %v, want %v", res.Intent, IntentInitial)
	}

	res = Classify("view dining", cat, withCountry(0))
	if res.Intent != IntentSetView {
		t.Fatalf("view intent with mixed-case set name = %v, want %v", res.Intent, IntentSetView)
	}
}

func TestClassifyAnswer(t *testing.T) {
	cat := testCatalog()

	for _, msg := range []string{"B", "b", " b ", "7", "?"} {
		res := Classify(msg, cat, withCountry(0))
		if res.Intent != IntentAnswer {
			t.Errorf("Classify(%q) = %v, want %v", msg, res.Intent, IntentAnswer)
		}
	}
}

func TestClassifyNext(t *testing.T) {
	cat := testCatalog()

	res := Classify("next please", cat, withCountry(0))
	if res.Intent != IntentNext {
		t.Fatalf("intent = %v, want %v", res.Intent, IntentNext)
	}

	// A bare single character is an answer even if it spells nothing.
	res = Classify("n", cat, withCountry(0))
	if res.Intent != IntentAnswer {
		t.Fatalf("single char = %v, want %v", res.Intent, IntentAnswer)
	}
}

func TestClassifyFallsBackToInitial(t *testing.T) {
	cat := testCatalog()

	for _, msg := range []string{"hello", "", "what can you do", "quiz"} {
		res := Classify(msg, cat, session.New())
		if res.Intent != IntentInitial {
			t.Errorf("Classify(%q) = %v, want %v", msg, res.Intent, IntentInitial)
		}
	}
}

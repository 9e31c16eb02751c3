package dialog

import (
	"strings"
	"testing"

	"github.com/alisha/dialect/core/catalog"
	"github.com/alisha/dialect/core/session"
)

// respond classifies and responds in one step, the way the transport
// handler drives the engine.
func respond(msg string, cat *catalog.Catalog, sess session.Session) (string, session.Session) {
	return Respond(Classify(msg, cat, sess), msg, cat, sess)
}

func TestRespondGreeting(t *testing.T) {
	cat := testCatalog()
	sess := session.New()

	reply, next := respond("hello there", cat, sess)

	want := "Hello! Welcome to NuoLingo's Dial-ect service. We have etiquette sets for the following countries: France, Japan. Please reply with the country you want to learn more about!"
	if reply != want {
		t.Fatalf("reply = %q, want %q", reply, want)
	}
	if next != sess {
		t.Fatalf("greeting changed the session: %+v", next)
	}
}

func TestRespondCountrySelection(t *testing.T) {
	cat := testCatalog()

	reply, next := respond("france", cat, session.New())

	want := "We have the following sets for France: Dining, Greetings. Reply with either \"VIEW\" or \"QUIZ\" and then the name of a set to either view the set or be quizzed on it."
	if reply != want {
		t.Fatalf("reply = %q, want %q", reply, want)
	}
	if next.CountryIndex != 0 {
		t.Fatalf("country index = %d, want 0", next.CountryIndex)
	}
	if next.SetSummary != "Dining, Greetings" {
		t.Fatalf("set summary = %q", next.SetSummary)
	}
	if next.SetIndex != session.NoIndex {
		t.Fatalf("set index = %d, want %d", next.SetIndex, session.NoIndex)
	}
}

func TestRespondCountrySwitchKeepsQuizIndex(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0
	sess.SetIndex = 0
	sess.QuizIndex = 2

	_, next := respond("japan", cat, sess)

	if next.CountryIndex != 1 {
		t.Fatalf("country index = %d, want 1", next.CountryIndex)
	}
	if next.QuizIndex != 2 {
		t.Fatalf("quiz index = %d, want 2", next.QuizIndex)
	}
}

func TestRespondView(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0

	reply, next := respond("view dining", cat, sess)

	want := "1. Keep both hands visible.\n\n2. Bread goes on the tablecloth.\n\n"
	if reply != want {
		t.Fatalf("reply = %q, want %q", reply, want)
	}
	if next.SetIndex != 0 {
		t.Fatalf("set index = %d, want 0", next.SetIndex)
	}
}

func TestRespondViewEmptySet(t *testing.T) {
	cat := &catalog.Catalog{Countries: []catalog.Country{{
		Name: "france",
		Sets: []catalog.Set{{Name: "dining"}},
	}}}
	sess := session.New()
	sess.CountryIndex = 0

	reply, next := respond("view dining", cat, sess)

	if reply != replyUnavailable {
		t.Fatalf("reply = %q, want %q", reply, replyUnavailable)
	}
	if next.SetIndex != session.NoIndex {
		t.Fatalf("set index committed on failed view: %d", next.SetIndex)
	}
}

func TestRespondQuizStart(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0

	reply, next := respond("quiz dining", cat, sess)

	if !strings.HasPrefix(reply, "prompt\nA. choice\nB. choice\nC. choice\n") {
		t.Fatalf("reply = %q", reply)
	}
	if !strings.HasSuffix(reply, "Text the letter matching your answer only.") {
		t.Fatalf("reply missing instruction: %q", reply)
	}
	if next.SetIndex != 0 {
		t.Fatalf("set index = %d, want 0", next.SetIndex)
	}
	if next.QuizIndex != 0 {
		t.Fatalf("quiz index = %d, want 0", next.QuizIndex)
	}
}

func TestRespondCorrectAnswerMidQuiz(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0
	sess.SetIndex = 0
	sess.QuizIndex = 1

	// Question 1's correct choice is index 1, letter B.
	reply, next := respond("B", cat, sess)

	want := replyCorrect + replyNextSuffix
	if reply != want {
		t.Fatalf("reply = %q, want %q", reply, want)
	}
	if next.QuizIndex != 2 {
		t.Fatalf("quiz index = %d, want 2", next.QuizIndex)
	}
}

func TestRespondIncorrectAnswer(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0
	sess.SetIndex = 0
	sess.QuizIndex = 1

	reply, next := respond("A", cat, sess)

	if reply != replyIncorrect {
		t.Fatalf("reply = %q, want %q", reply, replyIncorrect)
	}
	if next != sess {
		t.Fatalf("session changed on wrong answer: %+v", next)
	}
}

func TestRespondOutOfRangeAnswer(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0
	sess.SetIndex = 0
	sess.QuizIndex = 1

	for _, msg := range []string{"Z", "d", "7", "?"} {
		reply, next := respond(msg, cat, sess)
		if reply != replyInvalidAnswer {
			t.Errorf("respond(%q) = %q, want %q", msg, reply, replyInvalidAnswer)
		}
		if next != sess {
			t.Errorf("respond(%q) changed the session: %+v", msg, next)
		}
	}
}

func TestRespondFinalAnswerWrapsQuiz(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0
	sess.SetIndex = 0
	sess.QuizIndex = 2

	// Question 2's correct choice is index 2, letter C.
	reply, next := respond("c", cat, sess)

	want := replyCorrect + replyCompletedSuffix
	if reply != want {
		t.Fatalf("reply = %q, want %q", reply, want)
	}
	if next.QuizIndex != 0 {
		t.Fatalf("quiz index = %d, want 0", next.QuizIndex)
	}
}

func TestRespondAnswerWithoutQuiz(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0

	reply, next := respond("B", cat, sess)

	if reply != replyUnknown {
		t.Fatalf("reply = %q, want %q", reply, replyUnknown)
	}
	if next != sess {
		t.Fatalf("session changed: %+v", next)
	}
}

func TestRespondNext(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0
	sess.SetIndex = 0
	sess.QuizIndex = 2

	reply, next := respond("next", cat, sess)

	if !strings.HasPrefix(reply, "prompt\nA. choice\n") {
		t.Fatalf("reply = %q", reply)
	}
	if next.QuizIndex != 2 {
		t.Fatalf("quiz index = %d, want 2", next.QuizIndex)
	}
}

func TestRespondNextPastEnd(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0
	sess.SetIndex = 0
	sess.QuizIndex = 3

	reply, next := respond("next", cat, sess)

	if reply != "" {
		t.Fatalf("reply = %q, want empty", reply)
	}
	if next.QuizIndex != 0 {
		t.Fatalf("quiz index = %d, want 0", next.QuizIndex)
	}
}

func TestRespondNextWithoutSet(t *testing.T) {
	cat := testCatalog()
	sess := session.New()
	sess.CountryIndex = 0

	reply, _ := respond("next", cat, sess)

	if reply != replyUnknown {
		t.Fatalf("reply = %q, want %q", reply, replyUnknown)
	}
}

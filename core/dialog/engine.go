package dialog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alisha/dialect/core/catalog"
	"github.com/alisha/dialect/core/session"
)

// User-facing reply text. The conversation is plain text end to end.
const (
	greetingFormat = "Hello! Welcome to NuoLingo's Dial-ect service. We have etiquette sets for the following countries: %s. Please reply with the country you want to learn more about!"
	countryFormat  = "We have the following sets for %s: %s. Reply with either \"VIEW\" or \"QUIZ\" and then the name of a set to either view the set or be quizzed on it."

	answerInstruction = "Text the letter matching your answer only."

	replyCorrect         = "Correct! Great job!"
	replyNextSuffix      = " Text: 'next' for the next question"
	replyCompletedSuffix = " You've finished this quiz! If you want to review or be quizzed on another set, reply with the country you're going to."
	replyIncorrect       = "I'm sorry, that's incorrect. Try again?"
	replyInvalidAnswer   = "Please give a valid answer"
	replyUnavailable     = "Sorry, that content is unavailable right now."
	replyUnknown         = "Sorry, I didn't understand that!"
)

// Respond computes the reply for a classified message and the session that
// should replace the current one. It never mutates its input and never
// indexes the catalog without checking: a branch whose preconditions fail
// falls back to the did-not-understand reply, and content that turns out
// to be malformed or empty at render time yields the unavailable reply.
func Respond(res Result, msg string, cat *catalog.Catalog, sess session.Session) (string, session.Session) {
	switch res.Intent {
	case IntentInitial:
		return fmt.Sprintf(greetingFormat, catalog.JoinCapitalized(cat.Names())), sess

	case IntentSelectedCountry:
		country, ok := cat.Country(res.CountryIndex)
		if !ok {
			return replyUnknown, sess
		}
		sess.CountryIndex = res.CountryIndex
		sess.SetSummary = country.SetSummary()
		return fmt.Sprintf(countryFormat, catalog.Capitalize(country.Name), sess.SetSummary), sess

	case IntentSetView:
		set, ok := cat.Set(sess.CountryIndex, res.SetIndex)
		if !ok {
			return replyUnknown, sess
		}
		if len(set.Tips) == 0 {
			return replyUnavailable, sess
		}
		sess.SetIndex = res.SetIndex
		return renderTips(set.Tips), sess

	case IntentSetQuiz:
		set, ok := cat.Set(sess.CountryIndex, res.SetIndex)
		if !ok {
			return replyUnknown, sess
		}
		question, ok := questionAt(set, sess.QuizIndex)
		if !ok || len(question.Choices) == 0 {
			return replyUnavailable, sess
		}
		sess.SetIndex = res.SetIndex
		return renderQuestion(question), sess

	case IntentAnswer:
		return respondAnswer(msg, cat, sess)

	case IntentNext:
		return respondNext(cat, sess)

	default:
		return replyUnknown, sess
	}
}

func respondAnswer(msg string, cat *catalog.Catalog, sess session.Session) (string, session.Session) {
	set, ok := cat.Set(sess.CountryIndex, sess.SetIndex)
	if !ok {
		return replyUnknown, sess
	}
	questions := set.Questions
	if sess.QuizIndex < 0 || sess.QuizIndex >= len(questions) {
		return replyUnknown, sess
	}
	question := questions[sess.QuizIndex]
	if len(question.Choices) == 0 {
		return replyUnavailable, sess
	}

	choice, ok := decodeChoice(msg, len(question.Choices))
	if !ok {
		return replyInvalidAnswer, sess
	}

	if !question.Choices[choice].IsCorrect {
		return replyIncorrect, sess
	}

	reply := replyCorrect
	if sess.QuizIndex == len(questions)-1 {
		reply += replyCompletedSuffix
	} else {
		reply += replyNextSuffix
	}
	sess.QuizIndex = (sess.QuizIndex + 1) % len(questions)
	return reply, sess
}

func respondNext(cat *catalog.Catalog, sess session.Session) (string, session.Session) {
	set, ok := cat.Set(sess.CountryIndex, sess.SetIndex)
	if !ok {
		return replyUnknown, sess
	}

	// Stale position past the end of the quiz: reset silently. The empty
	// reply is long-standing behavior; changing it needs a product call.
	if sess.QuizIndex >= len(set.Questions) {
		sess.QuizIndex = 0
		return "", sess
	}

	question := set.Questions[sess.QuizIndex]
	if len(question.Choices) == 0 {
		return replyUnavailable, sess
	}
	return renderQuestion(question), sess
}

// decodeChoice maps a one-character answer to a choice index: 'A'/'a' is
// 0, 'B'/'b' is 1, and so on. Anything outside [0, count) is rejected,
// which covers every non-letter as well.
func decodeChoice(msg string, count int) (int, bool) {
	trimmed := []rune(strings.TrimSpace(msg))
	if len(trimmed) != 1 {
		return 0, false
	}
	idx := int(unicode.ToUpper(trimmed[0])) - 'A'
	if idx < 0 || idx >= count {
		return 0, false
	}
	return idx, true
}

// renderTips formats tips as a 1-based numbered list, one per line.
func renderTips(tips []string) string {
	var b strings.Builder
	for i, tip := range tips {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, tip)
	}
	return b.String()
}

// renderQuestion formats the prompt, the choices lettered by position,
// and the answer instruction.
func renderQuestion(q catalog.Question) string {
	var b strings.Builder
	b.WriteString(q.Prompt)
	b.WriteByte('\n')
	for i, choice := range q.Choices {
		fmt.Fprintf(&b, "%c. %s\n", 'A'+i, choice.Text)
	}
	b.WriteString(answerInstruction)
	return b.String()
}

func questionAt(set catalog.Set, i int) (catalog.Question, bool) {
	if i < 0 || i >= len(set.Questions) {
		return catalog.Question{}, false
	}
	return set.Questions[i], true
}

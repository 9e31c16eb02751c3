// Package dialog implements the conversation state machine: classifying
// what an inbound message asks for and rendering the next reply together
// with the session update it implies. Both halves are pure; the transport
// adapter owns all I/O around them.
package dialog

import "github.com/alisha/dialect/core/session"

// Intent is the classified purpose of an inbound message.
type Intent int

const (
	// IntentInitial covers first contact and anything no other rule matched.
	IntentInitial Intent = iota
	// IntentSelectedCountry means the message named a catalog country.
	IntentSelectedCountry
	// IntentSetView asks to view a flashcard set's tips.
	IntentSetView
	// IntentSetQuiz asks to start a quiz on a flashcard set.
	IntentSetQuiz
	// IntentAnswer is a single-character quiz answer.
	IntentAnswer
	// IntentNext asks for the next quiz question.
	IntentNext
)

var intentNames = map[Intent]string{
	IntentInitial:         "initial",
	IntentSelectedCountry: "selected_country",
	IntentSetView:         "set_view",
	IntentSetQuiz:         "set_quiz",
	IntentAnswer:          "answer",
	IntentNext:            "next",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// Result is a classification outcome. The matched indexes are carried as
// data so the classifier never touches the session; the engine alone
// decides what to record.
type Result struct {
	Intent       Intent
	CountryIndex int
	SetIndex     int
}

func resultOf(intent Intent) Result {
	return Result{Intent: intent, CountryIndex: session.NoIndex, SetIndex: session.NoIndex}
}

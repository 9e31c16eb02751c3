// Package session tracks per-sender conversation state: the selected
// country, the selected flashcard set, and the position within a quiz.
package session

// NoIndex marks an optional index that has not been set yet.
const NoIndex = -1

// Session is the conversation state for one sender. It is passed by value:
// the dialog engine receives a Session and returns the updated copy, and
// only the transport adapter writes it back to the store.
type Session struct {
	CountryIndex int    `json:"country_index"`
	SetIndex     int    `json:"set_index"`
	QuizIndex    int    `json:"quiz_index"`
	SetSummary   string `json:"set_summary"`
}

// New returns the default session for a sender's first contact.
func New() Session {
	return Session{
		CountryIndex: NoIndex,
		SetIndex:     NoIndex,
	}
}

// HasCountry reports whether a country has been selected.
func (s Session) HasCountry() bool {
	return s.CountryIndex != NoIndex
}

// HasSet reports whether a flashcard set has been selected.
func (s Session) HasSet() bool {
	return s.SetIndex != NoIndex
}

package dialog

import (
	"strings"
	"unicode/utf8"

	"github.com/alisha/dialect/core/catalog"
	"github.com/alisha/dialect/core/session"
)

// Classify maps an inbound message to an intent. Rules are evaluated in a
// fixed priority order and the first match wins; within a rule, catalog
// order breaks ties between matching names.
func Classify(msg string, cat *catalog.Catalog, sess session.Session) Result {
	lowered := strings.ToLower(msg)

	if i, ok := matchCountry(lowered, cat); ok {
		res := resultOf(IntentSelectedCountry)
		res.CountryIndex = i
		return res
	}

	// Set rules only apply once a country has been chosen.
	if country, ok := cat.Country(sess.CountryIndex); sess.HasCountry() && ok {
		if strings.Contains(lowered, "view") {
			if j, ok := matchSetFolded(lowered, country.Sets); ok {
				res := resultOf(IntentSetView)
				res.SetIndex = j
				return res
			}
		}
		if strings.Contains(lowered, "quiz") && sess.QuizIndex == 0 {
			if j, ok := matchSetRaw(lowered, country.Sets); ok {
				res := resultOf(IntentSetQuiz)
				res.SetIndex = j
				return res
			}
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(msg)) == 1 {
		return resultOf(IntentAnswer)
	}

	if strings.Contains(lowered, "next") {
		return resultOf(IntentNext)
	}

	return resultOf(IntentInitial)
}

func matchCountry(lowered string, cat *catalog.Catalog) (int, bool) {
	if cat == nil {
		return 0, false
	}
	for i, country := range cat.Countries {
		if country.Name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(country.Name)) {
			return i, true
		}
	}
	return 0, false
}

func matchSetFolded(lowered string, sets []catalog.Set) (int, bool) {
	for j, s := range sets {
		if s.Name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(s.Name)) {
			return j, true
		}
	}
	return 0, false
}

// matchSetRaw is stricter than matchSetFolded: the set name is searched
// without case folding, so a mixed-case catalog name will not match the
// lowered message. Quiz requests keep this behavior.
func matchSetRaw(lowered string, sets []catalog.Set) (int, bool) {
	for j, s := range sets {
		if s.Name == "" {
			continue
		}
		if strings.Contains(lowered, s.Name) {
			return j, true
		}
	}
	return 0, false
}

// Package catalog holds the immutable country/set/question data the service
// teaches from. A Catalog is loaded once at startup and shared read-only
// across all conversations.
package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Choice is one possible answer to a quiz question.
type Choice struct {
	Text      string
	IsCorrect bool
}

// Question is a multiple-choice quiz question within a set.
type Question struct {
	Prompt  string
	Choices []Choice
}

// Set is a named flashcard set: etiquette tips plus a quiz over them.
type Set struct {
	Name      string
	Tips      []string
	Questions []Question
}

// Country groups the flashcard sets available for one country.
type Country struct {
	Name string
	Sets []Set
}

// Catalog is the full ordered collection of countries.
type Catalog struct {
	Countries []Country
}

// Country returns the country at index i if it exists.
func (c *Catalog) Country(i int) (Country, bool) {
	if c == nil || i < 0 || i >= len(c.Countries) {
		return Country{}, false
	}
	return c.Countries[i], true
}

// Names returns the country names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.Countries))
	for i, country := range c.Countries {
		names[i] = country.Name
	}
	return names
}

// Set returns the set at index j of country i if both exist.
func (c *Catalog) Set(i, j int) (Set, bool) {
	country, ok := c.Country(i)
	if !ok || j < 0 || j >= len(country.Sets) {
		return Set{}, false
	}
	return country.Sets[j], true
}

// SetNames returns the set names of a country in set order.
func (co Country) SetNames() []string {
	names := make([]string, len(co.Sets))
	for i, s := range co.Sets {
		names[i] = s.Name
	}
	return names
}

// SetSummary renders the country's set names as a comma-joined,
// capitalized list for user-facing replies.
func (co Country) SetSummary() string {
	return JoinCapitalized(co.SetNames())
}

// Capitalize uppercases the first rune and lowercases the remainder.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// JoinCapitalized joins names as "Aaa, Bbb, Ccc".
func JoinCapitalized(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Capitalize(n)
	}
	return strings.Join(out, ", ")
}

package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformed marks catalog data that violates the content invariants.
// The dialog engine tolerates malformed entries at render time; validation
// exists so operators hear about bad data at startup instead of from users.
var ErrMalformed = errors.New("malformed catalog")

// Validate checks the content invariants: the catalog has countries, every
// country has sets, and every question has choices with exactly one marked
// correct. All problems are collected and returned joined.
func (c *Catalog) Validate() error {
	if c == nil || len(c.Countries) == 0 {
		return fmt.Errorf("%w: no countries", ErrMalformed)
	}

	var errs []error
	for _, country := range c.Countries {
		if country.Name == "" {
			errs = append(errs, fmt.Errorf("%w: country with empty name", ErrMalformed))
		}
		if len(country.Sets) == 0 {
			errs = append(errs, fmt.Errorf("%w: country %q has no sets", ErrMalformed, country.Name))
		}
		for _, set := range country.Sets {
			for qi, q := range set.Questions {
				if len(q.Choices) == 0 {
					errs = append(errs, fmt.Errorf("%w: %s/%s question %d has no choices",
						ErrMalformed, country.Name, set.Name, qi+1))
					continue
				}
				correct := 0
				for _, ch := range q.Choices {
					if ch.IsCorrect {
						correct++
					}
				}
				if correct != 1 {
					errs = append(errs, fmt.Errorf("%w: %s/%s question %d has %d correct choices",
						ErrMalformed, country.Name, set.Name, qi+1, correct))
				}
			}
		}
	}
	return errors.Join(errs...)
}

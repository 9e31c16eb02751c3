package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/alisha/dialect/core/logger"
	"log/slog"
)

// PostgresSource loads the catalog from the relational schema managed by
// the migrations directory. Row order is fixed by the position columns so
// the in-memory catalog preserves authoring order.
type PostgresSource struct {
	db *sqlx.DB
}

// NewPostgresSource returns a Source backed by the given connection pool.
func NewPostgresSource(db *sqlx.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

type countryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type setRow struct {
	ID        int64  `db:"id"`
	CountryID int64  `db:"country_id"`
	Name      string `db:"name"`
}

type tipRow struct {
	SetID int64  `db:"set_id"`
	Tip   string `db:"tip"`
}

type questionRow struct {
	ID     int64  `db:"id"`
	SetID  int64  `db:"set_id"`
	Prompt string `db:"prompt"`
}

type choiceRow struct {
	QuestionID int64  `db:"question_id"`
	Text       string `db:"text"`
	IsCorrect  bool   `db:"is_correct"`
}

// Load assembles the catalog from five ordered selects.
func (s *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	start := time.Now()

	var countries []countryRow
	if err := s.db.SelectContext(ctx, &countries,
		`SELECT id, name FROM countries ORDER BY position, id`); err != nil {
		return nil, fmt.Errorf("catalog: select countries: %w", err)
	}

	var sets []setRow
	if err := s.db.SelectContext(ctx, &sets,
		`SELECT id, country_id, name FROM flashcard_sets ORDER BY country_id, position, id`); err != nil {
		return nil, fmt.Errorf("catalog: select sets: %w", err)
	}

	var tips []tipRow
	if err := s.db.SelectContext(ctx, &tips,
		`SELECT set_id, tip FROM set_tips ORDER BY set_id, position, id`); err != nil {
		return nil, fmt.Errorf("catalog: select tips: %w", err)
	}

	var questions []questionRow
	if err := s.db.SelectContext(ctx, &questions,
		`SELECT id, set_id, prompt FROM quiz_questions ORDER BY set_id, position, id`); err != nil {
		return nil, fmt.Errorf("catalog: select questions: %w", err)
	}

	var choices []choiceRow
	if err := s.db.SelectContext(ctx, &choices,
		`SELECT question_id, text, is_correct FROM question_choices ORDER BY question_id, position, id`); err != nil {
		return nil, fmt.Errorf("catalog: select choices: %w", err)
	}

	choicesByQuestion := make(map[int64][]Choice, len(questions))
	for _, ch := range choices {
		choicesByQuestion[ch.QuestionID] = append(choicesByQuestion[ch.QuestionID], Choice{
			Text:      ch.Text,
			IsCorrect: ch.IsCorrect,
		})
	}

	questionsBySet := make(map[int64][]Question, len(sets))
	for _, q := range questions {
		questionsBySet[q.SetID] = append(questionsBySet[q.SetID], Question{
			Prompt:  q.Prompt,
			Choices: choicesByQuestion[q.ID],
		})
	}

	tipsBySet := make(map[int64][]string, len(sets))
	for _, t := range tips {
		tipsBySet[t.SetID] = append(tipsBySet[t.SetID], t.Tip)
	}

	setsByCountry := make(map[int64][]Set, len(countries))
	for _, row := range sets {
		setsByCountry[row.CountryID] = append(setsByCountry[row.CountryID], Set{
			Name:      row.Name,
			Tips:      tipsBySet[row.ID],
			Questions: questionsBySet[row.ID],
		})
	}

	cat := &Catalog{Countries: make([]Country, 0, len(countries))}
	for _, row := range countries {
		cat.Countries = append(cat.Countries, Country{
			Name: row.Name,
			Sets: setsByCountry[row.ID],
		})
	}

	logger.Info(ctx, "catalog", "catalog.loaded",
		slog.String("status", "ok"),
		slog.String("source", "postgres"),
		slog.Int("count", len(cat.Countries)),
		slog.Duration("duration", logger.Took(start)),
	)
	return cat, nil
}

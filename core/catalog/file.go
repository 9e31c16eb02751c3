package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alisha/dialect/core/logger"
	"log/slog"
)

// fileDocument mirrors the catalog JSON layout. The isCorrect flag is a
// string ("true"/"false") in the data files, not a boolean.
type fileDocument struct {
	Countries []struct {
		Name string `json:"name"`
		Sets []struct {
			Name   string   `json:"name"`
			Review []string `json:"review"`
			Quiz   []struct {
				Prompt  string `json:"prompt"`
				Answers []struct {
					Text      string `json:"text"`
					IsCorrect string `json:"isCorrect"`
				} `json:"answers"`
			} `json:"quiz"`
		} `json:"sets"`
	} `json:"countries"`
}

// FileSource loads the catalog from a JSON document on disk.
type FileSource struct {
	Path string
}

// NewFileSource returns a Source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and decodes the catalog document.
func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	start := time.Now()
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", s.Path, err)
	}
	cat, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", s.Path, err)
	}
	logger.Info(ctx, "catalog", "catalog.loaded",
		slog.String("status", "ok"),
		slog.String("source", "file"),
		slog.String("path", s.Path),
		slog.Int("count", len(cat.Countries)),
		slog.Duration("duration", logger.Took(start)),
	)
	return cat, nil
}

// Decode parses a catalog JSON document into the in-memory model.
func Decode(data []byte) (*Catalog, error) {
	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	cat := &Catalog{Countries: make([]Country, 0, len(doc.Countries))}
	for _, c := range doc.Countries {
		country := Country{Name: c.Name, Sets: make([]Set, 0, len(c.Sets))}
		for _, s := range c.Sets {
			set := Set{
				Name:      s.Name,
				Tips:      append([]string(nil), s.Review...),
				Questions: make([]Question, 0, len(s.Quiz)),
			}
			for _, q := range s.Quiz {
				question := Question{
					Prompt:  q.Prompt,
					Choices: make([]Choice, 0, len(q.Answers)),
				}
				for _, a := range q.Answers {
					question.Choices = append(question.Choices, Choice{
						Text:      a.Text,
						IsCorrect: a.IsCorrect == "true",
					})
				}
				set.Questions = append(set.Questions, question)
			}
			country.Sets = append(country.Sets, set)
		}
		cat.Countries = append(cat.Countries, country)
	}
	return cat, nil
}

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Poem
var (
	ErrEmptyPoemID   = errors.New("poem ID cannot be empty")
	ErrEmptyPoemWord = errors.New("poem word cannot be empty")
)

// Poem is an acrostic poem (행시) generated for a word. Text holds the model
// output as returned, minus surrounding whitespace, and is shown verbatim.
type Poem struct {
	ID        uuid.UUID `json:"id"`
	Word      Word      `json:"word"`
	Text      string    `json:"poem"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPoem creates a Poem for word from the generated text.
// Returns an error if validation fails.
func NewPoem(word Word, text, model string) (*Poem, error) {
	poem := &Poem{
		ID:        uuid.New(),
		Word:      word,
		Text:      strings.TrimSpace(text),
		Model:     model,
		CreatedAt: time.Now().UTC(),
	}

	if err := poem.Validate(); err != nil {
		return nil, err
	}

	return poem, nil
}

// Validate checks if the Poem has valid data.
func (p *Poem) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPoemID
	}

	if strings.TrimSpace(string(p.Word)) == "" {
		return ErrEmptyPoemWord
	}

	if p.Text == "" {
		return ErrEmptyPoem
	}

	return nil
}

// Lines returns the non-empty lines of the poem, each trimmed.
func (p *Poem) Lines() []string {
	raw := strings.Split(p.Text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

package generation

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/haengsi/internal/domain"
)

// Line length bounds requested from the model for every poem line.
// They are instructions only; the output is never checked against them.
const (
	DefaultMinLineLength = 10
	DefaultMaxLineLength = 20
)

//go:embed templates/haengsi.tmpl
var templateFS embed.FS

const defaultTemplateName = "templates/haengsi.tmpl"

// promptData represents the data passed to the prompt template
type promptData struct {
	Word          string
	Characters    []string
	LineCount     int
	MinLineLength int
	MaxLineLength int
}

// PromptBuilder renders the acrostic instruction for a word.
// It holds no per-call state and is safe for concurrent use.
type PromptBuilder struct {
	tmpl          *template.Template
	minLineLength int
	maxLineLength int
}

// NewPromptBuilder creates a PromptBuilder. An empty templatePath selects the
// embedded default template; otherwise the file at templatePath is parsed.
func NewPromptBuilder(templatePath string) (*PromptBuilder, error) {
	var (
		name    string
		content []byte
		err     error
	)

	if templatePath == "" {
		name = "haengsi"
		content, err = templateFS.ReadFile(defaultTemplateName)
	} else {
		name = templatePath
		content, err = os.ReadFile(templatePath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template: %v", ErrInvalidConfig, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{
		tmpl:          tmpl,
		minLineLength: DefaultMinLineLength,
		maxLineLength: DefaultMaxLineLength,
	}, nil
}

// Build renders the prompt for word. An empty or whitespace-only word is
// rejected with domain.ErrEmptyWord and a word containing '[' or ']' with
// domain.ErrInvalidCharacter, both before the template runs.
func (b *PromptBuilder) Build(word string) (string, error) {
	w := domain.Word(strings.TrimSpace(word))
	chars := w.Characters()
	if len(chars) == 0 {
		return "", domain.ErrEmptyWord
	}
	if domain.HasReservedCharacter(w.String()) {
		return "", domain.ErrInvalidCharacter
	}

	data := promptData{
		Word:          w.String(),
		Characters:    chars,
		LineCount:     len(chars),
		MinLineLength: b.minLineLength,
		MaxLineLength: b.maxLineLength,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

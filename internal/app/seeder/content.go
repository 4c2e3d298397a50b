package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/service/category"
	"github.com/heartmarshall/quiz-backend/internal/service/question"
)

// Content is a seed file: categories with their questions.
type Content struct {
	Categories []CategorySeed `yaml:"categories"`
}

// CategorySeed is one category of a seed file.
type CategorySeed struct {
	Name        string         `yaml:"name"`
	Description *string        `yaml:"description"`
	Questions   []QuestionSeed `yaml:"questions"`
}

// QuestionSeed is one question of a seed file. For TYPE questions every
// choice is an accepted answer.
type QuestionSeed struct {
	Type       string       `yaml:"type"`
	Difficulty string       `yaml:"difficulty"`
	Title      string       `yaml:"title"`
	Choices    []ChoiceSeed `yaml:"choices"`
}

// ChoiceSeed is one answer option.
type ChoiceSeed struct {
	Title       string  `yaml:"title"`
	Correct     bool    `yaml:"correct"`
	Explanation *string `yaml:"explanation"`
}

// LoadContent reads a seed file. Unknown keys are rejected.
func LoadContent(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seeder content: %w", err)
	}
	defer f.Close()

	return DecodeContent(f)
}

// DecodeContent parses seed YAML from r.
func DecodeContent(r io.Reader) (*Content, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("seeder content: decode: %w", err)
	}
	return &c, nil
}

// categoryInput normalizes and validates the category part of a seed.
func (s CategorySeed) categoryInput() (category.CreateCategoryInput, error) {
	in := category.CreateCategoryInput{Name: s.Name, Description: s.Description}
	in.Normalize()
	return in, in.Validate()
}

// questionInput normalizes and validates one question seed.
func (s QuestionSeed) questionInput() (question.CreateQuestionInput, error) {
	in := question.CreateQuestionInput{
		Type:       domain.QuestionType(s.Type),
		Difficulty: domain.Difficulty(s.Difficulty),
		Title:      s.Title,
		Choices:    make([]domain.QuestionChoice, len(s.Choices)),
	}
	for i, c := range s.Choices {
		in.Choices[i] = domain.QuestionChoice{Title: c.Title, Correct: c.Correct, Explanation: c.Explanation}
	}
	in.Normalize()
	return in, in.Validate()
}

package doctor

import (
	"context"
	_ "embed"
	"io"
	"os"
	"strings"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	yaml "gopkg.in/yaml.v3"
)

//go:embed scripts/default.yaml
var defaultScript []byte

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Script is a doctor which asks a fixed list of questions in order,
// regardless of the answers
type Script struct {
	Name      string          `yaml:"name,omitempty"`
	Task      schema.TaskType `yaml:"task,omitempty"`
	Questions []string        `yaml:"questions"`
}

var _ clinic.Doctor = (*Script)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultScript returns the intake questions used when no script is given
func DefaultScript() *Script {
	script, err := ParseScript(strings.NewReader(string(defaultScript)))
	if err != nil {
		panic(err)
	}
	return script
}

// ParseScript reads a script in YAML format
func ParseScript(r io.Reader) (*Script, error) {
	script := new(Script)
	if err := yaml.NewDecoder(r).Decode(script); err != nil {
		return nil, clinic.ErrBadParameter.With("script: ", err)
	}

	// Drop empty questions
	questions := make([]string, 0, len(script.Questions))
	for _, question := range script.Questions {
		if question = strings.TrimSpace(question); question != "" {
			questions = append(questions, question)
		}
	}
	script.Questions = questions

	if len(script.Questions) == 0 {
		return nil, clinic.ErrBadParameter.With("script has no questions")
	}
	if script.Task != "" && !script.Task.Valid() {
		return nil, clinic.ErrBadParameter.Withf("script: unknown task type %q", script.Task)
	}

	// Return success
	return script, nil
}

// LoadScript reads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}
	defer f.Close()
	return ParseScript(f)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ask returns the question after the last one asked, or io.EOF when every
// question has been asked
func (s *Script) Ask(_ context.Context, history []schema.Turn) (string, error) {
	asked := 0
	for _, turn := range history {
		if turn.Speaker == schema.SpeakerDoctor {
			asked++
		}
	}
	if asked >= len(s.Questions) {
		return "", io.EOF
	}
	return s.Questions[asked], nil
}

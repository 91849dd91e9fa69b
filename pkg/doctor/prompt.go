package doctor

import (
	"embed"
	"strings"
	"text/template"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	cases "golang.org/x/text/cases"
	language "golang.org/x/text/language"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

///////////////////////////////////////////////////////////////////////////////
// TYPES

// promptData is passed to the system prompt templates
type promptData struct {
	Patient   string
	Task      schema.TaskType
	Objective string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// objectives names the goal of each task in the system prompt
var objectives = map[schema.TaskType]string{
	schema.TaskDiagnosis: "diagnosis",
	schema.TaskTreatment: "treatment prediction",
	schema.TaskEvent:     "clinical event prediction",
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SystemPrompt returns the instructions for a doctor interviewing the named
// patient for the given task
func SystemPrompt(task schema.TaskType, patient string) (string, error) {
	objective, ok := objectives[task]
	if !ok {
		return "", clinic.ErrBadParameter.Withf("unknown task type %q", task)
	}

	tmpl, err := template.New("base.tmpl").Funcs(funcMap()).ParseFS(promptFS, "prompts/base.tmpl", "prompts/"+string(task)+".tmpl")
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, promptData{
		Patient:   strings.TrimSpace(patient),
		Task:      task,
		Objective: objective,
	}); err != nil {
		return "", err
	}

	// Return success
	return strings.TrimSpace(buf.String()) + "\n", nil
}

// Title returns a task type as a heading, such as "Diagnosis"
func Title(task schema.TaskType) string {
	return cases.Title(language.English).String(string(task))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func funcMap() template.FuncMap {
	return template.FuncMap{
		"title": cases.Title(language.English).String,
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}
}

package doctor

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is one message in a chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// Request is the body of a chat completion request
type Request struct {
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   uint64    `json:"max_completion_tokens,omitempty"`
}

// Response is the body of a chat completion response
type Response struct {
	Id      string   `json:"id"`
	Type    string   `json:"object"`
	Created uint64   `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage,omitempty"`
}

// Choice is one completion
type Choice struct {
	Index   uint64  `json:"index"`
	Message Message `json:"message"`
	Reason  string  `json:"finish_reason,omitempty"`
}

// Usage counts the tokens used by a request
type Usage struct {
	PromptTokens     uint64 `json:"prompt_tokens,omitempty"`
	CompletionTokens uint64 `json:"completion_tokens,omitempty"`
	TotalTokens      uint64 `json:"total_tokens,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the content of the first choice, or an empty string
func (r Response) Text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

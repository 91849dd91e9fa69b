package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Pagination is the metadata included with every list response. TotalPages
// is computed by the server as ceil(Total / Limit).
type Pagination struct {
	Page       uint `json:"page"`
	Limit      uint `json:"limit"`
	Total      uint `json:"total"`
	TotalPages uint `json:"totalPages"`
}

// PaginatedResponse wraps one page of items from a list endpoint
type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PatientList is one page of patients
type PatientList = PaginatedResponse[PatientSummary]

// ConversationList is one page of conversations
type ConversationList = PaginatedResponse[ConversationSummary]

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// HasNext returns true if there are pages after this one
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrevious returns true if there are pages before this one
func (p Pagination) HasPrevious() bool {
	return p.Page > 1
}

// NextPage returns the page number after this one, or zero if this is the
// last page
func (p Pagination) NextPage() uint {
	if !p.HasNext() {
		return 0
	}
	return p.Page + 1
}

// Len returns the number of items in this page
func (r PaginatedResponse[T]) Len() int {
	return len(r.Data)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Pagination) String() string {
	return types.Stringify(p)
}

func (r PaginatedResponse[T]) String() string {
	return types.Stringify(r)
}

package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// HealthStatus is the response from GET /api/health
type HealthStatus struct {
	Status      ServiceStatus  `json:"status"`
	Service     string         `json:"service"`
	Timestamp   string         `json:"timestamp"`
	Database    DatabaseStatus `json:"database"`
	DbLatencyMs *int           `json:"dbLatencyMs,omitempty"`
	Error       *string        `json:"error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Healthy returns true if the service and its database are both up
func (h HealthStatus) Healthy() bool {
	return h.Status == StatusOK && h.Database == DatabaseConnected
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (h HealthStatus) String() string {
	return types.Stringify(h)
}

// Package models defines the domain types shared across Compass.
package models

import (
	"encoding/json"
	"fmt"
)

// RoleDataset is a resolved interview-question dataset for a job role.
// Questions holds the raw JSON value from disk, unwrapped from a
// {"questions": ...} envelope when the file used one.
type RoleDataset struct {
	Role      string
	Key       string
	Filename  string
	Path      string
	Questions json.RawMessage
}

// DatasetNotFoundError reports that no dataset file exists for a role.
type DatasetNotFoundError struct {
	Role string
	Path string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("no dataset for role '%s' at %s", e.Role, e.Path)
}

// QuestionsResponse is the success envelope for GET /api/questions/{role}.
type QuestionsResponse struct {
	Success   bool            `json:"success"`
	Role      string          `json:"role"`
	Filename  string          `json:"filename"`
	Questions json.RawMessage `json:"questions"`
}

// QuestionsNotFoundResponse is the 404 envelope. Path echoes the attempted
// dataset path for diagnostics.
type QuestionsNotFoundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// QuestionsErrorResponse is the 500 envelope for unreadable or corrupt
// dataset files.
type QuestionsErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

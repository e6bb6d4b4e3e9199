package model

import "encoding/json"

// StartSessionRequest opens a form session. ClientID is required for edit and
// view modes and ignored for create.
type StartSessionRequest struct {
	Mode     Mode   `json:"mode"`
	ClientID string `json:"client_id,omitempty"`
}

type SessionResponse struct {
	SessionID string         `json:"session_id"`
	Mode      Mode           `json:"mode"`
	ClientID  string         `json:"client_id,omitempty"`
	Document  map[string]any `json:"document"`
}

// FieldUpdateRequest applies one deep-path write to the session document.
type FieldUpdateRequest struct {
	Path  []string        `json:"path"`
	Value json.RawMessage `json:"value"`
}

// AddRowRequest appends an all-blank row to one of the row collections.
// Person is required for household_members and ignored otherwise.
type AddRowRequest struct {
	Collection string `json:"collection"`
	Person     Person `json:"person,omitempty"`
}

// FieldError is one validation finding, keyed by the dotted field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// SubmitResponse reports one pass through the save state machine. Accepted is
// false when the duplicate-submit guard skipped the attempt; no error detail
// accompanies that case.
type SubmitResponse struct {
	Accepted         bool         `json:"accepted"`
	Outcome          string       `json:"outcome,omitempty"`
	ClientID         string       `json:"client_id,omitempty"`
	NavigateBack     bool         `json:"navigate_back,omitempty"`
	ValidationErrors []FieldError `json:"validation_errors,omitempty"`
	FirstErrorPath   string       `json:"first_error_path,omitempty"`
	Error            string       `json:"error,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

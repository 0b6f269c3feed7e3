// Package handler holds shared types and constants for the web handlers.
//
// Every API endpoint answers HTTP 200 and reports failures inside the JSON
// body, preserving the legacy client contract.
package handler

// Result is the common JSON envelope of every API response.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Fail builds a failure Result with the given user-facing error message.
func Fail(message string) Result {
	return Result{Success: false, Error: message}
}

// OK is the bare success Result.
func OK() Result {
	return Result{Success: true}
}

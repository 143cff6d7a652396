package device

import (
	"encoding/json"
	"fmt"
)

// Device is anything that can execute a JSON-described action, such as
// a TV reachable over the network.
type Device interface {
	// Process executes one action and reports its outcome. Action
	// failures are carried in the response, not as an error.
	Process(actionJSON []byte) *ActionResponse

	// Info returns basic information about the device.
	Info() Info
}

// Info contains basic information about a device.
type Info struct {
	Type         string   `json:"type"`
	Model        string   `json:"model"`
	Address      string   `json:"address"`
	Capabilities []string `json:"capabilities"`
}

// ActionType selects which control plane an action targets.
type ActionType string

const (
	// ActionRemote emulates a remote control key press.
	ActionRemote ActionType = "remote"
	// ActionControl invokes a typed control API.
	ActionControl ActionType = "control"
)

// ActionRequest is a JSON action request.
type ActionRequest struct {
	Type       ActionType     `json:"type"`
	Action     string         `json:"action"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// ActionResponse is the outcome of processing an action.
type ActionResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a successful response carrying data.
func OK(data any) *ActionResponse {
	return &ActionResponse{Success: true, Data: data}
}

// Fail builds a failed response with a formatted message.
func Fail(format string, args ...any) *ActionResponse {
	return &ActionResponse{Success: false, Error: fmt.Sprintf(format, args...)}
}

// ParseActionRequest decodes and validates a JSON action request.
func ParseActionRequest(actionJSON []byte) (*ActionRequest, error) {
	var request ActionRequest
	if err := json.Unmarshal(actionJSON, &request); err != nil {
		return nil, fmt.Errorf("parse action request: %w", err)
	}
	if request.Type == "" {
		return nil, fmt.Errorf("action type is required")
	}
	if request.Action == "" {
		return nil, fmt.Errorf("action is required")
	}
	return &request, nil
}

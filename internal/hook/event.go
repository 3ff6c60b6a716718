// Package hook implements the JSON protocol between the coding assistant and
// the activation pipeline: decoding the event delivered on stdin and building
// the envelope written back on stdout. Diagnostics never go to stdout; it is
// reserved for the protocol.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// EventName identifies which assistant lifecycle event invoked the hook.
type EventName string

const (
	// UserPromptSubmit fires when the user submits a prompt.
	UserPromptSubmit EventName = "UserPromptSubmit"
	// PreToolUse fires before the assistant runs a tool.
	PreToolUse EventName = "PreToolUse"
)

// ValidEventNames returns all hook events this binary handles.
func ValidEventNames() []EventName {
	return []EventName{UserPromptSubmit, PreToolUse}
}

// IsValidEventName checks if the given string is a handled hook event.
func IsValidEventName(s string) bool {
	for _, n := range ValidEventNames() {
		if string(n) == s {
			return true
		}
	}
	return false
}

// Event is the JSON payload the assistant writes to the hook's stdin.
// Prompt is a pointer so a missing field can be told apart from an empty
// prompt. Unknown payload fields are ignored.
type Event struct {
	HookEventName string          `json:"hook_event_name"`
	SessionID     string          `json:"session_id,omitempty"`
	Cwd           string          `json:"cwd,omitempty"`
	Prompt        *string         `json:"prompt,omitempty"`
	ToolName      string          `json:"tool_name,omitempty"`
	ToolInput     json.RawMessage `json:"tool_input,omitempty"`
}

// Name returns the event's name as the enum type.
func (e *Event) Name() EventName {
	return EventName(e.HookEventName)
}

// Decode reads and validates one hook event from r.
func Decode(r io.Reader) (*Event, error) {
	var evt Event
	if err := json.NewDecoder(r).Decode(&evt); err != nil {
		return nil, fmt.Errorf("failed to decode hook event: %w", err)
	}

	if evt.HookEventName == "" {
		return nil, fmt.Errorf("hook event is missing hook_event_name")
	}
	if !IsValidEventName(evt.HookEventName) {
		return nil, fmt.Errorf("unsupported hook event %q", evt.HookEventName)
	}
	if evt.Name() == UserPromptSubmit && evt.Prompt == nil {
		return nil, fmt.Errorf("UserPromptSubmit event is missing prompt")
	}

	return &evt, nil
}

// PromptText returns the text the pipeline matches against: the submitted
// prompt for UserPromptSubmit, or text derived from the tool invocation for
// PreToolUse.
func (e *Event) PromptText() string {
	switch e.Name() {
	case UserPromptSubmit:
		if e.Prompt != nil {
			return *e.Prompt
		}
		return ""
	case PreToolUse:
		return ExtractToolText(e.ToolName, e.ToolInput)
	default:
		return ""
	}
}

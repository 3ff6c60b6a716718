package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Permission decisions defined by the PreToolUse protocol. This hook only
// observes tool use, so it always emits PermissionAllow.
const (
	PermissionAllow = "allow"
	PermissionDeny  = "deny"
	PermissionAsk   = "ask"
)

// Output is the JSON envelope the hook writes to stdout.
type Output struct {
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}

// HookSpecificOutput carries the per-event payload. Field names follow the
// assistant's hook protocol, which uses camelCase on output.
type HookSpecificOutput struct {
	HookEventName      string `json:"hookEventName"`
	AdditionalContext  string `json:"additionalContext,omitempty"`
	PermissionDecision string `json:"permissionDecision,omitempty"`
}

// NewUserPromptOutput builds the envelope for a UserPromptSubmit event.
func NewUserPromptOutput(context string) *Output {
	return &Output{HookSpecificOutput: HookSpecificOutput{
		HookEventName:     string(UserPromptSubmit),
		AdditionalContext: context,
	}}
}

// NewPreToolUseOutput builds the envelope for a PreToolUse event. The
// permission decision is always allow regardless of activation outcome.
func NewPreToolUseOutput(context string) *Output {
	return &Output{HookSpecificOutput: HookSpecificOutput{
		HookEventName:      string(PreToolUse),
		AdditionalContext:  context,
		PermissionDecision: PermissionAllow,
	}}
}

// Write encodes the envelope to w with a trailing newline.
func (o *Output) Write(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(o); err != nil {
		return fmt.Errorf("failed to encode hook output: %w", err)
	}
	return nil
}

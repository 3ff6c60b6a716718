package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hookCommand is the shell command registered for each hook event.
const hookCommand = "grimoire hook"

// RegisterHooks ensures the assistant settings file registers the grimoire
// hook for UserPromptSubmit and PreToolUse. Unrelated settings and existing
// hooks are preserved; registration only adds entries that are absent. It
// reports whether the file was modified.
func RegisterHooks(settingsPath string) (bool, error) {
	settings := map[string]interface{}{}

	data, err := os.ReadFile(settingsPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &settings); err != nil {
			return false, fmt.Errorf("failed to parse %s: %w", settingsPath, err)
		}
	case os.IsNotExist(err):
		// First install, start from an empty document.
	default:
		return false, fmt.Errorf("failed to read %s: %w", settingsPath, err)
	}

	hooks, ok := settings["hooks"].(map[string]interface{})
	if !ok {
		hooks = map[string]interface{}{}
	}

	changed := false
	for _, event := range []string{"UserPromptSubmit", "PreToolUse"} {
		if ensureHookEntry(hooks, event) {
			changed = true
		}
	}
	if !changed {
		return false, nil
	}

	settings["hooks"] = hooks
	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(settingsPath, append(out, '\n'), 0644); err != nil {
		return false, fmt.Errorf("failed to write settings: %w", err)
	}
	return true, nil
}

// ensureHookEntry adds a grimoire hook entry for the event unless one is
// already registered. PreToolUse entries carry a match-all tool matcher.
func ensureHookEntry(hooks map[string]interface{}, event string) bool {
	entries, _ := hooks[event].([]interface{})
	if hasGrimoireHook(entries) {
		return false
	}

	entry := map[string]interface{}{
		"hooks": []interface{}{
			map[string]interface{}{"type": "command", "command": hookCommand},
		},
	}
	if event == "PreToolUse" {
		entry["matcher"] = "*"
	}

	hooks[event] = append(entries, entry)
	return true
}

func hasGrimoireHook(entries []interface{}) bool {
	for _, e := range entries {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		inner, _ := m["hooks"].([]interface{})
		for _, h := range inner {
			hm, ok := h.(map[string]interface{})
			if !ok {
				continue
			}
			if cmd, _ := hm["command"].(string); strings.Contains(cmd, hookCommand) {
				return true
			}
		}
	}
	return false
}

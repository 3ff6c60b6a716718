package hook

import (
	"encoding/json"
)

// BashInput represents the JSON input structure for the Bash tool.
type BashInput struct {
	Command string `json:"command"`
}

// WriteInput represents the JSON input structure for the Write tool.
type WriteInput struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
}

// EditInput represents the JSON input structure for the Edit tool.
type EditInput struct {
	FilePath  string `json:"file_path"`
	OldString string `json:"old_string"`
	NewString string `json:"new_string"`
}

// ReadInput represents the JSON input structure for the Read tool.
type ReadInput struct {
	FilePath string `json:"file_path"`
}

// WebFetchInput represents the JSON input structure for the WebFetch tool.
type WebFetchInput struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// WebSearchInput represents the JSON input structure for the WebSearch tool.
type WebSearchInput struct {
	Query string `json:"query"`
}

// ExtractToolText pulls the text worth matching from a tool invocation so
// extension and path triggers can fire on the file or command a tool is
// about to touch. Unknown tools yield empty text, which activates nothing.
func ExtractToolText(toolName string, toolInput json.RawMessage) string {
	if len(toolInput) == 0 {
		return ""
	}

	switch toolName {
	case "Bash":
		var input BashInput
		if err := json.Unmarshal(toolInput, &input); err == nil {
			return input.Command
		}

	case "Write":
		var input WriteInput
		if err := json.Unmarshal(toolInput, &input); err == nil {
			return input.FilePath
		}

	case "Edit":
		var input EditInput
		if err := json.Unmarshal(toolInput, &input); err == nil {
			return input.FilePath
		}

	case "Read":
		var input ReadInput
		if err := json.Unmarshal(toolInput, &input); err == nil {
			return input.FilePath
		}

	case "WebFetch":
		var input WebFetchInput
		if err := json.Unmarshal(toolInput, &input); err == nil {
			return input.URL
		}

	case "WebSearch":
		var input WebSearchInput
		if err := json.Unmarshal(toolInput, &input); err == nil {
			return input.Query
		}
	}

	return ""
}

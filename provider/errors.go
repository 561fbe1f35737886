package provider

import (
	"fmt"

	"github.com/Stefan824/TradingAgents/model"
)

// UnsupportedProviderError is returned when the configured provider name is
// not in the recognized set. Fatal at construction time.
type UnsupportedProviderError struct {
	Name string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported LLM provider %q (supported: %s)", e.Name, supportedList())
}

// ModelFileNotFoundError is returned when a local-weights provider cannot
// find its GGUF file. Carries the thinking role so the message names which
// of the two per-run configurations is broken.
type ModelFileNotFoundError struct {
	Role model.ThinkingRole
	Path string
}

func (e *ModelFileNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("no model path configured for %s-thinking role: set local_model_path_%s in config", e.Role, e.Role)
	}
	return fmt.Sprintf("GGUF model file for %s-thinking role not found: %s", e.Role, e.Path)
}

func supportedList() string {
	out := ""
	for i, t := range knownTypes {
		if i > 0 {
			out += ", "
		}
		out += string(t)
	}
	return out
}

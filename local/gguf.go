// Package local provides utilities for local LLM inference: GGUF weight
// validation, memory sizing, model recommendations, and Ollama health checks.
package local

import (
	"fmt"
	"os"
	"strings"
)

const gigabyte = 1 << 30

// ValidateGGUF checks that a GGUF model file exists and is readable.
// Returns a human-readable message either way.
func ValidateGGUF(path string) (bool, string) {
	if path == "" {
		return false, "no model path provided"
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Sprintf("file not found: %s", path)
	}
	if info.IsDir() {
		return false, fmt.Sprintf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gguf") {
		return false, fmt.Sprintf("file does not have .gguf extension: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Sprintf("file not readable: %s", path)
	}
	f.Close()

	sizeGB := float64(info.Size()) / gigabyte
	return true, fmt.Sprintf("valid GGUF file (%.1f GB)", sizeGB)
}

// EstimateMemoryGB estimates inference RAM usage from GGUF file size.
// Rule of thumb: runtime memory is roughly 1.15x the file size.
func EstimateMemoryGB(modelPath string) (float64, bool) {
	info, err := os.Stat(modelPath)
	if err != nil || info.IsDir() {
		return 0, false
	}
	gb := float64(info.Size()) * 1.15 / gigabyte
	// Round to one decimal, matching the reporting precision elsewhere.
	return float64(int(gb*10+0.5)) / 10, true
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Stefan824/TradingAgents/model"
)

// Run represents one completed pipeline execution for a (ticker, date) pair.
type Run struct {
	ID        string           `json:"id"`
	Ticker    string           `json:"ticker"`
	TradeDate string           `json:"trade_date"`
	Provider  string           `json:"provider"`
	DeepModel string           `json:"deep_model"`
	QuickMod  string           `json:"quick_model"`
	Signal    string           `json:"signal"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	State     model.AgentState `json:"state"`
}

// RunMetadata is a lightweight version of Run for listing.
type RunMetadata struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	TradeDate string    `json:"trade_date"`
	Provider  string    `json:"provider"`
	Signal    string    `json:"signal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RunStorage handles run persistence as one JSON file per run.
type RunStorage struct {
	runsDir string
}

// NewRunStorage creates a run storage rooted under the results directory.
func NewRunStorage(resultsDir string) (*RunStorage, error) {
	runsDir := filepath.Join(resultsDir, "runs")

	// 0700 - results may describe real positions
	if err := os.MkdirAll(runsDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create runs directory: %w", err)
	}

	return &RunStorage{
		runsDir: runsDir,
	}, nil
}

// Save writes a run to disk, assigning an ID on first save.
func (s *RunStorage) Save(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	run.UpdatedAt = time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = run.UpdatedAt
	}

	filename := fmt.Sprintf("%s.json", run.ID)
	path := filepath.Join(s.runsDir, filename)

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write run file: %w", err)
	}

	return nil
}

// Load reads a run from disk by ID.
func (s *RunStorage) Load(id string) (*Run, error) {
	filename := fmt.Sprintf("%s.json", id)
	path := filepath.Join(s.runsDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}

	return &run, nil
}

// List returns metadata for all runs, sorted by update time (newest first).
func (s *RunStorage) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.runsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	var runs []RunMetadata

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.runsDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue // Skip corrupted files
		}

		var run Run
		if err := json.Unmarshal(data, &run); err != nil {
			continue // Skip corrupted files
		}

		runs = append(runs, RunMetadata{
			ID:        run.ID,
			Ticker:    run.Ticker,
			TradeDate: run.TradeDate,
			Provider:  run.Provider,
			Signal:    run.Signal,
			CreatedAt: run.CreatedAt,
			UpdatedAt: run.UpdatedAt,
		})
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].UpdatedAt.After(runs[j].UpdatedAt)
	})

	return runs, nil
}

// Delete removes a run from disk.
func (s *RunStorage) Delete(id string) error {
	filename := fmt.Sprintf("%s.json", id)
	path := filepath.Join(s.runsDir, filename)

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete run file: %w", err)
	}

	return nil
}

// ExportToMarkdown renders a run's state as a Markdown document at the given
// path, creating parent directories as needed.
func (s *RunStorage) ExportToMarkdown(id string, exportPath string) error {
	run, err := s.Load(id)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	md := RenderStateMarkdown(&run.State)

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(exportPath, []byte(md), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// GenerateExportPath builds a default Markdown export path for a run under
// the results directory.
func (s *RunStorage) GenerateExportPath(run *Run) string {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("%s-%s-%s.md", SanitizeFilename(run.Ticker), run.TradeDate, timestamp)
	return filepath.Join(filepath.Dir(s.runsDir), "exports", filename)
}

// SanitizeFilename removes or replaces characters that are invalid in filenames.
func SanitizeFilename(name string) string {
	for _, ch := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " ", "\n", "\r"} {
		name = strings.ReplaceAll(name, ch, "-")
	}

	name = strings.Trim(name, "-.")

	if len(name) > 50 {
		name = name[:50]
	}

	if name == "" {
		name = "run"
	}

	return name
}

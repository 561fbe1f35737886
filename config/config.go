package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

type OllamaConfig struct {
	Host string `toml:"host"`
}

// UserConfig is the on-disk pipeline configuration. Keys mirror the
// runtime config consumed by the provider factory and the graph.
type UserConfig struct {
	LLMProvider         string `toml:"llm_provider"`
	DeepThinkLLM        string `toml:"deep_think_llm"`
	QuickThinkLLM       string `toml:"quick_think_llm"`
	BackendURL          string `toml:"backend_url,omitempty"`
	LocalModelPathDeep  string `toml:"local_model_path_deep,omitempty"`
	LocalModelPathQuick string `toml:"local_model_path_quick,omitempty"`
	LocalNumGPULayers   int    `toml:"local_n_gpu_layers"`
	LocalNumCtx         int    `toml:"local_n_ctx"`
	LocalNumBatch       int    `toml:"local_n_batch"`
	MaxDebateRounds     int    `toml:"max_debate_rounds"`
	MaxRiskRounds       int    `toml:"max_risk_discuss_rounds"`
	ResultsDir          string `toml:"results_dir,omitempty"`

	Ollama OllamaConfig `toml:"ollama"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DataDirectory string

	LLMProvider   string
	DeepThinkLLM  string
	QuickThinkLLM string
	BackendURL    string

	LocalModelPathDeep  string
	LocalModelPathQuick string
	LocalNumGPULayers   int
	LocalNumCtx         int
	LocalNumBatch       int

	MaxDebateRounds int
	MaxRiskRounds   int

	OllamaHost string
	ResultsDir string

	CredentialStore *CredentialStore
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// Results returns the resolved results directory, defaulting to
// <data_dir>/results when unset.
func (c *Config) Results() string {
	if c.ResultsDir != "" {
		return ExpandPath(c.ResultsDir)
	}
	return filepath.Join(c.DataDir(), "results")
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TRADINGAGENTS_PROVIDER"); v != "" {
		c.LLMProvider = v
	}
	if v := os.Getenv("TRADINGAGENTS_DEEP_LLM"); v != "" {
		c.DeepThinkLLM = v
	}
	if v := os.Getenv("TRADINGAGENTS_QUICK_LLM"); v != "" {
		c.QuickThinkLLM = v
	}
	if v := os.Getenv("TRADINGAGENTS_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("TRADINGAGENTS_DATA_DIR"); v != "" {
		c.DataDirectory = v
	}
	if v := os.Getenv("TRADINGAGENTS_OLLAMA_HOST"); v != "" {
		c.OllamaHost = v
	}
	if v := os.Getenv("TRADINGAGENTS_DEBATE_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxDebateRounds = n
		}
	}
}

func CheckDebug() bool {
	debug := os.Getenv("TRADINGAGENTS_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600: debug output can include prompts and report text
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (TRADINGAGENTS_DEBUG=%s) ===", os.Getenv("TRADINGAGENTS_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

func Load() (*Config, error) {
	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	cfg := &Config{DataDirectory: systemCfg.DataDirectory}

	dataDir := cfg.DataDir()
	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	cfg.LLMProvider = userCfg.LLMProvider
	cfg.DeepThinkLLM = userCfg.DeepThinkLLM
	cfg.QuickThinkLLM = userCfg.QuickThinkLLM
	cfg.BackendURL = userCfg.BackendURL
	cfg.LocalModelPathDeep = userCfg.LocalModelPathDeep
	cfg.LocalModelPathQuick = userCfg.LocalModelPathQuick
	cfg.LocalNumGPULayers = userCfg.LocalNumGPULayers
	cfg.LocalNumCtx = userCfg.LocalNumCtx
	cfg.LocalNumBatch = userCfg.LocalNumBatch
	cfg.MaxDebateRounds = userCfg.MaxDebateRounds
	cfg.MaxRiskRounds = userCfg.MaxRiskRounds
	cfg.ResultsDir = userCfg.ResultsDir
	cfg.OllamaHost = userCfg.Ollama.Host

	cfg.applyEnvOverrides()

	dataDir = cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	store := NewCredentialStore()
	if err := store.Load(dataDir); err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	cfg.CredentialStore = store

	return cfg, nil
}

package config

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/tradingagents",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		LLMProvider:       "openai",
		DeepThinkLLM:      "o4-mini",
		QuickThinkLLM:     "gpt-4o-mini",
		LocalNumGPULayers: -1,
		LocalNumCtx:       4096,
		LocalNumBatch:     512,
		MaxDebateRounds:   1,
		MaxRiskRounds:     1,
		Ollama: OllamaConfig{
			Host: "http://localhost:11434",
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# TradingAgents System Configuration
# Location: ~/.config/tradingagents/settings.toml
# This file uses TOML format: https://toml.io

# Directory where results, decision logs, and user config are stored
data_directory = "~/.local/share/tradingagents"
`
}

func GenerateUserConfigTemplate() string {
	return `# TradingAgents User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

# LLM backend: openai, anthropic, google, xai, ollama, openrouter, llamacpp, mock
llm_provider = "openai"

# Model used by the judge/manager agents (research manager, risk judge)
deep_think_llm = "o4-mini"

# Model used by analysts, researchers, trader, and signal extraction
quick_think_llm = "gpt-4o-mini"

# Optional provider base URL override (llamacpp default: http://localhost:8080/v1)
backend_url = ""

# GGUF weights for the llamacpp provider, one file per thinking role
local_model_path_deep = ""
local_model_path_quick = ""

# llama.cpp tuning: layers offloaded to GPU (-1 = all), context window, batch size
local_n_gpu_layers = -1
local_n_ctx = 4096
local_n_batch = 512

# Rounds per side in the bull/bear debate and the risk discussion
max_debate_rounds = 1
max_risk_discuss_rounds = 1

# Where full state logs and markdown reports are written
# (defaults to <data_directory>/results)
results_dir = ""

[ollama]
# Ollama server URL for the ollama provider
host = "http://localhost:11434"
`
}

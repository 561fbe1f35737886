package local

// RecommendedModel describes one curated local model option.
type RecommendedModel struct {
	Name        string
	Ollama      string // Ollama tag, e.g. "qwen3:8b"
	GGUF        string // GGUF file name for llama.cpp
	SizeGB      float64
	Description string
}

// Recommendations holds model options per thinking tier.
type Recommendations struct {
	QuickThink []RecommendedModel
	DeepThink  []RecommendedModel
}

// recommended32GB is the curated model table for a 32 GB host.
var recommended32GB = Recommendations{
	QuickThink: []RecommendedModel{
		{
			Name:        "Qwen3-8B-Q4_K_M",
			Ollama:      "qwen3:8b",
			GGUF:        "Qwen3-8B-Q4_K_M.gguf",
			SizeGB:      5,
			Description: "Fast 8B model, strong tool-calling, ideal for analyst agents",
		},
		{
			Name:        "Qwen3-4B-Q4_K_M",
			Ollama:      "qwen3:4b",
			GGUF:        "Qwen3-4B-Q4_K_M.gguf",
			SizeGB:      3,
			Description: "Ultra-light 4B model for budget setups",
		},
	},
	DeepThink: []RecommendedModel{
		{
			Name:        "Qwen3-30B-A3B-Q4_K_M",
			Ollama:      "qwen3:30b-a3b",
			GGUF:        "Qwen3-30B-A3B-Q4_K_M.gguf",
			SizeGB:      18,
			Description: "MoE 30B model (only 3B active), excellent reasoning at low memory cost",
		},
		{
			Name:        "Qwen3-14B-Q4_K_M",
			Ollama:      "qwen3:14b",
			GGUF:        "Qwen3-14B-Q4_K_M.gguf",
			SizeGB:      9,
			Description: "Dense 14B model, strong reasoning for mid-range setups",
		},
	},
}

// Recommend filters the curated table to models that fit in the given RAM,
// leaving 20% headroom for context and the rest of the pipeline.
func Recommend(availableRAMGB float64) Recommendations {
	budget := availableRAMGB * 0.8

	filter := func(in []RecommendedModel) []RecommendedModel {
		var out []RecommendedModel
		for _, m := range in {
			if m.SizeGB <= budget {
				out = append(out, m)
			}
		}
		return out
	}

	return Recommendations{
		QuickThink: filter(recommended32GB.QuickThink),
		DeepThink:  filter(recommended32GB.DeepThink),
	}
}

package local

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateGGUF(t *testing.T) {
	dir := t.TempDir()

	ggufPath := filepath.Join(dir, "model.gguf")
	if err := os.WriteFile(ggufPath, []byte("GGUF"), 0600); err != nil {
		t.Fatal(err)
	}
	wrongExt := filepath.Join(dir, "model.bin")
	if err := os.WriteFile(wrongExt, []byte("data"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		path      string
		wantOK    bool
		wantInMsg string
	}{
		{"valid file", ggufPath, true, "valid GGUF"},
		{"empty path", "", false, "no model path"},
		{"missing file", filepath.Join(dir, "missing.gguf"), false, "not found"},
		{"directory", dir, false, "directory"},
		{"wrong extension", wrongExt, false, ".gguf extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidateGGUF(tt.path)
			if ok != tt.wantOK {
				t.Errorf("ValidateGGUF(%q) ok = %v, want %v (%s)", tt.path, ok, tt.wantOK, msg)
			}
			if !strings.Contains(msg, tt.wantInMsg) {
				t.Errorf("message %q should contain %q", msg, tt.wantInMsg)
			}
		})
	}
}

func TestEstimateMemoryGB(t *testing.T) {
	dir := t.TempDir()

	// 2 GiB sparse file keeps the test fast
	path := filepath.Join(dir, "model.gguf")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Truncate(2 * gigabyte); err != nil {
		t.Fatal(err)
	}
	f.Close()

	gb, ok := EstimateMemoryGB(path)
	if !ok {
		t.Fatal("expected size estimate")
	}
	if gb != 2.3 {
		t.Errorf("EstimateMemoryGB = %.1f, want 2.3", gb)
	}

	if _, ok := EstimateMemoryGB(filepath.Join(dir, "missing.gguf")); ok {
		t.Error("missing file should not produce an estimate")
	}
	if _, ok := EstimateMemoryGB(dir); ok {
		t.Error("directory should not produce an estimate")
	}
}

func TestRecommend(t *testing.T) {
	t.Run("32 GB fits everything", func(t *testing.T) {
		recs := Recommend(32)
		if len(recs.QuickThink) != 2 {
			t.Errorf("quick recommendations = %d, want 2", len(recs.QuickThink))
		}
		if len(recs.DeepThink) != 2 {
			t.Errorf("deep recommendations = %d, want 2", len(recs.DeepThink))
		}
	})

	t.Run("16 GB excludes the large MoE model", func(t *testing.T) {
		recs := Recommend(16)
		for _, m := range recs.DeepThink {
			if m.SizeGB > 16*0.8 {
				t.Errorf("%s (%.0f GB) exceeds the memory budget", m.Name, m.SizeGB)
			}
		}
	})

	t.Run("tiny budget yields nothing", func(t *testing.T) {
		recs := Recommend(2)
		if len(recs.QuickThink) != 0 || len(recs.DeepThink) != 0 {
			t.Errorf("expected no recommendations for 2 GB, got %+v", recs)
		}
	})
}

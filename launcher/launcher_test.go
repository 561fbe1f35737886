package launcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveInstallDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("OLLAMA_INSTALL_DIR", "/opt/ollama")
		if got := ResolveInstallDir(); got != "/opt/ollama" {
			t.Errorf("ResolveInstallDir() = %q, want /opt/ollama", got)
		}
	})

	t.Run("tilde expansion", func(t *testing.T) {
		t.Setenv("OLLAMA_INSTALL_DIR", "~/my-ollama")
		got := ResolveInstallDir()
		if strings.HasPrefix(got, "~") {
			t.Errorf("ResolveInstallDir() = %q, tilde not expanded", got)
		}
		if !strings.HasSuffix(got, "my-ollama") {
			t.Errorf("ResolveInstallDir() = %q, want suffix my-ollama", got)
		}
	})

	t.Run("default under home", func(t *testing.T) {
		t.Setenv("OLLAMA_INSTALL_DIR", "")
		got := ResolveInstallDir()
		if !strings.HasSuffix(got, "ollama-install") {
			t.Errorf("ResolveInstallDir() = %q, want suffix ollama-install", got)
		}
	})
}

func TestCudaVersion(t *testing.T) {
	t.Setenv("OLLAMA_CUDA_VERSION", "")
	if got := CudaVersion(); got != "cuda_v12" {
		t.Errorf("default CudaVersion() = %q, want cuda_v12", got)
	}

	t.Setenv("OLLAMA_CUDA_VERSION", "cuda_v13")
	if got := CudaVersion(); got != "cuda_v13" {
		t.Errorf("CudaVersion() = %q, want cuda_v13", got)
	}
}

func TestValidateInstall(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		err := ValidateInstall(filepath.Join(t.TempDir(), "nonexistent"))
		if err == nil {
			t.Fatal("expected error for missing install")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("error %q should mention not found", err.Error())
		}
	})

	t.Run("missing binary in existing directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := ValidateInstall(dir); err == nil {
			t.Fatal("expected error for missing binary")
		}
	})

	t.Run("valid install", func(t *testing.T) {
		dir := t.TempDir()
		binDir := filepath.Join(dir, "bin")
		if err := os.MkdirAll(binDir, 0700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(binDir, "ollama"), []byte("#!/bin/sh\n"), 0700); err != nil {
			t.Fatal(err)
		}

		if err := ValidateInstall(dir); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCheckAccelerator(t *testing.T) {
	dir := t.TempDir()

	if _, ok := CheckAccelerator(dir, "cuda_v12"); ok {
		t.Error("expected missing accelerator to report false")
	}

	cudaDir := filepath.Join(dir, "lib", "ollama", "cuda_v12")
	if err := os.MkdirAll(cudaDir, 0700); err != nil {
		t.Fatal(err)
	}

	got, ok := CheckAccelerator(dir, "cuda_v12")
	if !ok {
		t.Error("expected accelerator dir to be found")
	}
	if got != cudaDir {
		t.Errorf("accelerator dir = %q, want %q", got, cudaDir)
	}
}

func TestBuildLibraryPath(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{
			name:     "no existing path",
			existing: "",
			want:     "/opt/ollama/lib/ollama:/opt/ollama/lib/ollama/cuda_v12",
		},
		{
			name:     "existing path appended",
			existing: "/usr/local/lib",
			want:     "/opt/ollama/lib/ollama:/opt/ollama/lib/ollama/cuda_v12:/usr/local/lib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildLibraryPath("/opt/ollama", "cuda_v12", tt.existing)
			if got != tt.want {
				t.Errorf("BuildLibraryPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildEnv(t *testing.T) {
	t.Setenv("LD_LIBRARY_PATH", "/usr/lib/custom")

	env := BuildEnv("/opt/ollama", "cuda_v12")

	var libPath string
	count := 0
	for _, kv := range env {
		if strings.HasPrefix(kv, "LD_LIBRARY_PATH=") {
			libPath = strings.TrimPrefix(kv, "LD_LIBRARY_PATH=")
			count++
		}
		// The server picks its own execution backend
		if strings.HasPrefix(kv, "OLLAMA_LLM_LIBRARY=") {
			t.Errorf("BuildEnv must not set OLLAMA_LLM_LIBRARY, got %q", kv)
		}
	}

	if count != 1 {
		t.Fatalf("expected exactly one LD_LIBRARY_PATH entry, got %d", count)
	}
	want := "/opt/ollama/lib/ollama:/opt/ollama/lib/ollama/cuda_v12:/usr/lib/custom"
	if libPath != want {
		t.Errorf("LD_LIBRARY_PATH = %q, want %q", libPath, want)
	}
}

func TestLaunchMissingInstall(t *testing.T) {
	t.Setenv("OLLAMA_INSTALL_DIR", filepath.Join(t.TempDir(), "nonexistent"))

	if err := Launch(nil); err == nil {
		t.Fatal("expected error for missing install")
	}
}

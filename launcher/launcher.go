// Package launcher locates a standalone Ollama installation and replaces the
// current process with its server binary, with the shared-library search
// path pointing at the install's bundled libraries.
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Stefan824/TradingAgents/config"
)

const (
	installDirEnv  = "OLLAMA_INSTALL_DIR"
	cudaVersionEnv = "OLLAMA_CUDA_VERSION"

	defaultInstallDir  = "ollama-install"
	defaultCudaVersion = "cuda_v12"
)

// RemediationText is printed when the server binary is missing. It tells the
// operator how to produce a working install directory.
const RemediationText = `Ollama binary not found. To install a standalone Ollama:

  1. Download the release tarball:
       curl -LO https://ollama.com/download/ollama-linux-amd64.tgz
  2. Extract it into the install directory:
       mkdir -p ~/ollama-install && tar -xzf ollama-linux-amd64.tgz -C ~/ollama-install
  3. Re-run this command.

Set OLLAMA_INSTALL_DIR to use a different location.`

// ResolveInstallDir returns the Ollama install root: OLLAMA_INSTALL_DIR if
// set, otherwise ~/ollama-install.
func ResolveInstallDir() string {
	if dir := os.Getenv(installDirEnv); dir != "" {
		return config.ExpandPath(dir)
	}
	return filepath.Join(config.GetHomeDir(), defaultInstallDir)
}

// CudaVersion returns the accelerator library subdirectory name:
// OLLAMA_CUDA_VERSION if set, otherwise cuda_v12.
func CudaVersion() string {
	if v := os.Getenv(cudaVersionEnv); v != "" {
		return v
	}
	return defaultCudaVersion
}

// BinaryPath returns the server binary path under an install root.
func BinaryPath(installDir string) string {
	return filepath.Join(installDir, "bin", "ollama")
}

// LibDir returns the bundled library directory under an install root.
func LibDir(installDir string) string {
	return filepath.Join(installDir, "lib", "ollama")
}

// ValidateInstall checks that the server binary exists under installDir.
func ValidateInstall(installDir string) error {
	bin := BinaryPath(installDir)
	info, err := os.Stat(bin)
	if err != nil {
		return fmt.Errorf("ollama binary not found at %s", bin)
	}
	if info.IsDir() {
		return fmt.Errorf("ollama binary path %s is a directory", bin)
	}
	return nil
}

// CheckAccelerator reports whether the accelerator library subdirectory
// exists. A missing directory is not an error: the server falls back to CPU
// inference.
func CheckAccelerator(installDir, cudaVersion string) (string, bool) {
	dir := filepath.Join(LibDir(installDir), cudaVersion)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return dir, false
	}
	return dir, true
}

// BuildLibraryPath constructs the LD_LIBRARY_PATH value for the server
// process: the bundled library dir, the accelerator dir, then any existing
// value. The accelerator dir is included even when missing; the dynamic
// loader skips nonexistent entries.
func BuildLibraryPath(installDir, cudaVersion, existing string) string {
	parts := []string{
		LibDir(installDir),
		filepath.Join(LibDir(installDir), cudaVersion),
	}
	if existing != "" {
		parts = append(parts, existing)
	}
	return strings.Join(parts, ":")
}

// BuildEnv returns the environment for the server process: the current
// environment with LD_LIBRARY_PATH replaced. OLLAMA_LLM_LIBRARY is never
// set; the server picks its own execution backend.
func BuildEnv(installDir, cudaVersion string) []string {
	libPath := BuildLibraryPath(installDir, cudaVersion, os.Getenv("LD_LIBRARY_PATH"))

	env := []string{}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "LD_LIBRARY_PATH=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "LD_LIBRARY_PATH="+libPath)
}

// Launch validates the install and execs the server with "serve" plus any
// extra arguments. On success it does not return: the current process image
// is replaced by the server.
func Launch(extraArgs []string) error {
	installDir := ResolveInstallDir()

	if err := ValidateInstall(installDir); err != nil {
		return err
	}

	cudaVersion := CudaVersion()
	if dir, ok := CheckAccelerator(installDir, cudaVersion); !ok {
		fmt.Fprintf(os.Stderr, "Warning: accelerator libraries not found at %s, falling back to CPU inference\n", dir)
	}

	bin := BinaryPath(installDir)
	argv := append([]string{bin, "serve"}, extraArgs...)
	env := BuildEnv(installDir, cudaVersion)

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Launcher] exec %s (install=%s, cuda=%s)", strings.Join(argv, " "), installDir, cudaVersion)
	}

	return syscall.Exec(bin, argv, env)
}

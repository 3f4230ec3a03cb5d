// Package integration provides CLI and engine integration tests for spigot.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// spigotBin is the path to the built spigot binary.
	spigotBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetSpigotBin sets the path to the spigot binary (called from TestMain).
func SetSpigotBin(path string) {
	spigotBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build spigot: %v", buildErr)
	}
	if spigotBin == "" {
		t.Fatal("spigot binary not built (spigotBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a spigot command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunSpigot executes the spigot CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunSpigot(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(spigotBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run spigot: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunSpigot executes the spigot CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunSpigot(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunSpigot(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("spigot %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// PlanJSON mirrors the plan fields the CLI prints in --json mode.
type PlanJSON struct {
	ID                 uint64 `json:"ID"`
	Owner              string `json:"Owner"`
	FrequencyBlocks    uint64 `json:"FrequencyBlocks"`
	AmountPerPurchase  uint64 `json:"AmountPerPurchase"`
	TotalDeposited     uint64 `json:"TotalDeposited"`
	TotalSpent         uint64 `json:"TotalSpent"`
	TargetAcquired     uint64 `json:"TargetAcquired"`
	PurchasesCompleted uint64 `json:"PurchasesCompleted"`
	NextPurchaseBlock  uint64 `json:"NextPurchaseBlock"`
	Status             string `json:"Status"`
	CreatedAt          uint64 `json:"CreatedAt"`
}

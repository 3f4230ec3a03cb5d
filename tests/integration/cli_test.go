// CLI integration tests for spigot.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the spigot binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "spigot-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "spigot")
	SetSpigotBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/spigot")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

// TestCLI_Init verifies database initialization.
func TestCLI_Init(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunSpigot("init")

	if result.Stdout == "" {
		t.Error("expected init output message")
	}
	if _, err := os.Stat(env.DataDir); os.IsNotExist(err) {
		t.Error("data directory not created")
	}
	if _, err := os.Stat(filepath.Join(env.DataDir, "dripstand.db")); os.IsNotExist(err) {
		t.Error("dripstand.db not created")
	}
}

// TestCLI_PlanCreateAndGet verifies plan creation and retrieval through the CLI.
func TestCLI_PlanCreateAndGet(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunSpigot("init")

	env.MustRunSpigot("advance", "2")

	result := env.MustRunSpigot("plan", "create",
		"--owner", "wallet1", "--frequency", "100", "--amount", "50000000", "--delay", "10",
		"--json")
	plan := ParseJSON[PlanJSON](t, result.Stdout)
	if plan.ID != 1 {
		t.Errorf("expected plan id 1, got %d", plan.ID)
	}
	if plan.Owner != "wallet1" {
		t.Errorf("expected owner wallet1, got %q", plan.Owner)
	}
	if plan.NextPurchaseBlock != 12 {
		t.Errorf("expected next purchase at 12, got %d", plan.NextPurchaseBlock)
	}
	if plan.Status != "active" {
		t.Errorf("expected active status, got %q", plan.Status)
	}

	// The plan reads back the same through get.
	getResult := env.MustRunSpigot("plan", "get", "1", "--json")
	got := ParseJSON[PlanJSON](t, getResult.Stdout)
	if got.ID != plan.ID || got.Owner != plan.Owner || got.NextPurchaseBlock != plan.NextPurchaseBlock {
		t.Errorf("plan get mismatch: %+v vs %+v", got, plan)
	}
}

// TestCLI_PlanCreateRejectsZeroFrequency verifies parameter validation surfaces
// as a non-zero exit.
func TestCLI_PlanCreateRejectsZeroFrequency(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunSpigot("init")

	result := env.RunSpigot("plan", "create",
		"--owner", "wallet1", "--frequency", "0", "--amount", "1000")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit for zero frequency")
	}
}

// TestCLI_FullWorkflow drives a complete cycle: mint, create, deposit,
// advance, execute, and verify balances.
func TestCLI_FullWorkflow(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunSpigot("init")

	env.MustRunSpigot("mint", "wallet1", "200000000")
	env.MustRunSpigot("advance", "2")
	env.MustRunSpigot("plan", "create",
		"--owner", "wallet1", "--frequency", "100", "--amount", "50000000", "--delay", "10")
	env.MustRunSpigot("deposit", "1", "100000000", "--from", "wallet1")

	// Too early at height 2.
	early := env.RunSpigot("execute", "1")
	if early.ExitCode == 0 {
		t.Error("expected non-zero exit for early execute")
	}

	env.MustRunSpigot("advance", "13")
	result := env.MustRunSpigot("execute", "1")
	if !strings.Contains(result.Stdout, "purchase 1") {
		t.Errorf("expected purchase 1 in output, got %q", result.Stdout)
	}

	// Owner holds the target asset at the fixed rate.
	balance := env.MustRunSpigot("balance", "wallet1", "--asset", "target")
	if strings.TrimSpace(balance.Stdout) != "5000000000" {
		t.Errorf("expected target balance 5000000000, got %q", balance.Stdout)
	}

	// The plan accumulated the purchase.
	getResult := env.MustRunSpigot("plan", "get", "1", "--json")
	plan := ParseJSON[PlanJSON](t, getResult.Stdout)
	if plan.PurchasesCompleted != 1 || plan.TotalSpent != 50000000 || plan.NextPurchaseBlock != 115 {
		t.Errorf("plan state mismatch after execute: %+v", plan)
	}
}

// TestCLI_HeightPersistsAcrossInvocations verifies the clock survives
// separate processes.
func TestCLI_HeightPersistsAcrossInvocations(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunSpigot("init")

	env.MustRunSpigot("advance", "5")
	env.MustRunSpigot("advance", "3")

	result := env.MustRunSpigot("height")
	if strings.TrimSpace(result.Stdout) != "8" {
		t.Errorf("expected height 8, got %q", result.Stdout)
	}
}

// TestCLI_Tally verifies the demonstration counter.
func TestCLI_Tally(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunSpigot("init")

	result := env.MustRunSpigot("tally")
	if strings.TrimSpace(result.Stdout) != "0" {
		t.Errorf("expected tally 0, got %q", result.Stdout)
	}

	env.MustRunSpigot("tally", "up")
	env.MustRunSpigot("tally", "up")

	result = env.MustRunSpigot("tally")
	if strings.TrimSpace(result.Stdout) != "2" {
		t.Errorf("expected tally 2, got %q", result.Stdout)
	}
}

// TestCLI_Export verifies snapshot export writes the JSONL files.
func TestCLI_Export(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunSpigot("init")
	env.MustRunSpigot("plan", "create",
		"--owner", "wallet1", "--frequency", "10", "--amount", "1000")

	outDir := filepath.Join(env.TempDir, "snapshot")
	env.MustRunSpigot("export", "--out", outDir)

	for _, name := range []string{"plans.jsonl", "purchases.jsonl"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing export file %s: %v", name, err)
		}
	}
}

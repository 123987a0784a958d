package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/randbits/internal/platform/config"
)

// TestExitf_ExitsWithCode1 verifies that Exitf writes to stderr and exits
// with code 1. It uses the subprocess test pattern because os.Exit cannot be
// intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", string(out))
	}
}

func TestExitCodef_UsesGivenCode(t *testing.T) {
	if os.Getenv("TEST_EXITCODEF_SUBPROCESS") == "1" {
		config.ExitCodef(2, "usage: %s", "no arguments accepted")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitCodef_UsesGivenCode$")
	cmd.Env = append(os.Environ(), "TEST_EXITCODEF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "usage: no arguments accepted") {
		t.Fatalf("expected stderr to contain usage message, got %q", string(out))
	}
}

func TestExitCodef_RaisesZeroToOne(t *testing.T) {
	if os.Getenv("TEST_EXITCODEF_ZERO_SUBPROCESS") == "1" {
		config.ExitCodef(0, "fatal")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitCodef_RaisesZeroToOne$")
	cmd.Env = append(os.Environ(), "TEST_EXITCODEF_ZERO_SUBPROCESS=1")

	_, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
}

package arith

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"testing"
)

// finishEnv carries the value the child process passes to FinishPositively.
const finishEnv = "ARITH_FINISH_VALUE"

func TestExitStatus(t *testing.T) {
	tests := []struct {
		v    int
		want int
	}{
		{3, ExitSuccess},
		{0, ExitSuccess},
		{-1, ExitFailure},
		{-3, ExitFailure},
	}

	for _, tt := range tests {
		if got := ExitStatus(tt.v); got != tt.want {
			t.Errorf("ExitStatus(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

// TestFinishPositively re-executes the test binary so the child, not the
// test runner, is the process that exits.
func TestFinishPositively(t *testing.T) {
	if raw := os.Getenv(finishEnv); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			os.Exit(2)
		}
		FinishPositively(v)
		// Unreachable when FinishPositively behaves.
		os.Exit(3)
	}

	tests := []struct {
		name string
		v    int
		want int
	}{
		{"Positive exits cleanly", 3, 0},
		{"Zero exits cleanly", 0, 0},
		{"Negative dies", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestFinishPositively$")
			cmd.Env = append(os.Environ(), finishEnv+"="+strconv.Itoa(tt.v))

			err := cmd.Run()

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running child: %v", err)
			}

			if code != tt.want {
				t.Errorf("FinishPositively(%d) exit status = %d, want %d", tt.v, code, tt.want)
			}
			t.Logf("✓ FinishPositively(%d) exited with %d", tt.v, code)
		})
	}
}

//go:build (linux || darwin) && amd64

package runtime

import (
	"testing"

	"github.com/arith-jit/jitcalc/compiler"
	"golang.org/x/sys/unix"
)

func compileAndRun(t *testing.T, expr string) int64 {
	t.Helper()

	code, err := compiler.Compile(expr)
	if err != nil {
		t.Fatalf("Compile(%q): %v", expr, err)
	}

	cc, err := Install(code)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	defer cc.Close()

	return cc.Run()
}

func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		expr string
		want int64
	}{
		{"42", 42},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 3 - 2", 5},
		{"20 / 4 / 2", 2},
		{"(1 + 2) * (3 + 4) * (5 + 6)", 231},
		{"3 - 10", -7},
		{"7 / 2", 3},
	}

	for _, tt := range tests {
		if got := compileAndRun(t, tt.expr); got != tt.want {
			t.Errorf("eval(%q) = %d, want %d", tt.expr, got, tt.want)
		}
	}
}

func TestRunIsRepeatable(t *testing.T) {
	code, err := compiler.Compile("6 * 7")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	cc, err := Install(code)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	defer cc.Close()

	for i := 0; i < 5; i++ {
		if got := cc.Run(); got != 42 {
			t.Fatalf("invocation %d: got %d, want 42", i, got)
		}
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	code, err := compiler.Compile("1")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	cc, err := Install(code)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	if err := cc.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := cc.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestInstallRoundsUpToPageSize(t *testing.T) {
	code, err := compiler.Compile("1 + 2")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	cc, err := Install(code)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	defer cc.Close()

	if len(cc.mem)%unix.Getpagesize() != 0 {
		t.Errorf("expected mapping length to be a multiple of the page size, got %d", len(cc.mem))
	}
	if len(cc.mem) < len(code) {
		t.Errorf("mapping (%d bytes) is smaller than the code it holds (%d bytes)", len(cc.mem), len(code))
	}
}

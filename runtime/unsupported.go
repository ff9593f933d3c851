//go:build !((linux || darwin) && amd64)

package runtime

import (
	"fmt"
	goruntime "runtime"
)

// CompiledCode is an unusable placeholder on platforms this package
// does not support. The compile+execute path is x86-64 specific; on
// other architectures the runtime refuses installation rather than
// emit code it cannot safely run.
type CompiledCode struct{}

// Install always fails outside linux/amd64 and darwin/amd64.
func Install([]byte) (*CompiledCode, error) {
	return nil, fmt.Errorf("runtime: executable JIT is not supported on %s/%s", goruntime.GOOS, goruntime.GOARCH)
}

// Run panics: a CompiledCode can never be constructed on this platform.
func (c *CompiledCode) Run() int64 {
	panic("runtime: unreachable on this platform")
}

// Close is a no-op: a CompiledCode can never be constructed on this
// platform.
func (c *CompiledCode) Close() error {
	return nil
}

//go:build (linux || darwin) && amd64

// Package runtime installs a byte buffer of x86-64 machine code into
// anonymous, page-aligned memory and executes it.
//
// Installation is a one-way W^X state machine: the page is writable
// while the code is being copied in, then the protection is flipped to
// read+execute and never changed back. The transition's mprotect
// syscall acts as the barrier that guarantees the CPU observes the
// written bytes as instructions once invoked.
package runtime

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CompiledCode owns a page-aligned, read-execute mapping holding a
// compiled function body. The mapping is released exactly once, on
// Close.
type CompiledCode struct {
	mem      []byte
	once     sync.Once
	closeErr error
}

// Install maps a rounded-up-to-page-size region, copies code into it,
// and flips it from read+write to read+execute. The mapping is
// released and an error returned if either the mapping or the
// protection change fails - the handle never exists in a leaked state.
func Install(code []byte) (*CompiledCode, error) {
	pageSize := unix.Getpagesize()
	size := roundUpToPage(len(code), pageSize)

	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("runtime: mmap %d bytes: %w", size, err)
	}

	copy(mem, code)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		_ = unix.Munmap(mem)
		return nil, fmt.Errorf("runtime: mprotect to read+execute: %w", err)
	}

	return &CompiledCode{mem: mem}, nil
}

// Run invokes the compiled code and returns its result.
//
// This is the single genuinely unsafe primitive in the system: the
// caller asserts that mem holds a correct, complete function body for
// the platform's no-argument int64-returning calling convention, which
// is true only when mem came from compiler.Generate (or Compile) output.
// Passing user-supplied bytes here is not a supported use of this type.
//
// Run may be called any number of times, including concurrently from
// multiple goroutines: the mapping is read-execute only after Install
// returns, and the emitted code has no mutable state of its own.
func (c *CompiledCode) Run() int64 {
	// A Go func value is a pointer to a funcval whose first word is
	// the entry PC. There is no closure here, so we build a one-word
	// trampoline ourselves: a struct holding the code's address, then
	// a func value that points at that trampoline. Calling fn
	// dereferences the trampoline once and jumps to the code.
	entry := struct{ p *byte }{p: &c.mem[0]}
	trampoline := unsafe.Pointer(&entry)
	fn := *(*func() int64)(unsafe.Pointer(&trampoline))
	return fn()
}

// Close unmaps the compiled region. It is safe to call more than once
// or from multiple goroutines; only the first call does any work.
func (c *CompiledCode) Close() error {
	c.once.Do(func() {
		c.closeErr = unix.Munmap(c.mem)
	})
	return c.closeErr
}

func roundUpToPage(n, pageSize int) int {
	if n == 0 {
		return pageSize
	}
	return (n + pageSize - 1) / pageSize * pageSize
}

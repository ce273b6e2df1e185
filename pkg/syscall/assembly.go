//go:build linux && amd64

// Package syscall holds the raw SYSCALL trampoline for linux/amd64.
//
// The register contract is fixed by the kernel's entry_64.S: syscall
// number in RAX, arguments in RDI, RSI, RDX, result back in RAX as a
// signed word. Negative results are negated errno values and are
// returned unmodified; nothing in this package interprets them.
package syscall

import (
	_ "unsafe"
)

//go:noescape
func rawSyscall3(trap, a1, a2, a3 uintptr) int64

//go:linkname entersyscall runtime.entersyscall
func entersyscall()

//go:linkname exitsyscall runtime.exitsyscall
func exitsyscall()

// RawSyscall3 executes the trap with no scheduler coordination. Only
// safe for calls that cannot block (getpid, clock reads, writes to
// always-ready descriptors); a blocking trap here stalls the whole M.
func RawSyscall3(trap, a1, a2, a3 uintptr) int64 {
	return rawSyscall3(trap, a1, a2, a3)
}

// Syscall3 executes the trap with entersyscall/exitsyscall bracketing
// so a blocking call releases the P. This is the variant the typed
// bindings use.
func Syscall3(trap, a1, a2, a3 uintptr) int64 {
	entersyscall()
	r := rawSyscall3(trap, a1, a2, a3)
	exitsyscall()
	return r
}

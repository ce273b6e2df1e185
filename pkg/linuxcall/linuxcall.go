//go:build linux && amd64

// Package linuxcall gives the raw trampoline semantic signatures:
// read, write, open, close and writev as they appear in the amd64
// syscall table. Bindings validate nothing beyond what the trampoline
// needs; buffer bounds and path termination are the caller's contract,
// exactly as they are at the kernel boundary.
package linuxcall

import (
	"runtime"
	"unsafe"

	"github.com/carved4/go-linuxcall/pkg/errors"
	"github.com/carved4/go-linuxcall/pkg/syscall"
	"github.com/carved4/go-linuxcall/pkg/utils"
)

// Syscall numbers from arch/x86/entry/syscalls/syscall_64.tbl. Valid
// for linux/amd64 only.
const (
	SYS_READ   = 0
	SYS_WRITE  = 1
	SYS_OPEN   = 2
	SYS_CLOSE  = 3
	SYS_WRITEV = 20
)

// Open flags from uapi/asm-generic/fcntl.h. The kernel defines these
// in octal; keeping that base makes diffs against the header trivial.
const (
	O_RDONLY = 0o0
	O_WRONLY = 0o1
	O_RDWR   = 0o2
	O_CREAT  = 0o100
	O_TRUNC  = 0o1000
	O_APPEND = 0o2000
)

// Write writes len(p) bytes from p to fd. Returns bytes written, or
// the negative raw result and a KernelError.
func Write(fd uintptr, p []byte) (int64, error) {
	res := syscall.Syscall3(SYS_WRITE, fd, bufPtr(p), uintptr(len(p)))
	runtime.KeepAlive(p)
	return errors.FromResult(res)
}

// Read reads up to len(p) bytes from fd into p. A 0 result with a nil
// error is end of stream.
func Read(fd uintptr, p []byte) (int64, error) {
	res := syscall.Syscall3(SYS_READ, fd, bufPtr(p), uintptr(len(p)))
	runtime.KeepAlive(p)
	return errors.FromResult(res)
}

// Open opens or creates the file at path with the given flag bitmask
// and creation mode. The terminator the kernel reads until is appended
// here; the result is a descriptor the caller owns until Close.
func Open(path string, flags uintptr, mode uint32) (int64, error) {
	p := utils.NewCString(path)
	res := syscall.Syscall3(SYS_OPEN, uintptr(unsafe.Pointer(p.Ptr())), flags, uintptr(mode))
	runtime.KeepAlive(p)
	return errors.FromResult(res)
}

// Close releases fd.
func Close(fd uintptr) error {
	_, err := errors.FromResult(syscall.Syscall3(SYS_CLOSE, fd, 0, 0))
	return err
}

func bufPtr(p []byte) uintptr {
	if len(p) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&p[0]))
}

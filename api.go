//go:build linux && amd64

// Raw Linux system calls for amd64 without libc or the runtime's
// syscall package in the call path. The trampoline lives in
// pkg/syscall, the typed bindings in pkg/linuxcall; this file is the
// public surface.
package linuxcall

import (
	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/linuxcall"
	"github.com/carved4/go-linuxcall/pkg/resolve"
	"github.com/carved4/go-linuxcall/pkg/syscall"
	"github.com/carved4/go-linuxcall/pkg/utils"
)

// Syscall numbers and open flags, re-exported from the binding layer.
const (
	SYS_READ   = linuxcall.SYS_READ
	SYS_WRITE  = linuxcall.SYS_WRITE
	SYS_OPEN   = linuxcall.SYS_OPEN
	SYS_CLOSE  = linuxcall.SYS_CLOSE
	SYS_WRITEV = linuxcall.SYS_WRITEV

	O_RDONLY = linuxcall.O_RDONLY
	O_WRONLY = linuxcall.O_WRONLY
	O_RDWR   = linuxcall.O_RDWR
	O_CREAT  = linuxcall.O_CREAT
	O_TRUNC  = linuxcall.O_TRUNC
	O_APPEND = linuxcall.O_APPEND
)

type Iovec = linuxcall.Iovec

type CString = utils.CString

var NewCString = utils.NewCString

var (
	Read          = linuxcall.Read
	Write         = linuxcall.Write
	Open          = linuxcall.Open
	Close         = linuxcall.Close
	Writev        = linuxcall.Writev
	WritevStrings = linuxcall.WritevStrings
)

// Raw trampoline access for callers that bring their own numbers.
var (
	Syscall3    = syscall.Syscall3
	RawSyscall3 = syscall.RawSyscall3
)

// vDSO surface.
var (
	VDSOBase         = resolve.VDSOBase
	VDSOSymbols      = resolve.VDSOSymbols
	GetSymbolAddress = resolve.GetSymbolAddress
)

func ClockGettime(clockid int32, ts *unix.Timespec) (int64, error) {
	return resolve.ClockGettime(clockid, ts)
}

func Gettimeofday(tv *unix.Timeval) (int64, error) {
	return resolve.Gettimeofday(tv)
}

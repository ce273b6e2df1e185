//go:build linux && amd64

package resolve

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/carved4/go-linuxcall/pkg/errors"
)

//go:noescape
func vdsoCall(fn, a1, a2 uintptr) int64

// ClockGettime reads a clock through __vdso_clock_gettime: the same
// result convention as the syscall (0 or negated errno) without
// entering the kernel. clockid is one of the unix.CLOCK_* values.
func ClockGettime(clockid int32, ts *unix.Timespec) (int64, error) {
	fn := GetSymbolAddress("__vdso_clock_gettime")
	if fn == 0 {
		return 0, fmt.Errorf("vdso does not export __vdso_clock_gettime")
	}
	res := vdsoCall(fn, uintptr(clockid), uintptr(unsafe.Pointer(ts)))
	runtime.KeepAlive(ts)
	return errors.FromResult(res)
}

// Gettimeofday fills tv through __vdso_gettimeofday (timezone argument
// passed as NULL, as modern callers do).
func Gettimeofday(tv *unix.Timeval) (int64, error) {
	fn := GetSymbolAddress("__vdso_gettimeofday")
	if fn == 0 {
		return 0, fmt.Errorf("vdso does not export __vdso_gettimeofday")
	}
	res := vdsoCall(fn, uintptr(unsafe.Pointer(tv)), 0)
	runtime.KeepAlive(tv)
	return errors.FromResult(res)
}

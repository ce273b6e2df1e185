//go:build linux && amd64

package resolve

import (
	"testing"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

func TestVDSOBase(t *testing.T) {
	base, err := VDSOBase()
	if err != nil {
		t.Fatalf("VDSOBase: %v", err)
	}
	if base == 0 {
		t.Fatal("VDSOBase returned 0")
	}
	magic := unsafe.Slice((*byte)(unsafe.Pointer(base)), 4)
	if magic[0] != 0x7f || magic[1] != 'E' || magic[2] != 'L' || magic[3] != 'F' {
		t.Fatalf("no ELF magic at 0x%x: % x", base, magic)
	}
}

func TestVDSOSymbols(t *testing.T) {
	syms, err := VDSOSymbols()
	if err != nil {
		t.Fatalf("VDSOSymbols: %v", err)
	}
	if len(syms) == 0 {
		t.Fatal("vDSO exported no symbols")
	}
	base, err := VDSOBase()
	if err != nil {
		t.Fatalf("VDSOBase: %v", err)
	}
	for _, s := range syms {
		if s.Address < base {
			t.Errorf("symbol %s at 0x%x is below the image base 0x%x", s.Name, s.Address, base)
		}
	}
}

func TestGetSymbolAddress(t *testing.T) {
	// Present in every amd64 vDSO since 2.6.
	addr := GetSymbolAddress("__vdso_clock_gettime")
	if addr == 0 {
		t.Fatal("__vdso_clock_gettime did not resolve")
	}
	// Second lookup must hit the cache and agree.
	if again := GetSymbolAddress("__vdso_clock_gettime"); again != addr {
		t.Fatalf("cached lookup = 0x%x, first = 0x%x", again, addr)
	}
	if GetSymbolAddress("__vdso_no_such_symbol") != 0 {
		t.Error("bogus symbol resolved to a non-zero address")
	}
}

func TestClockGettime(t *testing.T) {
	before := time.Now()
	var ts unix.Timespec
	res, err := ClockGettime(unix.CLOCK_REALTIME, &ts)
	if err != nil {
		t.Fatalf("ClockGettime: %v", err)
	}
	if res != 0 {
		t.Fatalf("ClockGettime result = %d, want 0", res)
	}
	after := time.Now()

	got := time.Unix(ts.Sec, ts.Nsec)
	if got.Before(before.Add(-time.Second)) || got.After(after.Add(time.Second)) {
		t.Fatalf("vDSO clock %v outside [%v, %v]", got, before, after)
	}
}

func TestClockGettimeMatchesSyscall(t *testing.T) {
	var vdso, oracle unix.Timespec
	if _, err := ClockGettime(unix.CLOCK_MONOTONIC, &vdso); err != nil {
		t.Fatalf("ClockGettime: %v", err)
	}
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &oracle); err != nil {
		t.Fatalf("unix.ClockGettime: %v", err)
	}
	delta := oracle.Nano() - vdso.Nano()
	if delta < 0 || delta > int64(time.Second) {
		t.Fatalf("vDSO clock drifted %dns from the syscall clock", delta)
	}
}

func TestGettimeofday(t *testing.T) {
	var tv unix.Timeval
	res, err := Gettimeofday(&tv)
	if err != nil {
		t.Fatalf("Gettimeofday: %v", err)
	}
	if res != 0 {
		t.Fatalf("Gettimeofday result = %d, want 0", res)
	}
	if tv.Sec == 0 {
		t.Fatal("Gettimeofday left tv zeroed")
	}
}

func TestClockGettimeInvalidClock(t *testing.T) {
	var ts unix.Timespec
	res, err := ClockGettime(1<<20, &ts)
	if err == nil {
		t.Fatalf("invalid clockid succeeded with result %d", res)
	}
	if res >= 0 {
		t.Fatalf("invalid clockid result = %d, want negative errno", res)
	}
}

//go:build linux && amd64

// Package resolve locates the vDSO the kernel maps into every process
// and resolves its exported symbols, so callers can reach the fast
// clock paths without trapping. The image is parsed once from a
// snapshot of the mapping; resolved addresses are cached.
package resolve

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"unsafe"
)

// AT_SYSINFO_EHDR, see getauxval(3). Not an openat-style AT_ flag, so
// x/sys/unix does not carry it.
const atSysinfoEhdr = 33

var (
	vdsoCacheMutex sync.RWMutex
	vdsoCache      = make(map[string]uintptr)

	vdsoParseOnce sync.Once
	vdsoExports   []Export
	vdsoParseErr  error
)

// VDSOBase returns the load address of the vDSO image: the
// AT_SYSINFO_EHDR auxv entry, or the start of the [vdso] mapping when
// auxv is unreadable.
func VDSOBase() (uintptr, error) {
	if raw, err := os.ReadFile("/proc/self/auxv"); err == nil {
		for i := 0; i+16 <= len(raw); i += 16 {
			tag := binary.LittleEndian.Uint64(raw[i:])
			val := binary.LittleEndian.Uint64(raw[i+8:])
			if tag == atSysinfoEhdr && val != 0 {
				return uintptr(val), nil
			}
		}
	}
	start, _, err := vdsoRange()
	if err != nil {
		return 0, err
	}
	return start, nil
}

// vdsoRange finds the [vdso] mapping in /proc/self/maps.
func vdsoRange() (uintptr, uintptr, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasSuffix(line, "[vdso]") {
			continue
		}
		addrs, _, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		lo, hi, ok := strings.Cut(addrs, "-")
		if !ok {
			continue
		}
		start, err1 := strconv.ParseUint(lo, 16, 64)
		end, err2 := strconv.ParseUint(hi, 16, 64)
		if err1 != nil || err2 != nil || end <= start {
			continue
		}
		return uintptr(start), uintptr(end), nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, fmt.Errorf("no [vdso] mapping in /proc/self/maps")
}

// snapshot copies the mapped vDSO image into a heap buffer so the ELF
// parser never reads live kernel-owned memory through an io interface.
func snapshot() ([]byte, uintptr, error) {
	start, end, err := vdsoRange()
	if err != nil {
		return nil, 0, err
	}
	base := start
	if b, err := VDSOBase(); err == nil && b >= start && b < end {
		base = b
	}
	size := end - start
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(unsafe.Pointer(start)), size))
	return data, base, nil
}

func parseOnce() {
	vdsoParseOnce.Do(func() {
		data, base, err := snapshot()
		if err != nil {
			vdsoParseErr = err
			return
		}
		vdsoExports, vdsoParseErr = parseExports(data, base)
	})
}

// GetSymbolAddress resolves a vDSO symbol (e.g. "__vdso_clock_gettime")
// to its address in this process. Returns 0 when the kernel's vDSO
// does not export it.
func GetSymbolAddress(name string) uintptr {
	vdsoCacheMutex.RLock()
	if addr, ok := vdsoCache[name]; ok {
		vdsoCacheMutex.RUnlock()
		return addr
	}
	vdsoCacheMutex.RUnlock()

	parseOnce()
	var addr uintptr
	for _, exp := range vdsoExports {
		if exp.Name == name {
			addr = exp.Address
			break
		}
	}
	if addr != 0 {
		vdsoCacheMutex.Lock()
		vdsoCache[name] = addr
		vdsoCacheMutex.Unlock()
	}
	return addr
}

// VDSOSymbols enumerates every exported symbol of the image.
func VDSOSymbols() ([]Export, error) {
	parseOnce()
	if vdsoParseErr != nil {
		return nil, vdsoParseErr
	}
	out := make([]Export, len(vdsoExports))
	copy(out, vdsoExports)
	return out, nil
}

//go:build linux && amd64

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	linuxcall "github.com/carved4/go-linuxcall"
)

func main() {
	fmt.Println("=== Testing linuxcall High-Level API ===")

	testWriteStdout()
	testBadDescriptor()
	testOpenReadRoundtrip()
	testOpenMissingFile()
	testWritevStrings()
	testVDSOResolve()

	fmt.Println("\n=== All tests completed ===")
}

// testWriteStdout writes 12 bytes to fd 1 and expects exactly 12 back.
func testWriteStdout() {
	fmt.Print("Testing Write to stdout... ")
	msg := []byte("hello world\n")
	res, err := linuxcall.Write(1, msg)
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		return
	}
	if res != int64(len(msg)) {
		fmt.Printf("FAILED: wrote %d bytes, expected %d\n", res, len(msg))
		return
	}
	fmt.Printf("PASSED: %d bytes\n", res)
}

// testBadDescriptor writes to unassigned fd 511 and expects -9 (EBADF).
func testBadDescriptor() {
	fmt.Print("Testing Write to fd 511... ")
	res, err := linuxcall.Write(511, []byte("x"))
	if err == nil {
		fmt.Printf("FAILED: expected error, wrote %d bytes\n", res)
		return
	}
	if res != -9 {
		fmt.Printf("FAILED: result %d, expected -9\n", res)
		return
	}
	fmt.Printf("PASSED: result %d (%v)\n", res, err)
}

func testOpenReadRoundtrip() {
	fmt.Print("Testing Open/Write/Read roundtrip... ")
	path := filepath.Join(os.TempDir(), "linuxcall-verify.txt")
	defer os.Remove(path)

	fd, err := linuxcall.Open(path, linuxcall.O_CREAT|linuxcall.O_WRONLY|linuxcall.O_TRUNC, 0o644)
	if err != nil {
		fmt.Printf("FAILED: open for write: %v\n", err)
		return
	}
	msg := []byte("roundtrip payload\n")
	if res, err := linuxcall.Write(uintptr(fd), msg); err != nil || res != int64(len(msg)) {
		fmt.Printf("FAILED: write res=%d err=%v\n", res, err)
		return
	}
	if err := linuxcall.Close(uintptr(fd)); err != nil {
		fmt.Printf("FAILED: close: %v\n", err)
		return
	}

	fd, err = linuxcall.Open(path, linuxcall.O_RDONLY, 0)
	if err != nil {
		fmt.Printf("FAILED: open for read: %v\n", err)
		return
	}
	defer linuxcall.Close(uintptr(fd))

	buf := make([]byte, 64)
	res, err := linuxcall.Read(uintptr(fd), buf)
	if err != nil || res != int64(len(msg)) || string(buf[:res]) != string(msg) {
		fmt.Printf("FAILED: read res=%d err=%v content=%q\n", res, err, buf[:max(res, 0)])
		return
	}
	if res, err := linuxcall.Read(uintptr(fd), buf); err != nil || res != 0 {
		fmt.Printf("FAILED: expected EOF, res=%d err=%v\n", res, err)
		return
	}
	fmt.Println("PASSED")
}

func testOpenMissingFile() {
	fmt.Print("Testing Open without O_CREAT on missing path... ")
	res, err := linuxcall.Open("/definitely/not/a/path", linuxcall.O_RDONLY, 0)
	if err == nil {
		linuxcall.Close(uintptr(res))
		fmt.Printf("FAILED: got descriptor %d\n", res)
		return
	}
	fmt.Printf("PASSED: result %d (%v)\n", res, err)
}

// testWritevStrings expects the total to include each NUL terminator.
func testWritevStrings() {
	fmt.Print("Testing WritevStrings... ")
	msgs := []linuxcall.CString{
		linuxcall.NewCString("Hello "),
		linuxcall.NewCString("Welt "),
		linuxcall.NewCString("via writev()"),
		linuxcall.NewCString("\n"),
	}
	var want int64
	for _, m := range msgs {
		want += int64(len(m))
	}
	res, err := linuxcall.WritevStrings(1, msgs)
	fmt.Println()
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		return
	}
	if res != want {
		fmt.Printf("FAILED: wrote %d bytes, expected %d\n", res, want)
		return
	}
	fmt.Printf("PASSED: %d bytes across %d segments\n", res, len(msgs))
}

func testVDSOResolve() {
	fmt.Print("Testing vDSO resolution... ")
	base, err := linuxcall.VDSOBase()
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		return
	}
	addr := linuxcall.GetSymbolAddress("__vdso_clock_gettime")
	if addr == 0 {
		fmt.Println("FAILED: __vdso_clock_gettime not resolved")
		return
	}
	var ts unix.Timespec
	if _, err := linuxcall.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		fmt.Printf("FAILED: clock_gettime: %v\n", err)
		return
	}
	fmt.Printf("PASSED: base=0x%x sym=0x%x clock=%d.%09d\n", base, addr, ts.Sec, ts.Nsec)
}

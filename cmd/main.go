//go:build linux && amd64

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	linuxcall "github.com/carved4/go-linuxcall"
)

// stdout has file descriptor 1 on UNIX. Change this to 511 and the
// first write reports -9, bad file descriptor.
const stdoutFD = 1

func main() {
	fmt.Println("go-linuxcall demo :3")

	helloWorld()
	fileRoundtrip()
	writevDemo()
	vdsoDemo()
}

func helloWorld() {
	res, err := linuxcall.Write(stdoutFD, []byte("hello world\n"))
	if err != nil {
		fmt.Printf("bytes written: <error=%d>\n", res)
		return
	}
	fmt.Printf("bytes written: %d\n", res)
}

// fileRoundtrip appends a line to ./foo.txt, then reopens it read-only
// and drains it, probing for EOF afterwards.
func fileRoundtrip() {
	fd, err := linuxcall.Open("./foo.txt", linuxcall.O_CREAT|linuxcall.O_WRONLY|linuxcall.O_APPEND, 0o777)
	if err != nil {
		fmt.Printf("could not open file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("opened ./foo.txt with fd=%d\n", fd)

	msg := "hello, this was written to the file\n"
	if _, err := linuxcall.Write(uintptr(fd), []byte(msg)); err != nil {
		fmt.Printf("error writing the file: %v\n", err)
		os.Exit(1)
	}
	if err := linuxcall.Close(uintptr(fd)); err != nil {
		fmt.Printf("error closing fd %d: %v\n", fd, err)
		os.Exit(1)
	}

	fd, err = linuxcall.Open("./foo.txt", linuxcall.O_RDONLY, 0)
	if err != nil {
		fmt.Printf("could not reopen file: %v\n", err)
		os.Exit(1)
	}
	defer linuxcall.Close(uintptr(fd))

	data := make([]byte, 1024)
	res, err := linuxcall.Read(uintptr(fd), data)
	if err != nil {
		fmt.Printf("error reading the file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("read %d bytes from foo.txt\n", res)

	res, err = linuxcall.Read(uintptr(fd), data)
	if err == nil && res == 0 {
		fmt.Println("EOF reached :)")
	} else {
		fmt.Println("File is longer than the buffer :(")
	}
}

// writevDemo writes four C strings to stdout in one kernel call. Each
// segment length counts its NUL terminator, so the reported total is
// the sum of the terminated lengths.
func writevDemo() {
	msgs := []linuxcall.CString{
		linuxcall.NewCString("Hello "),
		linuxcall.NewCString("Welt "),
		linuxcall.NewCString("via writev()"),
		linuxcall.NewCString("\n"),
	}
	res, err := linuxcall.WritevStrings(stdoutFD, msgs)
	if err != nil {
		fmt.Printf("writev failed: %v\n", err)
		return
	}
	fmt.Printf("res=%d\n", res)
}

func vdsoDemo() {
	base, err := linuxcall.VDSOBase()
	if err != nil {
		fmt.Printf("no vdso: %v\n", err)
		return
	}
	fmt.Printf("vdso mapped at 0x%x\n", base)

	var ts unix.Timespec
	if _, err := linuxcall.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		fmt.Printf("clock_gettime via vdso failed: %v\n", err)
		return
	}
	fmt.Printf("clock_gettime via vdso: %d.%09d\n", ts.Sec, ts.Nsec)
}
